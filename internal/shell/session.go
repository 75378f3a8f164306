package shell

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/talgya/hexmove/internal/tactics"
	"github.com/talgya/hexmove/internal/world"
)

const helpText = `commands:
  click X Y   pointer click at world position (X, Y)
  hex Q R     click the center of hex (Q, R)
  deselect    drop the current selection
  units       list units
  show        redraw the board
  help        this text
  quit        leave
`

// Session connects a controller to a text stream of commands.
type Session struct {
	Ctrl     *tactics.Controller
	Board    *world.Board
	Roster   *Roster
	Renderer *Renderer
}

// NewSession wires the controller's callbacks to the roster and renderer and
// blocks movement off the board and onto rocks. Every roster unit's hex is
// registered as occupied.
func NewSession(ctrl *tactics.Controller, b *world.Board, roster *Roster) *Session {
	s := &Session{
		Ctrl:     ctrl,
		Board:    b,
		Roster:   roster,
		Renderer: NewRenderer(b, roster),
	}

	ctrl.Blocked = b.Blocked
	ctrl.OnHighlightChanged = s.Renderer.SetHighlight
	ctrl.OnUnitMoved = roster.Follow
	ctrl.OnSelectionChanged = func(u *tactics.Unit, selected bool) {
		slog.Debug("selection changed", "unit", u.Name, "selected", selected)
	}

	for _, u := range roster.Units() {
		ctrl.Occupy(u.Position)
	}
	return s
}

// Run reads commands from r until EOF or quit, writing replies to w.
func (s *Session) Run(r io.Reader, w io.Writer) error {
	if err := s.show(w); err != nil {
		return err
	}

	scanner := bufio.NewScanner(r)
	for {
		if _, err := fmt.Fprint(w, "> "); err != nil {
			return err
		}
		if !scanner.Scan() {
			break
		}
		quit, err := s.Exec(scanner.Text(), w)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read commands: %w", err)
	}
	return nil
}

// Exec runs one command line. Returns true when the session should end.
// Malformed input is reported to w, not returned as an error.
func (s *Session) Exec(line string, w io.Writer) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	switch cmd := strings.ToLower(fields[0]); cmd {
	case "quit", "exit":
		return true, nil

	case "help":
		_, err := fmt.Fprint(w, helpText)
		return false, err

	case "show":
		return false, s.show(w)

	case "units":
		for _, u := range s.Roster.Units() {
			if _, err := fmt.Fprintf(w, "  %-12s %v\n", u.Name, u.Position); err != nil {
				return false, err
			}
		}
		return false, nil

	case "deselect":
		s.Ctrl.Deselect()
		return false, s.show(w)

	case "click":
		x, y, err := parsePair[float64](fields[1:], parseFloat)
		if err != nil {
			_, werr := fmt.Fprintf(w, "usage: click X Y (%v)\n", err)
			return false, werr
		}
		p := world.Point{X: x, Y: y}
		h := world.WorldToHex(p, s.Ctrl.Config().HexSize)
		slog.Debug("click", "pos", p, "hex", h)
		return false, s.handle(h, w)

	case "hex":
		q, r, err := parsePair[int](fields[1:], strconv.Atoi)
		if err != nil {
			_, werr := fmt.Fprintf(w, "usage: hex Q R (%v)\n", err)
			return false, werr
		}
		return false, s.handle(world.HexCoord{Q: q, R: r}, w)

	default:
		_, err := fmt.Fprintf(w, "unknown command %q, try help\n", cmd)
		return false, err
	}
}

func (s *Session) handle(h world.HexCoord, w io.Writer) error {
	if !s.Ctrl.HandleHex(h) {
		_, err := fmt.Fprintf(w, "nothing to do at %v\n", h)
		return err
	}
	return s.show(w)
}

func (s *Session) show(w io.Writer) error {
	if err := s.Renderer.Render(w); err != nil {
		return err
	}
	status := "idle"
	if u := s.Ctrl.Selected(); u != nil {
		status = fmt.Sprintf("selected %s at %v, %d moves", u.Name, u.Position, len(s.Ctrl.Reachable()))
	}
	_, err := fmt.Fprintf(w, "[%s]\n", status)
	return err
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func parsePair[T any](args []string, parse func(string) (T, error)) (T, T, error) {
	var zero T
	if len(args) != 2 {
		return zero, zero, fmt.Errorf("want 2 numbers, got %d", len(args))
	}
	a, err := parse(args[0])
	if err != nil {
		return zero, zero, err
	}
	b, err := parse(args[1])
	if err != nil {
		return zero, zero, err
	}
	return a, b, nil
}
