package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"

	"github.com/talgya/hexmove/internal/world"
)

// Board glyphs.
const (
	GlyphEmpty     = '.'
	GlyphRock      = '#'
	GlyphReachable = '*'
	GlyphUnit      = '@'
	GlyphSelected  = 'A'
)

var (
	styleEmpty     = color.Style{color.FgGray}
	styleRock      = color.Style{color.FgGray, color.OpBold}
	styleReachable = color.Style{color.FgGreen, color.OpBold}
	styleUnit      = color.Style{color.FgWhite, color.OpBold}
	styleSelected  = color.Style{color.FgYellow, color.OpBold}
)

// Renderer draws the board as offset text rows.
type Renderer struct {
	Board  *world.Board
	Roster *Roster
	Plain  bool // No colour codes

	highlight world.CoordSet
}

// NewRenderer creates a renderer with nothing highlighted.
func NewRenderer(b *world.Board, roster *Roster) *Renderer {
	return &Renderer{
		Board:     b,
		Roster:    roster,
		highlight: world.NewCoordSet(),
	}
}

// SetHighlight shows or hides a set of hexes. Wired to
// Controller.OnHighlightChanged.
func (rd *Renderer) SetHighlight(tiles []world.HexCoord, show bool) {
	for _, t := range tiles {
		if show {
			rd.highlight.Put(t)
		} else {
			rd.highlight.Remove(t)
		}
	}
}

// Highlighted reports whether h is currently highlighted.
func (rd *Renderer) Highlighted(h world.HexCoord) bool {
	return rd.highlight.Has(h)
}

// Glyph returns the character drawn for h.
func (rd *Renderer) Glyph(h world.HexCoord) rune {
	if u := rd.Roster.FindUnitAt(h); u != nil {
		if u.Selected {
			return GlyphSelected
		}
		return GlyphUnit
	}
	if rd.Board.IsRock(h) {
		return GlyphRock
	}
	if rd.highlight.Has(h) {
		return GlyphReachable
	}
	return GlyphEmpty
}

// Render writes the board. Row r is drawn with each hex at column
// 2q + r + 2R, which keeps neighbors visually adjacent.
func (rd *Renderer) Render(w io.Writer) error {
	radius := rd.Board.Radius
	width := 4*radius + 1

	for r := -radius; r <= radius; r++ {
		cells := make([]string, width)
		for i := range cells {
			cells[i] = " "
		}
		for q := -radius; q <= radius; q++ {
			h := world.HexCoord{Q: q, R: r}
			if !rd.Board.InBounds(h) {
				continue
			}
			cells[2*q+r+2*radius] = rd.paint(rd.Glyph(h))
		}
		line := strings.TrimRight(strings.Join(cells, ""), " ")
		if _, err := fmt.Fprintf(w, "%+3d  %s\n", r, line); err != nil {
			return fmt.Errorf("render row %d: %w", r, err)
		}
	}
	return nil
}

func (rd *Renderer) paint(g rune) string {
	s := string(g)
	if rd.Plain {
		return s
	}
	switch g {
	case GlyphRock:
		return styleRock.Sprint(s)
	case GlyphReachable:
		return styleReachable.Sprint(s)
	case GlyphUnit:
		return styleUnit.Sprint(s)
	case GlyphSelected:
		return styleSelected.Sprint(s)
	default:
		return styleEmpty.Sprint(s)
	}
}
