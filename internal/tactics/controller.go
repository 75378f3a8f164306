package tactics

import (
	"log/slog"
	"sync"

	"github.com/talgya/hexmove/internal/movement"
	"github.com/talgya/hexmove/internal/world"
)

// State is the phase of a selection session.
type State uint8

const (
	StateIdle     State = iota // No unit selected
	StateSelected              // A unit is selected and its reachable hexes are known
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSelected:
		return "selected"
	default:
		return "unknown"
	}
}

// Controller holds one selection session: the selected unit, the occupied
// hexes, and the hexes the selected unit can move to.
//
// All methods are safe to call from several goroutines. Callbacks run after
// the controller's lock is released, in the order the changes happened, so a
// callback may call back into the controller.
type Controller struct {
	cfg    Config
	finder UnitFinder

	// Blocked marks hexes no unit can enter regardless of occupancy
	// (board edge, rocks). Nil means an open, unbounded grid.
	Blocked movement.BlockedFunc

	// Notification callbacks, populated by the shell.
	OnHighlightChanged func(tiles []world.HexCoord, show bool)
	OnSelectionChanged func(u *Unit, selected bool)
	OnUnitMoved        func(u *Unit, from, to world.HexCoord)

	mu        sync.Mutex
	state     State
	selected  *Unit
	occupied  *Occupancy
	reachable world.CoordSet
}

// NewController creates an idle session. finder resolves clicked hexes to units.
func NewController(cfg Config, finder UnitFinder) *Controller {
	return &Controller{
		cfg:       cfg,
		finder:    finder,
		state:     StateIdle,
		occupied:  NewOccupancy(),
		reachable: world.NewCoordSet(),
	}
}

// Config returns the session settings.
func (c *Controller) Config() Config {
	return c.cfg
}

// Click handles a pointer click at a world-space position.
func (c *Controller) Click(p world.Point) bool {
	return c.HandleHex(world.WorldToHex(p, c.cfg.HexSize))
}

// HandleHex selects the unit on h when idle, or tries to move the selected
// unit to h. Returns whether the click changed anything.
func (c *Controller) HandleHex(h world.HexCoord) bool {
	if c.State() == StateIdle {
		return c.TrySelect(h)
	}
	return c.TryMove(h)
}

// TrySelect selects the unit standing on h and computes where it can move.
// Any previous selection is dropped first. Does nothing if no unit is on h.
func (c *Controller) TrySelect(h world.HexCoord) bool {
	u := c.finder.FindUnitAt(h)
	if u == nil {
		slog.Debug("select: no unit", "hex", h)
		return false
	}

	var notes notifications
	c.mu.Lock()
	if c.selected != nil {
		c.clearSelectionLocked(&notes)
	}

	c.selected = u
	c.state = StateSelected
	u.Selected = true
	c.reachable = movement.ComputeReachable(u.Position, c.cfg.MaxMoveRange,
		movement.Union(c.occupied.Has, c.Blocked))
	tiles := world.Sorted(c.reachable)

	notes.add(func() { c.emitSelection(u, true) })
	notes.add(func() { c.emitHighlight(tiles, true) })
	c.mu.Unlock()

	slog.Debug("unit selected", "unit", u.Name, "hex", u.Position, "reachable", len(tiles))
	notes.run()
	return true
}

// TryMove moves the selected unit to h if h is reachable and still free.
// On failure nothing changes and the unit stays selected.
func (c *Controller) TryMove(h world.HexCoord) bool {
	var notes notifications
	c.mu.Lock()
	u := c.selected
	if c.state != StateSelected || u == nil {
		c.mu.Unlock()
		return false
	}
	// Occupancy may have changed since selection; check again before committing.
	if !c.reachable.Has(h) || c.occupied.Has(h) {
		c.mu.Unlock()
		slog.Debug("move rejected", "unit", u.Name, "from", u.Position, "to", h)
		return false
	}

	from := u.Position
	c.occupied.Move(from, h)
	u.Position = h

	notes.add(func() { c.emitMoved(u, from, h) })
	c.clearSelectionLocked(&notes)
	c.mu.Unlock()

	slog.Info("unit moved", "unit", u.Name, "from", from, "to", h)
	notes.run()
	return true
}

// Deselect drops the current selection, if any.
func (c *Controller) Deselect() {
	var notes notifications
	c.mu.Lock()
	if c.selected != nil {
		c.clearSelectionLocked(&notes)
	}
	c.mu.Unlock()
	notes.run()
}

// clearSelectionLocked hides the highlight, deselects the unit and returns
// the session to idle. Caller holds c.mu.
func (c *Controller) clearSelectionLocked(notes *notifications) {
	u := c.selected
	tiles := world.Sorted(c.reachable)

	u.Selected = false
	c.selected = nil
	c.state = StateIdle
	c.reachable = world.NewCoordSet()

	notes.add(func() { c.emitHighlight(tiles, false) })
	notes.add(func() { c.emitSelection(u, false) })
}

// Occupy marks h as held by a unit. Returns false if it already was.
func (c *Controller) Occupy(h world.HexCoord) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.occupied.Add(h)
}

// Vacate frees h. Returns false if it was not occupied.
func (c *Controller) Vacate(h world.HexCoord) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.occupied.Remove(h)
}

// IsOccupied reports whether h is held by a unit.
func (c *Controller) IsOccupied(h world.HexCoord) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.occupied.Has(h)
}

// State returns the current session phase.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Selected returns the selected unit, or nil.
func (c *Controller) Selected() *Unit {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected
}

// Reachable returns the hexes the selected unit can move to, in
// row-then-column order. Empty when idle.
func (c *Controller) Reachable() []world.HexCoord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return world.Sorted(c.reachable)
}

// CanMoveTo reports whether the selected unit could move to h right now.
func (c *Controller) CanMoveTo(h world.HexCoord) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reachable.Has(h) && !c.occupied.Has(h)
}

// Occupied returns the occupied hexes in row-then-column order.
func (c *Controller) Occupied() []world.HexCoord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.occupied.Coords()
}

func (c *Controller) emitHighlight(tiles []world.HexCoord, show bool) {
	if c.OnHighlightChanged != nil {
		c.OnHighlightChanged(tiles, show)
	}
}

func (c *Controller) emitSelection(u *Unit, selected bool) {
	if c.OnSelectionChanged != nil {
		c.OnSelectionChanged(u, selected)
	}
}

func (c *Controller) emitMoved(u *Unit, from, to world.HexCoord) {
	if c.OnUnitMoved != nil {
		c.OnUnitMoved(u, from, to)
	}
}

// notifications queues callbacks until the lock is released.
type notifications []func()

func (n *notifications) add(fn func()) {
	*n = append(*n, fn)
}

func (n notifications) run() {
	for _, fn := range n {
		fn()
	}
}
