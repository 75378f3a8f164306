package tactics

import "github.com/talgya/hexmove/internal/world"

// Occupancy is the registry of hexes currently held by a unit.
// A hex appears at most once. It is not safe for concurrent use on its own;
// the Controller serializes access.
type Occupancy struct {
	tiles world.CoordSet
}

// NewOccupancy returns a registry holding the given hexes.
func NewOccupancy(coords ...world.HexCoord) *Occupancy {
	return &Occupancy{tiles: world.NewCoordSet(coords...)}
}

// Has reports whether h is occupied.
func (o *Occupancy) Has(h world.HexCoord) bool {
	return o.tiles.Has(h)
}

// Add marks h occupied. Returns false if it already was.
func (o *Occupancy) Add(h world.HexCoord) bool {
	if o.tiles.Has(h) {
		return false
	}
	o.tiles.Put(h)
	return true
}

// Remove frees h. Returns false if it was not occupied.
func (o *Occupancy) Remove(h world.HexCoord) bool {
	if !o.tiles.Has(h) {
		return false
	}
	o.tiles.Remove(h)
	return true
}

// Move frees from and occupies to in one step.
func (o *Occupancy) Move(from, to world.HexCoord) {
	o.tiles.Remove(from)
	o.tiles.Put(to)
}

// Len returns the number of occupied hexes.
func (o *Occupancy) Len() int {
	return o.tiles.Size()
}

// Coords returns the occupied hexes in row-then-column order.
func (o *Occupancy) Coords() []world.HexCoord {
	return world.Sorted(o.tiles)
}
