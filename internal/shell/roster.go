// Package shell is a line-oriented terminal front end for a selection session.
// It supplies the pieces the controller expects from its host: a unit lookup,
// a renderer for highlights, and a click source.
package shell

import (
	"fmt"
	"sort"

	"github.com/talgya/hexmove/internal/tactics"
	"github.com/talgya/hexmove/internal/world"
)

// Roster indexes units by the hex they stand on.
type Roster struct {
	byHex map[world.HexCoord]*tactics.Unit
}

// NewRoster creates an empty roster.
func NewRoster() *Roster {
	return &Roster{byHex: make(map[world.HexCoord]*tactics.Unit)}
}

// Spawn places a new unit at pos. Fails if a unit already stands there.
func (r *Roster) Spawn(name string, pos world.HexCoord) (*tactics.Unit, error) {
	if existing, ok := r.byHex[pos]; ok {
		return nil, fmt.Errorf("spawn %s: hex %v held by %s", name, pos, existing.Name)
	}
	u := tactics.NewUnit(name, pos)
	r.byHex[pos] = u
	return u, nil
}

// FindUnitAt returns the unit standing on h, or nil.
func (r *Roster) FindUnitAt(h world.HexCoord) *tactics.Unit {
	return r.byHex[h]
}

// Follow re-indexes a unit after it moved. Wired to Controller.OnUnitMoved.
func (r *Roster) Follow(u *tactics.Unit, from, to world.HexCoord) {
	if r.byHex[from] == u {
		delete(r.byHex, from)
	}
	r.byHex[to] = u
}

// Units returns every unit ordered by name.
func (r *Roster) Units() []*tactics.Unit {
	out := make([]*tactics.Unit, 0, len(r.byHex))
	for _, u := range r.byHex {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// Len returns the number of units.
func (r *Roster) Len() int {
	return len(r.byHex)
}
