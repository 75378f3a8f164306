// Package tactics drives the select-then-move protocol for units on a hex grid.
// The caller feeds it clicks; it answers with selection and highlight events.
package tactics

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/talgya/hexmove/internal/world"
)

// Unit is a piece on the board. The shell owns units; the controller holds a
// reference only while a unit is selected.
type Unit struct {
	ID       uuid.UUID      `json:"id"`
	Name     string         `json:"name"`
	Position world.HexCoord `json:"position"`
	Selected bool           `json:"selected"`
}

// NewUnit creates a unit with a fresh ID at the given position.
func NewUnit(name string, pos world.HexCoord) *Unit {
	return &Unit{
		ID:       uuid.New(),
		Name:     name,
		Position: pos,
	}
}

func (u *Unit) String() string {
	return fmt.Sprintf("%s@%v", u.Name, u.Position)
}

// UnitFinder resolves which unit, if any, stands on a hex.
type UnitFinder interface {
	FindUnitAt(world.HexCoord) *Unit
}

// UnitFinderFunc adapts a plain function to UnitFinder.
type UnitFinderFunc func(world.HexCoord) *Unit

// FindUnitAt calls f(h).
func (f UnitFinderFunc) FindUnitAt(h world.HexCoord) *Unit {
	return f(h)
}
