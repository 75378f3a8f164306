package world

import (
	"fmt"
	"slices"
)

// Board is a radius-bounded play area with impassable rock tiles.
type Board struct {
	Radius int      `json:"radius"`
	Rocks  CoordSet `json:"-"`
}

// NewBoard creates an empty board with the given radius.
// A board of radius R contains hexes where max(|q|, |r|, |s|) <= R.
func NewBoard(radius int) *Board {
	return &Board{
		Radius: radius,
		Rocks:  NewCoordSet(),
	}
}

// InBounds returns true if the coordinate is within the board radius.
func (b *Board) InBounds(coord HexCoord) bool {
	return Distance(coord, HexCoord{}) <= b.Radius
}

// IsRock reports whether the coordinate holds a rock.
func (b *Board) IsRock(coord HexCoord) bool {
	return b.Rocks.Has(coord)
}

// Blocked reports whether a unit can never stand on the coordinate:
// it is off the board or holds a rock.
func (b *Board) Blocked(coord HexCoord) bool {
	return !b.InBounds(coord) || b.IsRock(coord)
}

// Coords returns every coordinate on the board, ordered by row then column.
func (b *Board) Coords() []HexCoord {
	var out []HexCoord
	for r := -b.Radius; r <= b.Radius; r++ {
		for q := -b.Radius; q <= b.Radius; q++ {
			c := HexCoord{Q: q, R: r}
			if b.InBounds(c) {
				out = append(out, c)
			}
		}
	}
	return out
}

// HexCount returns the total number of hexes on the board.
func (b *Board) HexCount() int {
	return 3*b.Radius*(b.Radius+1) + 1
}

// String returns a summary of the board.
func (b *Board) String() string {
	return fmt.Sprintf("Board(radius=%d, hexes=%d, rocks=%d)", b.Radius, b.HexCount(), b.Rocks.Size())
}

// SortCoords orders coordinates by row, then column.
func SortCoords(coords []HexCoord) {
	slices.SortFunc(coords, func(a, b HexCoord) int {
		if a.R != b.R {
			return a.R - b.R
		}
		return a.Q - b.Q
	})
}

// Sorted returns the members of a set in row-then-column order.
func Sorted(set CoordSet) []HexCoord {
	out := make([]HexCoord, 0, set.Size())
	set.Each(func(c HexCoord) {
		out = append(out, c)
	})
	SortCoords(out)
	return out
}
