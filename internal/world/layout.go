// Conversion between world space and axial hex coordinates for a pointy-top
// layout scaled by a single hex size.
package world

import (
	"fmt"
	"math"
)

var sqrt3 = math.Sqrt(3)

// Point is a position in world space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) String() string {
	return fmt.Sprintf("(%.3f,%.3f)", p.X, p.Y)
}

// HexToWorld returns the world-space center of a hex.
func HexToWorld(h HexCoord, hexSize float64) Point {
	q, r := float64(h.Q), float64(h.R)
	return Point{
		X: hexSize * sqrt3 * (q + r/2),
		Y: hexSize * 1.5 * r,
	}
}

// WorldToHex returns the hex containing a world-space point. Points far from
// the origin extrapolate; there is no bounds check.
func WorldToHex(p Point, hexSize float64) HexCoord {
	q := (sqrt3/3*p.X - 1.0/3*p.Y) / hexSize
	r := (2.0 / 3 * p.Y) / hexSize
	return HexRound(q, r)
}

// HexRound snaps fractional axial coordinates to the nearest hex.
//
// All three cube components are rounded half-to-even and the one that moved
// furthest is rebuilt from the other two. Comparisons are strict, so on a tie
// between q and s the rounded q is kept, and on a tie between r and s the
// rounded r is kept.
func HexRound(q, r float64) HexCoord {
	s := -q - r

	rq := math.RoundToEven(q)
	rr := math.RoundToEven(r)
	rs := math.RoundToEven(s)

	qDiff := math.Abs(rq - q)
	rDiff := math.Abs(rr - r)
	sDiff := math.Abs(rs - s)

	if qDiff > rDiff && qDiff > sDiff {
		rq = -rr - rs
	} else if rDiff > sDiff {
		rr = -rq - rs
	}

	return HexCoord{Q: int(rq), R: int(rr)}
}
