// Package movement computes which hexes a unit can reach in one move.
// Every step costs one; blocked hexes cannot be entered.
package movement

import (
	"fmt"

	"github.com/zyedidia/generic/queue"

	"github.com/talgya/hexmove/internal/world"
)

// BlockedFunc reports whether a hex cannot be entered.
type BlockedFunc func(world.HexCoord) bool

type frontierEntry struct {
	coord world.HexCoord
	dist  int
}

// ComputeReachable returns every hex reachable from start in 1..maxRange
// steps without entering a blocked hex. The start hex is never part of the
// result and is never tested against blocked. A nil blocked func blocks
// nothing.
//
// maxRange < 0 is a caller bug and panics.
func ComputeReachable(start world.HexCoord, maxRange int, blocked BlockedFunc) world.CoordSet {
	if maxRange < 0 {
		panic(fmt.Sprintf("movement: negative move range %d", maxRange))
	}

	result := world.NewCoordSet()
	visited := world.NewCoordSet(start)

	frontier := queue.New[frontierEntry]()
	frontier.Enqueue(frontierEntry{coord: start, dist: 0})

	for !frontier.Empty() {
		cur := frontier.Dequeue()
		if cur.dist > 0 {
			result.Put(cur.coord)
		}
		if cur.dist >= maxRange {
			continue
		}

		for _, n := range cur.coord.Neighbors() {
			if visited.Has(n) {
				continue
			}
			if blocked != nil && blocked(n) {
				continue
			}
			visited.Put(n)
			frontier.Enqueue(frontierEntry{coord: n, dist: cur.dist + 1})
		}
	}

	return result
}

// DiskSize returns the number of hexes reachable on an open grid with the
// given range, excluding the start: 3N(N+1).
func DiskSize(maxRange int) int {
	return 3 * maxRange * (maxRange + 1)
}

// Union returns a blocked func that blocks whatever any of fns blocks.
// Nil entries are skipped.
func Union(fns ...BlockedFunc) BlockedFunc {
	return func(h world.HexCoord) bool {
		for _, fn := range fns {
			if fn != nil && fn(h) {
				return true
			}
		}
		return false
	}
}
