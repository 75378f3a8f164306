// Spawn placement: picks open hexes for the starting units.
package world

import (
	"math/rand"
	"sort"
)

// SpawnPoint is a starting position for a unit.
type SpawnPoint struct {
	Coord HexCoord
	Score float64 // Openness of the surrounding hexes
	Name  string
}

const (
	minSpawnDist = 2  // Keeps starting units from touching each other
	MaxUnits     = 64 // Upper bound on units placed on one board
)

// PlaceUnits picks up to count open hexes, preferring those with the most
// free neighbors. Returns fewer points if the board runs out of room.
func PlaceUnits(b *Board, count int, seed int64) []SpawnPoint {
	rng := rand.New(rand.NewSource(seed + 200))
	count = min(count, MaxUnits)

	type scored struct {
		coord HexCoord
		score float64
	}
	var candidates []scored

	for _, coord := range b.Coords() {
		if b.Blocked(coord) {
			continue
		}
		open := spawnScore(b, coord)
		if open == 0 {
			continue
		}
		candidates = append(candidates, scored{coord, open + rng.Float64()*0.5})
	}

	// Sort by score descending; coordinates break ties so a seed is reproducible.
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		a, c := candidates[i].coord, candidates[j].coord
		if a.R != c.R {
			return a.R < c.R
		}
		return a.Q < c.Q
	})

	var points []SpawnPoint
	for _, c := range candidates {
		if len(points) >= count {
			break
		}
		if tooClose(c.coord, points, minSpawnDist) {
			continue
		}
		points = append(points, SpawnPoint{Coord: c.coord, Score: c.score})
	}

	names := generateNames(rng, len(points))
	for i := range points {
		points[i].Name = names[i]
	}

	return points
}

// spawnScore counts the open neighbors of a hex. A hex boxed in on all
// sides scores zero and is never picked.
func spawnScore(b *Board, coord HexCoord) float64 {
	open := 0
	for _, nc := range coord.Neighbors() {
		if !b.Blocked(nc) {
			open++
		}
	}
	return float64(open)
}

func tooClose(coord HexCoord, existing []SpawnPoint, minDist int) bool {
	for _, s := range existing {
		if Distance(coord, s.Coord) < minDist {
			return true
		}
	}
	return false
}

// generateNames produces unit call signs by combining syllables.
func generateNames(rng *rand.Rand, count int) []string {
	prefixes := []string{
		"Iron", "Ash", "Stone", "Black", "Silver", "Red", "Grey",
		"Frost", "Storm", "Thorn", "Oak", "Copper", "High", "Swift",
	}
	suffixes := []string{
		"guard", "hand", "blade", "shield", "watch", "helm", "fang",
		"wing", "crest", "spear", "bow", "mark", "ward", "claw",
	}

	used := make(map[string]bool)
	names := make([]string, 0, count)

	for len(names) < count {
		name := prefixes[rng.Intn(len(prefixes))] + suffixes[rng.Intn(len(suffixes))]
		if !used[name] {
			used[name] = true
			names = append(names, name)
		}
	}

	return names
}
