// Board generation using layered simplex noise.
// High-noise hexes become rocks, which block movement.
package world

import (
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// GenConfig holds board generation parameters.
type GenConfig struct {
	Radius    int     // Board radius
	Seed      int64   // Random seed (0 = random)
	RockLevel float64 // Noise threshold above which a hex is rock (0.0–1.0)
}

// DefaultGenConfig returns a reasonable starting configuration.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Radius:    6,
		Seed:      0,
		RockLevel: 0.68,
	}
}

// Generate creates a board and scatters rocks over it.
// The center hex is always left clear.
func Generate(cfg GenConfig) *Board {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}

	noise := opensimplex.NewNormalized(seed)
	b := NewBoard(cfg.Radius)

	for _, coord := range b.Coords() {
		if coord == (HexCoord{}) {
			continue
		}
		// Sample noise at the hex center in unit-size world space.
		p := HexToWorld(coord, 1)
		if octaveNoise(noise, p.X, p.Y, 3, 0.35, 0.5) > cfg.RockLevel {
			b.Rocks.Put(coord)
		}
	}

	return b
}

// octaveNoise generates fractal noise by layering multiple frequencies.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return math.Min(total/maxVal, 1)
}
