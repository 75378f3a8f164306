package world

import "testing"

func TestGenerate_Deterministic(t *testing.T) {
	cfg := DefaultGenConfig()
	cfg.Seed = 42

	a := Generate(cfg)
	b := Generate(cfg)

	ra, rb := Sorted(a.Rocks), Sorted(b.Rocks)
	if len(ra) != len(rb) {
		t.Fatalf("rock count differs between runs: %d vs %d", len(ra), len(rb))
	}
	for i := range ra {
		if ra[i] != rb[i] {
			t.Fatalf("rock %d differs: %v vs %v", i, ra[i], rb[i])
		}
	}
}

func TestGenerate_RocksOnBoardAndCenterClear(t *testing.T) {
	cfg := DefaultGenConfig()
	cfg.Seed = 7
	cfg.RockLevel = 0.3
	b := Generate(cfg)

	if b.IsRock(HexCoord{}) {
		t.Error("center hex is rock, want clear")
	}
	b.Rocks.Each(func(c HexCoord) {
		if !b.InBounds(c) {
			t.Errorf("rock %v outside radius %d", c, b.Radius)
		}
	})
}

func TestGenerate_RockLevelOneIsOpen(t *testing.T) {
	cfg := DefaultGenConfig()
	cfg.Seed = 3
	cfg.RockLevel = 1
	if b := Generate(cfg); b.Rocks.Size() != 0 {
		t.Errorf("rocks = %d, want 0 at RockLevel 1", b.Rocks.Size())
	}
}

func TestPlaceUnits_OpenAndSpaced(t *testing.T) {
	cfg := DefaultGenConfig()
	cfg.Seed = 11
	b := Generate(cfg)

	points := PlaceUnits(b, 4, cfg.Seed)
	if len(points) == 0 {
		t.Fatal("PlaceUnits returned no points")
	}
	for i, p := range points {
		if b.Blocked(p.Coord) {
			t.Errorf("spawn %v is blocked", p.Coord)
		}
		if p.Name == "" {
			t.Errorf("spawn %v has no name", p.Coord)
		}
		for _, q := range points[i+1:] {
			if Distance(p.Coord, q.Coord) < minSpawnDist {
				t.Errorf("spawns %v and %v too close", p.Coord, q.Coord)
			}
		}
	}
}

func TestPlaceUnits_TinyBoard(t *testing.T) {
	b := NewBoard(0)
	points := PlaceUnits(b, 5, 1)
	// Only the center exists and all of its neighbors are off the board.
	if len(points) != 0 {
		t.Errorf("PlaceUnits on radius 0 = %v, want none", points)
	}
}
