package world

import "testing"

func TestNeighbors_FixedOrder(t *testing.T) {
	got := HexCoord{Q: 2, R: -1}.Neighbors()
	want := [6]HexCoord{
		{Q: 3, R: -1},
		{Q: 3, R: -2},
		{Q: 2, R: -2},
		{Q: 1, R: -1},
		{Q: 1, R: 0},
		{Q: 2, R: 0},
	}
	if got != want {
		t.Errorf("Neighbors() = %v, want %v", got, want)
	}
}

func TestNeighbors_AllAtDistanceOne(t *testing.T) {
	h := HexCoord{Q: -4, R: 7}
	for _, n := range h.Neighbors() {
		if d := Distance(h, n); d != 1 {
			t.Errorf("Distance(%v, %v) = %d, want 1", h, n, d)
		}
	}
}

func TestDistance(t *testing.T) {
	cases := []struct {
		a, b HexCoord
		want int
	}{
		{HexCoord{}, HexCoord{}, 0},
		{HexCoord{}, HexCoord{Q: 3, R: 0}, 3},
		{HexCoord{}, HexCoord{Q: 2, R: -3}, 3},
		{HexCoord{Q: -2, R: 1}, HexCoord{Q: 1, R: 1}, 3},
		{HexCoord{Q: 1, R: 1}, HexCoord{Q: -1, R: -1}, 4},
	}
	for _, tc := range cases {
		if got := Distance(tc.a, tc.b); got != tc.want {
			t.Errorf("Distance(%v, %v) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestHexCoord_S(t *testing.T) {
	h := HexCoord{Q: 3, R: -5}
	if h.Q+h.R+h.S() != 0 {
		t.Errorf("q+r+s = %d, want 0", h.Q+h.R+h.S())
	}
}

func TestBoard_CoordsMatchHexCount(t *testing.T) {
	for radius := 0; radius <= 6; radius++ {
		b := NewBoard(radius)
		if got := len(b.Coords()); got != b.HexCount() {
			t.Errorf("radius %d: len(Coords()) = %d, want %d", radius, got, b.HexCount())
		}
	}
}

func TestBoard_Blocked(t *testing.T) {
	b := NewBoard(2)
	b.Rocks.Put(HexCoord{Q: 1, R: 0})

	if !b.Blocked(HexCoord{Q: 1, R: 0}) {
		t.Error("rock hex not blocked")
	}
	if !b.Blocked(HexCoord{Q: 3, R: 0}) {
		t.Error("off-board hex not blocked")
	}
	if b.Blocked(HexCoord{Q: -2, R: 2}) {
		t.Error("open edge hex blocked")
	}
}

func TestSorted_RowThenColumn(t *testing.T) {
	set := NewCoordSet(HexCoord{Q: 1, R: 1}, HexCoord{Q: -1, R: 1}, HexCoord{Q: 5, R: -2})
	got := Sorted(set)
	want := []HexCoord{{Q: 5, R: -2}, {Q: -1, R: 1}, {Q: 1, R: 1}}
	if len(got) != len(want) {
		t.Fatalf("Sorted() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Sorted()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
