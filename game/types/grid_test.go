package types

import (
	"errors"
	"testing"
)

func mustGrid(t *testing.T, cellSize float64, maxX, maxY int) Grid {
	t.Helper()
	g, err := NewGridWithBounds(cellSize, maxX, maxY)
	if err != nil {
		t.Fatalf("NewGridWithBounds: %v", err)
	}
	return g
}

func TestNewGridBumpsEvenCounts(t *testing.T) {
	g, err := NewGrid(900, 500, 44, 24)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if g.MaxIdxX != 22 || g.MaxIdxY != 12 {
		t.Errorf("Expected bounds (22,12), got (%d,%d)", g.MaxIdxX, g.MaxIdxY)
	}
	// 900/45 = 20, 500/25 = 20
	if g.CellSize != 20 {
		t.Errorf("Expected cell size 20, got %v", g.CellSize)
	}
}

func TestNewGridUsesSmallerResolution(t *testing.T) {
	g, err := NewGrid(450, 500, 45, 25)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if g.CellSize != 10 {
		t.Errorf("Expected cell size 10, got %v", g.CellSize)
	}
}

func TestNewGridRejectsInvalidInput(t *testing.T) {
	cases := []struct {
		name   string
		w, h   float64
		nx, ny int
	}{
		{"zero width", 0, 100, 5, 5},
		{"negative height", 100, -1, 5, 5},
		{"no cells", 100, 100, 0, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewGrid(tc.w, tc.h, tc.nx, tc.ny)
			if !errors.Is(err, ErrInvalidGrid) {
				t.Errorf("Expected ErrInvalidGrid, got %v", err)
			}
		})
	}
}

func TestCellFromPositionRounding(t *testing.T) {
	g := mustGrid(t, 10, 5, 5)
	cases := []struct {
		x, y       float64
		idxX, idxY int
	}{
		{0, 0, 0, 0},
		{4.9, -4.9, 0, 0},
		{5, -5, 1, -1}, // half away from zero
		{14.99, 25, 1, 3},
		{-15, 15, -2, 2},
	}
	for _, tc := range cases {
		c := g.CellFromPosition(tc.x, tc.y)
		if c.IdxX != tc.idxX || c.IdxY != tc.idxY {
			t.Errorf("CellFromPosition(%v,%v): expected (%d,%d), got (%d,%d)",
				tc.x, tc.y, tc.idxX, tc.idxY, c.IdxX, c.IdxY)
		}
		if c.PosX != float64(tc.idxX)*10 || c.PosY != float64(tc.idxY)*10 {
			t.Errorf("CellFromPosition(%v,%v): expected snapped position, got (%v,%v)", tc.x, tc.y, c.PosX, c.PosY)
		}
	}
}

func TestCellIndexRoundTrip(t *testing.T) {
	g := mustGrid(t, 7.5, 10, 10)
	for x := -80.0; x <= 80; x += 3.3 {
		for y := -80.0; y <= 80; y += 4.1 {
			direct := g.CellFromPosition(x, y)
			again := g.CellFromIndex(direct.IdxX, direct.IdxY)
			if !again.Equal(direct) || again.PosX != direct.PosX || again.PosY != direct.PosY {
				t.Fatalf("Round trip mismatch at (%v,%v): %v vs %v", x, y, direct, again)
			}
		}
	}
}

func TestCellEqualityIgnoresCachedPosition(t *testing.T) {
	a := Cell{PosX: 1, PosY: 2, IdxX: 3, IdxY: 4}
	b := Cell{PosX: 99, PosY: -7, IdxX: 3, IdxY: 4}
	if !a.Equal(b) {
		t.Error("Expected cells with equal indices to be equal")
	}
	if a.Equal(Cell{IdxX: 3, IdxY: 5}) {
		t.Error("Expected cells with different indices to differ")
	}
}

func TestIsInsideBounds(t *testing.T) {
	g := mustGrid(t, 1, 3, 3)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{2, 2, true},
		{-2, -2, true},
		{3, 0, false},
		{0, -3, false},
		{4, 0, false},
	}
	for _, tc := range cases {
		if got := g.IsInsideBounds(tc.x, tc.y); got != tc.want {
			t.Errorf("IsInsideBounds(%d,%d): expected %v, got %v", tc.x, tc.y, tc.want, got)
		}
	}
}

func TestWallCellsRing(t *testing.T) {
	g := mustGrid(t, 1, 3, 2)
	wall := g.WallCells()

	// 7x5 grid: perimeter = 2*7 + 2*5 - 4
	if len(wall) != 20 {
		t.Fatalf("Expected 20 wall cells, got %d", len(wall))
	}

	seen := make(map[[2]int]bool)
	for _, c := range wall {
		key := [2]int{c.IdxX, c.IdxY}
		if seen[key] {
			t.Errorf("Duplicate wall cell %v", c)
		}
		seen[key] = true
		if g.IsInsideBounds(c.IdxX, c.IdxY) {
			t.Errorf("Wall cell %v is inside bounds", c)
		}
	}
	for _, corner := range [][2]int{{-3, -2}, {3, -2}, {-3, 2}, {3, 2}} {
		if !seen[corner] {
			t.Errorf("Missing corner %v", corner)
		}
	}
}

func TestInteriorCells(t *testing.T) {
	g := mustGrid(t, 1, 3, 2)
	if n := g.InteriorCells(); n != 15 {
		t.Errorf("Expected 15 interior cells, got %d", n)
	}
}

func TestOddCells(t *testing.T) {
	if OddCells(4) != 5 || OddCells(5) != 5 {
		t.Errorf("OddCells: got %d and %d", OddCells(4), OddCells(5))
	}
}
