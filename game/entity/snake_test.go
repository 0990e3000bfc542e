package entity

import (
	"testing"

	"gridsnake/game/types"
)

func TestNewSnakeLayout(t *testing.T) {
	g := testGrid(t, 10, 10)
	s := NewSnake(g, 4, 50)

	if s.Head.IdxX != 0 || s.Head.IdxY != 0 {
		t.Errorf("Expected head at origin, got %v", s.Head)
	}
	if len(s.Body) != 3 {
		t.Fatalf("Expected 3 segments, got %d", len(s.Body))
	}
	for i, seg := range s.Body {
		if seg.Order != i+1 {
			t.Errorf("Segment %d: expected order %d, got %d", i, i+1, seg.Order)
		}
		if seg.Cell.IdxX != -(i+1) || seg.Cell.IdxY != 0 {
			t.Errorf("Segment %d: expected (%d,0), got %v", i, -(i + 1), seg.Cell)
		}
	}
	if s.Velocity.X != 50 || s.Velocity.Y != 0 || s.Velocity.Axis != types.Horizontal {
		t.Errorf("Unexpected initial velocity %+v", s.Velocity)
	}
}

func TestMoveSubCellEmitsNothing(t *testing.T) {
	g := testGrid(t, 10, 10)
	s := NewSnake(g, 2, 10) // one cell per second

	trace, moved := s.Move(g, 0.3)
	if moved || trace != nil {
		t.Errorf("Expected no movement event, got %v", trace)
	}
	if s.Position.X != 3 {
		t.Errorf("Expected position to integrate to 3, got %v", s.Position.X)
	}
}

func TestMoveAcrossCells(t *testing.T) {
	g := testGrid(t, 10, 10)
	s := NewSnake(g, 2, 10)

	// 2.1 cells in one tick
	trace, moved := s.Move(g, 2.1)
	if !moved {
		t.Fatal("Expected movement event")
	}
	if s.Head.IdxX != 2 {
		t.Errorf("Expected head at index 2, got %v", s.Head)
	}
	got := indices(trace)
	if len(got) != 2 || got[0] != [2]int{0, 0} || got[1] != [2]int{1, 0} {
		t.Errorf("Expected trace [(0,0) (1,0)], got %v", got)
	}
}

func TestSteerPerpendicularOnly(t *testing.T) {
	g := testGrid(t, 10, 10)
	s := NewSnake(g, 3, 10)

	if s.Steer(types.KeyLeft, 10) {
		t.Error("Expected reversal to be ignored")
	}
	if s.Steer(types.KeyRight, 10) {
		t.Error("Expected same-axis request to be ignored")
	}
	if s.Velocity.X != 10 || s.Velocity.Y != 0 {
		t.Errorf("Expected unchanged velocity, got %+v", s.Velocity)
	}

	if !s.Steer(types.KeyUp, 12) {
		t.Fatal("Expected vertical turn to be accepted")
	}
	if s.Velocity.X != 0 || s.Velocity.Y != 12 || s.Velocity.Axis != types.Vertical {
		t.Errorf("Unexpected velocity after turn %+v", s.Velocity)
	}

	before := s.Velocity
	if s.Steer(types.KeyUp, 12) || s.Steer(types.KeyDown, 12) {
		t.Error("Expected vertical requests to be ignored while vertical")
	}
	if s.Velocity != before {
		t.Errorf("Expected velocity unchanged, got %+v", s.Velocity)
	}

	if !s.Steer(types.KeyLeft, 12) || s.Velocity.X != -12 || s.Velocity.Y != 0 {
		t.Errorf("Expected left turn, got %+v", s.Velocity)
	}
	if s.Heading() != types.KeyLeft {
		t.Errorf("Expected heading left, got %v", s.Heading())
	}
}

func TestSetSpeedKeepsDirection(t *testing.T) {
	g := testGrid(t, 10, 10)
	s := NewSnake(g, 3, 10)
	s.Steer(types.KeyDown, 10)
	s.SetSpeed(11)
	if s.Velocity.Y != -11 || s.Velocity.X != 0 {
		t.Errorf("Expected (0,-11), got %+v", s.Velocity)
	}
}

func TestFollowSingleCellStep(t *testing.T) {
	g := testGrid(t, 10, 10)
	s := NewSnake(g, 4, 10) // body at -1,-2,-3

	trace, _ := s.Move(g, 1.0)
	s.Follow(trace)

	want := [][2]int{{0, 0}, {-1, 0}, {-2, 0}}
	got := indices(s.BodyCells())
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Segment %d: expected %v, got %v", i+1, want[i], got[i])
		}
	}
}

func TestFollowMultiCellStep(t *testing.T) {
	g := testGrid(t, 10, 10)
	s := NewSnake(g, 5, 10) // body at -1..-4

	// head 0 -> 2 crosses (0,0) and (1,0)
	trace, _ := s.Move(g, 2.0)
	s.Follow(trace)

	want := [][2]int{{1, 0}, {0, 0}, {-1, 0}, {-2, 0}}
	got := indices(s.BodyCells())
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Segment %d: expected %v, got %v", i+1, want[i], got[i])
		}
	}
}

func TestFollowAroundCorner(t *testing.T) {
	g := testGrid(t, 10, 10)
	s := NewSnake(g, 4, 10)

	trace, _ := s.Move(g, 1.0) // head (1,0)
	s.Follow(trace)
	s.Steer(types.KeyUp, 10)
	trace, _ = s.Move(g, 1.0) // head (1,1)
	s.Follow(trace)

	want := [][2]int{{1, 0}, {0, 0}, {-1, 0}}
	got := indices(s.BodyCells())
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Segment %d: expected %v, got %v", i+1, want[i], got[i])
		}
	}
}

func TestGrowContinuesOrder(t *testing.T) {
	g := testGrid(t, 10, 10)
	s := NewSnake(g, 3, 10)
	s.Grow(2)
	s.Grow(1)

	if len(s.Body) != 5 {
		t.Fatalf("Expected 5 segments, got %d", len(s.Body))
	}
	for i, seg := range s.Body {
		if seg.Order != i+1 {
			t.Errorf("Expected contiguous order %d, got %d", i+1, seg.Order)
		}
	}
	tail := s.Body[1].Cell
	for _, seg := range s.Body[2:] {
		if !seg.Cell.Equal(tail) {
			t.Errorf("Expected new segment stacked on %v, got %v", tail, seg.Cell)
		}
	}
}

func TestTeleportTo(t *testing.T) {
	g := testGrid(t, 10, 10)
	s := NewSnake(g, 3, 10)
	s.Move(g, 3)
	s.TeleportTo(g.Origin())
	if s.Position.X != 0 || s.Position.Y != 0 || s.Head.IdxX != 0 {
		t.Errorf("Expected head at origin, got %+v %v", s.Position, s.Head)
	}
	if _, moved := s.Move(g, 0.01); moved {
		t.Error("Expected no trace right after teleport")
	}
}
