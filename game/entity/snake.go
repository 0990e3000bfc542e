package entity

import (
	"gridsnake/game/types"

	"github.com/golang/glog"
)

// Position is the continuous position of the head.
type Position struct {
	X, Y float64
}

// Velocity is axis-constrained: exactly one of X and Y is non-zero while
// moving, and Axis names which one.
type Velocity struct {
	X, Y float64
	Axis types.Axis
}

// Segment is one body element. Order starts at 1 next to the head.
type Segment struct {
	Cell  types.Cell
	Order int
}

type Snake struct {
	Position Position
	Velocity Velocity
	Head     types.Cell
	// Body is kept sorted by Order, nearest the head first.
	Body []Segment
}

// NewSnake spawns a snake at the origin moving right at speed (continuous
// units per second), with bodyLength-1 segments trailing to the left.
func NewSnake(grid types.Grid, bodyLength int, speed float64) *Snake {
	head := grid.Origin()
	s := &Snake{
		Position: Position{X: head.PosX, Y: head.PosY},
		Velocity: Velocity{X: speed, Y: 0, Axis: types.Horizontal},
		Head:     head,
		Body:     make([]Segment, 0, bodyLength),
	}

	cell := head
	for i := 1; i < bodyLength; i++ {
		cell = grid.CellFromIndex(cell.IdxX-1, cell.IdxY)
		s.Body = append(s.Body, Segment{Cell: cell, Order: i})
	}
	return s
}

// Move integrates the position over dt and returns the trace of cells crossed
// when the head entered a new cell. moved is false for sub-cell motion.
func (s *Snake) Move(grid types.Grid, dt float64) (trace []types.Cell, moved bool) {
	s.Position.X += s.Velocity.X * dt
	s.Position.Y += s.Velocity.Y * dt

	newCell := grid.CellFromPosition(s.Position.X, s.Position.Y)
	if newCell.Equal(s.Head) {
		return nil, false
	}

	trace = Trace(grid, s.Head, newCell)
	s.Head.Set(newCell)
	return trace, true
}

// Steer turns the snake when key is perpendicular to the current axis.
// Parallel requests are ignored and reported as false.
func (s *Snake) Steer(key types.Key, speed float64) bool {
	if key.Axis() == s.Velocity.Axis {
		glog.V(2).Infof("Steer: %v ignored while moving %v", key, s.Velocity.Axis)
		return false
	}

	switch key.Axis() {
	case types.Vertical:
		s.Velocity.X = 0
		s.Velocity.Y = key.Sign() * speed
	case types.Horizontal:
		s.Velocity.X = key.Sign() * speed
		s.Velocity.Y = 0
	}
	s.Velocity.Axis = key.Axis()
	return true
}

// SetSpeed rescales the active axis, keeping the direction.
func (s *Snake) SetSpeed(speed float64) {
	if s.Velocity.Axis == types.Horizontal {
		s.Velocity.X = sign(s.Velocity.X) * speed
	} else {
		s.Velocity.Y = sign(s.Velocity.Y) * speed
	}
}

// Heading returns the key matching the current direction of travel.
func (s *Snake) Heading() types.Key {
	if s.Velocity.Axis == types.Vertical {
		if s.Velocity.Y < 0 {
			return types.KeyDown
		}
		return types.KeyUp
	}
	if s.Velocity.X < 0 {
		return types.KeyLeft
	}
	return types.KeyRight
}

// Follow propagates the head's trace down the body. The trace is used as a
// ring of target cells read from its tail: each segment takes the cell under
// the cursor and leaves its previous cell in that slot for the segments behind.
func (s *Snake) Follow(trace []types.Cell) {
	if len(trace) == 0 {
		return
	}

	targets := make([]types.Cell, len(trace))
	copy(targets, trace)

	cursor := len(targets) - 1
	for i := range s.Body {
		next := targets[cursor]
		targets[cursor] = s.Body[i].Cell

		if cursor != 0 {
			cursor--
		} else {
			cursor = len(targets) - 1
		}

		s.Body[i].Cell.Set(next)
	}
}

// Grow appends n segments stacked on the last segment's cell.
func (s *Snake) Grow(n int) {
	if len(s.Body) == 0 || n <= 0 {
		return
	}
	last := s.Body[len(s.Body)-1]
	for i := 1; i <= n; i++ {
		s.Body = append(s.Body, Segment{Cell: last.Cell, Order: last.Order + i})
	}
}

// BodyCells returns the segment cells in order.
func (s *Snake) BodyCells() []types.Cell {
	cells := make([]types.Cell, len(s.Body))
	for i, seg := range s.Body {
		cells[i] = seg.Cell
	}
	return cells
}

// Occupied returns the head cell followed by every body cell.
func (s *Snake) Occupied() []types.Cell {
	return append([]types.Cell{s.Head}, s.BodyCells()...)
}

// TeleportTo places the head on cell without producing a trace.
func (s *Snake) TeleportTo(cell types.Cell) {
	s.Position = Position{X: cell.PosX, Y: cell.PosY}
	s.Head.Set(cell)
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}
