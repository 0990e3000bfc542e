package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

// CollisionType is the outcome of the terminal checks of one tick.
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	}
	return "none"
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision runs the wall check, then the self check, against the body
// as it was before this tick's follow step.
func (cm *CollisionManager) CheckCollision(head types.Cell, trace []types.Cell, body []entity.Segment) CollisionType {
	if cm.isWallCollision(head) {
		return WallCollision
	}
	if cm.isSelfCollision(head, trace, body) {
		return SelfCollision
	}
	return NoCollision
}

// isWallCollision checks if the head left the interior
func (cm *CollisionManager) isWallCollision(head types.Cell) bool {
	return !cm.grid.IsInsideBounds(head.IdxX, head.IdxY)
}

// isSelfCollision checks the head and every traced cell against the body,
// so a head crossing several cells in one tick cannot jump over a segment.
func (cm *CollisionManager) isSelfCollision(head types.Cell, trace []types.Cell, body []entity.Segment) bool {
	for _, seg := range body {
		if seg.Cell.Equal(head) {
			return true
		}
		if types.ContainsCell(trace, seg.Cell) {
			return true
		}
	}
	return false
}

// IsFoodCollision reports whether the head reached food this tick, either by
// standing on it or by passing over it.
func (cm *CollisionManager) IsFoodCollision(head types.Cell, trace []types.Cell, food types.Cell) bool {
	if head.Equal(food) {
		return true
	}
	return types.ContainsCell(trace, food)
}

// ValidateSpawnPosition checks that pos is inside the walls and free of the snake
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Cell, occupied []types.Cell) bool {
	if cm.isWallCollision(pos) {
		return false
	}
	return !types.ContainsCell(occupied, pos)
}
