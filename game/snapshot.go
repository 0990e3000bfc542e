package game

import (
	"gridsnake/game/types"
)

// Snapshot is a read-only copy of what hosts need to draw one frame.
type Snapshot struct {
	Grid    types.Grid
	Head    types.Cell
	Heading types.Key
	Body    []types.Cell
	Walls   []types.Cell
	Food    types.Cell

	Score  float64
	Apples int
	Speed  float64 // cells per second

	State State
	Cause Cause
	Steps int

	ApplesText string
	ScoreText  string
}

func (g *Game) Snapshot() Snapshot {
	walls := make([]types.Cell, len(g.walls))
	copy(walls, g.walls)

	return Snapshot{
		Grid:       g.grid,
		Head:       g.snake.Head,
		Heading:    g.snake.Heading(),
		Body:       g.snake.BodyCells(),
		Walls:      walls,
		Food:       g.foodMgr.Food(),
		Score:      g.scoreMgr.Score(),
		Apples:     g.scoreMgr.ApplesEaten(),
		Speed:      g.scoreMgr.SpeedInCells(),
		State:      g.state,
		Cause:      g.cause,
		Steps:      g.Steps,
		ApplesText: g.scoreMgr.ApplesText(),
		ScoreText:  g.scoreMgr.ScoreText(),
	}
}

// Occupied reports whether cell holds the head or a body segment.
func (s Snapshot) Occupied(cell types.Cell) bool {
	return cell.Equal(s.Head) || types.ContainsCell(s.Body, cell)
}
