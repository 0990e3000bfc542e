package ai

import (
	"gridsnake/game"
	"gridsnake/game/types"
)

// State is what the agent sees of a snapshot.
type State struct {
	FoodDir      [2]int  // Sign of the food offset from the head (x, y)
	FoodDistance int     // Manhattan distance to food
	Dangers      [4]bool // Wall or body next to the head, indexed by Action
	Axis         types.Axis
}

// Observe reads the agent state off a snapshot.
func Observe(snap game.Snapshot) State {
	head := snap.Head
	dx := snap.Food.IdxX - head.IdxX
	dy := snap.Food.IdxY - head.IdxY

	state := State{
		FoodDir:      [2]int{sign(dx), sign(dy)},
		FoodDistance: abs(dx) + abs(dy),
		Axis:         snap.Heading.Axis(),
	}

	for _, action := range actions {
		stepX, stepY := action.Key().Step()
		next := snap.Grid.CellFromIndex(head.IdxX+stepX, head.IdxY+stepY)
		state.Dangers[action] = isDanger(snap, next)
	}
	return state
}

// isDanger reports whether entering cell ends the run.
func isDanger(snap game.Snapshot, cell types.Cell) bool {
	if !snap.Grid.IsInsideBounds(cell.IdxX, cell.IdxY) {
		return true
	}
	return types.ContainsCell(snap.Body, cell)
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
