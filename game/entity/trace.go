package entity

import "gridsnake/game/types"

// Trace lists the cells crossed when moving from oldCell to newCell:
// oldCell first, then every intermediate cell, newCell excluded.
// It is empty when both cells are equal.
func Trace(grid types.Grid, oldCell, newCell types.Cell) []types.Cell {
	if oldCell.Equal(newCell) {
		return nil
	}

	trace := make([]types.Cell, 0, abs(newCell.IdxX-oldCell.IdxX)+abs(newCell.IdxY-oldCell.IdxY))
	trace = append(trace, oldCell)

	for _, idxX := range between(oldCell.IdxX, newCell.IdxX) {
		trace = append(trace, grid.CellFromIndex(idxX, oldCell.IdxY))
	}

	if oldCell.IdxY != newCell.IdxY {
		// Both axes changed: turn the corner at the new column.
		if oldCell.IdxX != newCell.IdxX {
			trace = append(trace, grid.CellFromIndex(newCell.IdxX, oldCell.IdxY))
		}
		for _, idxY := range between(oldCell.IdxY, newCell.IdxY) {
			trace = append(trace, grid.CellFromIndex(newCell.IdxX, idxY))
		}
	}

	return trace
}

// between returns the indices strictly between from and to, walking from from.
func between(from, to int) []int {
	if from == to {
		return nil
	}
	step := 1
	if to < from {
		step = -1
	}
	out := make([]int, 0, abs(to-from)-1)
	for i := from + step; i != to; i += step {
		out = append(out, i)
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
