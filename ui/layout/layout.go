// Package layout maps grid cells onto a pixel window. It holds no drawing
// calls so it can be used and tested without a display.
package layout

import (
	"fmt"

	"gridsnake/game"
	"gridsnake/game/manager"
	"gridsnake/game/types"
)

const (
	BorderPadding = 10
	// StatsFraction of the window width goes to the stats panel.
	StatsFraction = 7
)

type Layout struct {
	ScreenWidth  int32
	ScreenHeight int32
	GameWidth    int32
	StatsPanel   int32
	CellSize     int32
	OffsetX      int32
	OffsetY      int32
	GridWidth    int32
	GridHeight   int32

	maxIdxX int
	maxIdxY int
}

func min(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// New fits the whole grid, walls included, into the window left of the stats
// panel and centers it vertically.
func New(screenWidth, screenHeight int32, grid types.Grid) Layout {
	l := Layout{
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		maxIdxX:      grid.MaxIdxX,
		maxIdxY:      grid.MaxIdxY,
	}
	l.StatsPanel = screenWidth / StatsFraction
	l.GameWidth = screenWidth - l.StatsPanel

	cols := int32(2*grid.MaxIdxX + 1)
	rows := int32(2*grid.MaxIdxY + 1)
	availableWidth := l.GameWidth - BorderPadding*2
	availableHeight := screenHeight - BorderPadding*2
	l.CellSize = min(availableWidth/cols, availableHeight/rows)
	if l.CellSize < 1 {
		l.CellSize = 1
	}

	l.GridWidth = l.CellSize * cols
	l.GridHeight = l.CellSize * rows
	l.OffsetX = (l.GameWidth - l.GridWidth) / 2
	l.OffsetY = (screenHeight - l.GridHeight) / 2
	return l
}

// CellOrigin returns the top-left pixel of cell. Grid y grows upwards, screen
// y grows downwards.
func (l Layout) CellOrigin(c types.Cell) (x, y int32) {
	col := int32(c.IdxX + l.maxIdxX)
	row := int32(l.maxIdxY - c.IdxY)
	return l.OffsetX + col*l.CellSize, l.OffsetY + row*l.CellSize
}

// HeadTriangle returns the three points of the direction marker drawn on the
// head, pointing towards heading.
func (l Layout) HeadTriangle(head types.Cell, heading types.Key) [3][2]int32 {
	x, y := l.CellOrigin(head)
	size := l.CellSize
	half := size / 2

	switch heading {
	case types.KeyRight:
		return [3][2]int32{{x + size, y + half}, {x + half, y}, {x + half, y + size}}
	case types.KeyLeft:
		return [3][2]int32{{x, y + half}, {x + half, y + size}, {x + half, y}}
	case types.KeyDown:
		return [3][2]int32{{x + half, y + size}, {x + size, y + half}, {x, y + half}}
	default:
		return [3][2]int32{{x + half, y}, {x, y + half}, {x + size, y + half}}
	}
}

// StatsLines is the text of the stats panel, top to bottom.
func StatsLines(snap game.Snapshot, stats *manager.StateManager) []string {
	lines := []string{
		"Session:",
		fmt.Sprintf("High: %.0f", stats.HighScore()),
		fmt.Sprintf("Games: %d", stats.GamesPlayed()),
		fmt.Sprintf("Avg: %.2f", stats.AverageScore()),
		fmt.Sprintf("Median: %.2f", stats.MedianScore()),
		fmt.Sprintf("Avg time: %.1fs", stats.AverageDuration()),
		"",
		"Run:",
		fmt.Sprintf("Speed: %.2f", snap.Speed),
		fmt.Sprintf("Length: %d", len(snap.Body)+1),
	}
	if snap.State == game.Over {
		lines = append(lines, fmt.Sprintf("Over: %s", snap.Cause))
	}
	return lines
}

// GameOverText is the banner shown while the game is over.
func GameOverText(snap game.Snapshot) string {
	return fmt.Sprintf("Game Over! (%s) Press R to restart", snap.Cause)
}
