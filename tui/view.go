package tui

import (
	"gridsnake/game"
	"gridsnake/game/types"

	"github.com/gdamore/tcell/v2"
)

var (
	defStyle  = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	wallStyle = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorBlue)
	bodyStyle = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorGreen)
	headStyle = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorYellow)
	foodStyle = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorRed)
)

// hudRows are the text rows above the board.
const hudRows = 1

// cellToScreen maps a grid cell to the left of its two terminal columns.
func cellToScreen(grid types.Grid, c types.Cell) (col, row int) {
	col = (c.IdxX + grid.MaxIdxX) * 2
	row = grid.MaxIdxY - c.IdxY + hudRows
	return col, row
}

// boardSize returns the terminal columns and rows needed for the board and HUD.
func boardSize(grid types.Grid) (cols, rows int) {
	return (2*grid.MaxIdxX + 1) * 2, 2*grid.MaxIdxY + 1 + hudRows
}

// headGlyph points the way the snake is heading.
func headGlyph(heading types.Key) rune {
	switch heading {
	case types.KeyUp:
		return '^'
	case types.KeyDown:
		return 'v'
	case types.KeyLeft:
		return '<'
	}
	return '>'
}

func drawText(s tcell.Screen, col, row int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(col, row, r, nil, style)
		col++
	}
}

func setCell(s tcell.Screen, grid types.Grid, c types.Cell, left, right rune, style tcell.Style) {
	col, row := cellToScreen(grid, c)
	s.SetContent(col, row, left, nil, style)
	s.SetContent(col+1, row, right, nil, style)
}

func draw(s tcell.Screen, snap game.Snapshot) {
	s.Clear()
	grid := snap.Grid

	drawText(s, 0, 0, defStyle, snap.ApplesText+"  "+snap.ScoreText)

	for _, c := range snap.Walls {
		setCell(s, grid, c, tcell.RuneBlock, tcell.RuneBlock, wallStyle)
	}
	setCell(s, grid, snap.Food, tcell.RuneDiamond, ' ', foodStyle)
	for _, c := range snap.Body {
		setCell(s, grid, c, tcell.RuneBlock, tcell.RuneBlock, bodyStyle)
	}
	setCell(s, grid, snap.Head, headGlyph(snap.Heading), headGlyph(snap.Heading), headStyle)

	if snap.State == game.Over {
		text := "game over (" + snap.Cause.String() + ") r to restart, q to quit"
		cols, rows := boardSize(grid)
		col := (cols - len(text)) / 2
		if col < 0 {
			col = 0
		}
		drawText(s, col, rows/2, defStyle, text)
	}
}
