package ui

import (
	"gridsnake/game"
	"gridsnake/game/manager"
	"gridsnake/ui/layout"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	headColor = rl.Color{R: 0, G: 228, B: 48, A: 255}
	bodyColor = rl.Color{R: 0, G: 158, B: 47, A: 255}
)

type Renderer struct {
	layout layout.Layout
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// UpdateDimensions refits the grid to the current window.
func (r *Renderer) UpdateDimensions(snap game.Snapshot) {
	r.layout = layout.New(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()), snap.Grid)
}

func min(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func (r *Renderer) Draw(snap game.Snapshot, stats *manager.StateManager) {
	r.UpdateDimensions(snap)
	l := r.layout

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	fontSize := min(l.ScreenHeight/30, l.CellSize)
	lineHeight := fontSize + fontSize/3

	// Draw walls
	for _, c := range snap.Walls {
		x, y := l.CellOrigin(c)
		rl.DrawRectangle(x, y, l.CellSize, l.CellSize, rl.DarkGray)
	}

	// Draw food
	x, y := l.CellOrigin(snap.Food)
	rl.DrawRectangle(x, y, l.CellSize, l.CellSize, rl.Red)

	// Draw snake body
	for _, c := range snap.Body {
		x, y := l.CellOrigin(c)
		rl.DrawRectangle(x+1, y+1, l.CellSize-2, l.CellSize-2, bodyColor)
	}

	// Draw head with direction indicator
	x, y = l.CellOrigin(snap.Head)
	rl.DrawRectangle(x, y, l.CellSize, l.CellSize, headColor)
	tri := l.HeadTriangle(snap.Head, snap.Heading)
	rl.DrawTriangle(
		rl.Vector2{X: float32(tri[0][0]), Y: float32(tri[0][1])},
		rl.Vector2{X: float32(tri[1][0]), Y: float32(tri[1][1])},
		rl.Vector2{X: float32(tri[2][0]), Y: float32(tri[2][1])},
		rl.Yellow)

	// Score inside the top-left wall corner
	textX := l.OffsetX + l.CellSize + 5
	textY := l.OffsetY + l.CellSize + 5
	rl.DrawText(snap.ApplesText, textX, textY, fontSize, rl.White)
	rl.DrawText(snap.ScoreText, textX, textY+lineHeight, fontSize, rl.White)

	if snap.State == game.Over {
		text := layout.GameOverText(snap)
		textWidth := rl.MeasureText(text, fontSize)
		rl.DrawText(text,
			l.OffsetX+(l.GridWidth-textWidth)/2,
			l.OffsetY+l.GridHeight/2,
			fontSize, rl.Yellow)
	}

	r.drawStatsPanel(snap, stats, fontSize, lineHeight)
	rl.EndDrawing()
}

func (r *Renderer) drawStatsPanel(snap game.Snapshot, stats *manager.StateManager, fontSize, lineHeight int32) {
	l := r.layout
	statsX := l.GameWidth + 5
	statsY := int32(10)

	rl.DrawRectangle(statsX-5, 0, l.StatsPanel+5, l.ScreenHeight, rl.DarkGray)
	for _, line := range layout.StatsLines(snap, stats) {
		rl.DrawText(line, statsX, statsY, fontSize, rl.White)
		statsY += lineHeight
	}
}
