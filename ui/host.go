package ui

import (
	"gridsnake/ai"
	"gridsnake/game"
	"gridsnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/golang/glog"
)

type Options struct {
	Width, Height int32
	FPS           int32
	Title         string
	Pilot         *ai.Pilot             // nil for keyboard control
	OnResult      func(res game.Result) // called after every tick
}

var keyBindings = []struct {
	raylib int32
	key    types.Key
}{
	{rl.KeyW, types.KeyUp},
	{rl.KeyUp, types.KeyUp},
	{rl.KeyD, types.KeyRight},
	{rl.KeyRight, types.KeyRight},
	{rl.KeyS, types.KeyDown},
	{rl.KeyDown, types.KeyDown},
	{rl.KeyA, types.KeyLeft},
	{rl.KeyLeft, types.KeyLeft},
}

// pressedKeys collects the direction keys pressed since the previous frame.
func pressedKeys() []types.Key {
	var keys []types.Key
	for _, b := range keyBindings {
		if rl.IsKeyPressed(b.raylib) {
			keys = append(keys, b.key)
		}
	}
	return keys
}

// Run opens a window and drives g once per frame until the window closes or
// Q is pressed. Esc closes the window through raylib's exit key.
func Run(g *game.Game, opts Options) error {
	rl.InitWindow(opts.Width, opts.Height, opts.Title)
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()
	rl.SetTargetFPS(opts.FPS)

	glog.Infof("Window: %dx%d at %d fps", opts.Width, opts.Height, opts.FPS)
	renderer := NewRenderer()

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}

		var res game.Result
		dt := float64(rl.GetFrameTime())
		switch {
		case rl.IsKeyPressed(rl.KeyR) || rl.IsKeyPressed(rl.KeyEnter):
			res = g.Restart()
			if opts.Pilot != nil {
				opts.Pilot.Learn(res, g.Snapshot())
			}
		case opts.Pilot != nil:
			res = opts.Pilot.Step(g, dt)
		default:
			res = g.Update(dt, pressedKeys())
		}
		if opts.OnResult != nil {
			opts.OnResult(res)
		}

		renderer.Draw(g.Snapshot(), g.Stats())
	}

	glog.Infof("Window: closed after %d games", g.Stats().GamesPlayed())
	return nil
}
