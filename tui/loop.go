// Package tui runs the game in a terminal.
package tui

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gridsnake/ai"
	"gridsnake/game"
	"gridsnake/game/types"

	"github.com/gdamore/tcell/v2"
	"github.com/golang/glog"
)

type Options struct {
	Tick     time.Duration         // 0 for 60 Hz
	Pilot    *ai.Pilot             // nil for keyboard control
	OnResult func(res game.Result) // called after every tick
}

type command int

const (
	cmdNone command = iota
	cmdSteer
	cmdRestart
	cmdQuit
)

var directions = map[tcell.Key]types.Key{
	tcell.KeyUp:    types.KeyUp,
	tcell.KeyRight: types.KeyRight,
	tcell.KeyDown:  types.KeyDown,
	tcell.KeyLeft:  types.KeyLeft,
}

var runeDirections = map[rune]types.Key{
	'w': types.KeyUp,
	'd': types.KeyRight,
	's': types.KeyDown,
	'a': types.KeyLeft,
}

// commandFor maps a key event to what the loop should do with it.
func commandFor(ev *tcell.EventKey) (command, types.Key) {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return cmdQuit, 0
	case tcell.KeyEnter:
		return cmdRestart, 0
	case tcell.KeyRune:
		switch r := ev.Rune(); r {
		case 'q', 'Q':
			return cmdQuit, 0
		case 'r', 'R':
			return cmdRestart, 0
		default:
			if key, ok := runeDirections[r]; ok {
				return cmdSteer, key
			}
		}
	default:
		if key, ok := directions[ev.Key()]; ok {
			return cmdSteer, key
		}
	}
	return cmdNone, 0
}

// input buffers key presses between ticks.
type input struct {
	mu      sync.Mutex
	keys    []types.Key
	restart bool
}

func (in *input) push(key types.Key) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.keys = append(in.keys, key)
}

func (in *input) requestRestart() {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.restart = true
}

func (in *input) drain() ([]types.Key, bool) {
	in.mu.Lock()
	defer in.mu.Unlock()
	keys, restart := in.keys, in.restart
	in.keys, in.restart = nil, false
	return keys, restart
}

// Run takes over the terminal and plays g until the context is cancelled or
// the user quits. Returns an error if the screen can't be created.
func Run(ctx context.Context, g *game.Game, opts Options) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("problem creating screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("init problem: %w", err)
	}
	defer s.Fini()
	s.SetStyle(defStyle)

	cols, rows := boardSize(g.Grid())
	if w, h := s.Size(); w < cols || h < rows {
		glog.Warningf("Terminal: %dx%d is smaller than the %dx%d board", w, h, cols, rows)
	}
	return loop(ctx, s, g, opts)
}

func loop(ctx context.Context, s tcell.Screen, g *game.Game, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	in := &input{}
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				cmd, key := commandFor(ev)
				switch cmd {
				case cmdQuit:
					cancel()
					return
				case cmdRestart:
					in.requestRestart()
				case cmdSteer:
					glog.V(2).Infof("Terminal: key %v", key)
					in.push(key)
				}
			case *tcell.EventResize:
				s.Sync()
			}
		}
	}()

	tick := opts.Tick
	if tick <= 0 {
		tick = time.Second / 60
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			glog.Infof("Terminal: stopped after %d games", g.Stats().GamesPlayed())
			return nil
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now

			keys, restart := in.drain()
			var res game.Result
			switch {
			case restart:
				res = g.Restart()
				if opts.Pilot != nil {
					opts.Pilot.Learn(res, g.Snapshot())
				}
			case opts.Pilot != nil:
				res = opts.Pilot.Step(g, dt)
			default:
				res = g.Update(dt, keys)
			}
			if opts.OnResult != nil {
				opts.OnResult(res)
			}

			draw(s, g.Snapshot())
			s.Show()
		}
	}
}
