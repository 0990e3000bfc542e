package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"time"

	"gridsnake/ai"
	"gridsnake/game"
	"gridsnake/game/manager"
	"gridsnake/sound"
	"gridsnake/tui"
	"gridsnake/ui"

	"github.com/golang/glog"
	"golang.org/x/exp/rand"
)

type options struct {
	cfg       game.Config
	onOver    string
	term      bool
	autopilot bool
	train     int
	workers   int
	qtable    string
	mute      bool
	width     int
	height    int
	fps       int
}

func main() {
	opts := options{cfg: game.DefaultConfig()}
	cfg := &opts.cfg

	flag.IntVar(&cfg.HorizontalCells, "cells-x", cfg.HorizontalCells, "Horizontal grid cells, walls included (odd)")
	flag.IntVar(&cfg.VerticalCells, "cells-y", cfg.VerticalCells, "Vertical grid cells, walls included (odd)")
	flag.IntVar(&cfg.InitialBodyLength, "body", cfg.InitialBodyLength, "Initial snake length, head included")
	flag.Float64Var(&cfg.InitialSpeed, "speed", cfg.InitialSpeed, "Initial speed in cells per second")
	flag.IntVar(&cfg.ElementsPerFood, "growth", cfg.ElementsPerFood, "Segments added per food")
	flag.IntVar(&cfg.ScoreIncrement, "increment", cfg.ScoreIncrement, "Apples credited per food")
	flag.Uint64Var(&cfg.Seed, "seed", 0, "Random seed, 0 for a time based seed")
	flag.StringVar(&opts.onOver, "on-over", "halt", "After a crash: halt, teleport or restart")
	flag.BoolVar(&opts.term, "term", false, "Play in the terminal instead of a window")
	flag.BoolVar(&opts.autopilot, "autopilot", false, "Let the Q-learning agent steer")
	flag.IntVar(&opts.train, "train", 0, "Train the agent headless for this many episodes and exit")
	flag.IntVar(&opts.workers, "workers", 1, "Games trained in parallel")
	flag.StringVar(&opts.qtable, "qtable", "", "Q-table file to load and save")
	flag.BoolVar(&opts.mute, "mute", false, "Disable sound")
	flag.IntVar(&opts.width, "width", 1280, "Window width in pixels")
	flag.IntVar(&opts.height, "height", 800, "Window height in pixels")
	flag.IntVar(&opts.fps, "fps", 60, "Target frames per second")
	flag.Parse()
	defer glog.Flush()

	if err := run(opts); err != nil {
		glog.Errorf("Exiting: %v", err)
		glog.Flush()
		os.Exit(1)
	}
}

func run(opts options) error {
	policy, err := game.ParseGameOverPolicy(opts.onOver)
	if err != nil {
		return err
	}
	if opts.autopilot && !flagSet("on-over") {
		policy = game.PolicyRestart
	}
	opts.cfg.OnGameOver = policy
	opts.cfg.ScreenWidth = float64(opts.width)
	opts.cfg.ScreenHeight = float64(opts.height)

	if opts.train > 0 {
		return train(opts)
	}

	stats := manager.NewStateManager()
	g, err := game.New(opts.cfg, stats)
	if err != nil {
		return err
	}

	var pilot *ai.Pilot
	if opts.autopilot {
		agent := loadAgent(opts.qtable)
		pilot = ai.NewPilot(agent, true)
		if opts.qtable != "" {
			defer saveAgent(agent, opts.qtable)
		}
	}

	var onResult func(game.Result)
	if !opts.mute {
		player := sound.NewPlayer(0)
		if err := player.Init(); err != nil {
			glog.Warningf("Sound: disabled: %v", err)
		} else {
			defer player.Close()
			onResult = player.Handle
		}
	}

	defer func() {
		glog.Infof("Session: %d games, high score %.0f, average %.2f",
			stats.GamesPlayed(), stats.HighScore(), stats.AverageScore())
	}()

	if opts.term {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return tui.Run(ctx, g, tui.Options{Pilot: pilot, OnResult: onResult})
	}
	return ui.Run(g, ui.Options{
		Width:    int32(opts.width),
		Height:   int32(opts.height),
		FPS:      int32(opts.fps),
		Title:    "Snake",
		Pilot:    pilot,
		OnResult: onResult,
	})
}

func train(opts options) error {
	agent := loadAgent(opts.qtable)
	start := time.Now()

	_, summary, err := ai.Train(opts.cfg, opts.train, ai.TrainOptions{
		Agent:    agent,
		Workers:  opts.workers,
		LogEvery: 100,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Trained %d episodes in %s\n", summary.Episodes, time.Since(start).Round(time.Millisecond))
	fmt.Printf("Best score: %.0f  Average: %.2f  Apples: %d\n", summary.BestScore, summary.AverageScore, summary.TotalApples)
	fmt.Printf("States: %d  Epsilon: %.3f\n", summary.States, summary.Epsilon)

	if opts.qtable != "" {
		return agent.SaveQTable(opts.qtable)
	}
	return nil
}

// loadAgent returns an agent primed from filename when it exists. A loaded
// agent starts with minimal exploration.
func loadAgent(filename string) *ai.QLearning {
	agent := ai.NewQLearning(rand.New(rand.NewSource(uint64(time.Now().UnixNano()))))
	if filename == "" {
		return agent
	}

	err := agent.LoadQTable(filename)
	switch {
	case err == nil:
		agent.Epsilon = ai.MinEpsilon
	case errors.Is(err, fs.ErrNotExist):
		glog.Infof("Q-table: %s not found, starting fresh", filename)
	default:
		glog.Warningf("Q-table: %v, starting fresh", err)
	}
	return agent
}

// flagSet reports whether name was given on the command line.
func flagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

func saveAgent(agent *ai.QLearning, filename string) {
	if err := agent.SaveQTable(filename); err != nil {
		glog.Warningf("Q-table: save failed: %v", err)
	}
}
