package ai

import (
	"fmt"
	"sync"
	"time"

	"gridsnake/game"
	"gridsnake/game/manager"

	"github.com/golang/glog"
	"golang.org/x/exp/rand"
)

type TrainOptions struct {
	Agent    *QLearning // nil trains a fresh agent
	Stats    *manager.StateManager
	Workers  int     // Games played in parallel on the shared agent, 0 for 1
	MaxSteps int     // Ticks per episode before it is cut short, 0 for 100 per interior cell
	Dt       float64 // Fixed tick, 0 for one cell at the initial speed
	LogEvery int     // Episodes between progress logs, 0 disables them
}

type TrainSummary struct {
	Episodes     int
	BestScore    float64
	AverageScore float64
	TotalApples  int
	States       int
	Epsilon      float64
}

// worker owns one headless game steered by a pilot on the shared agent.
type worker struct {
	game  *game.Game
	pilot *Pilot
}

// Train plays episodes headless games, learning from each tick. Every episode
// is recorded in opts.Stats.
func Train(cfg game.Config, episodes int, opts TrainOptions) (*QLearning, TrainSummary, error) {
	if episodes < 1 {
		return nil, TrainSummary{}, fmt.Errorf("episodes must be positive, got %d", episodes)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	agent := opts.Agent
	if agent == nil {
		agent = NewQLearning(rand.New(rand.NewSource(seed + 1)))
	}
	stats := opts.Stats
	if stats == nil {
		stats = manager.NewStateManager()
	}
	numWorkers := opts.Workers
	if numWorkers < 1 {
		numWorkers = 1
	}

	cfg.OnGameOver = game.PolicyHalt
	workers := make([]worker, numWorkers)
	for i := range workers {
		wcfg := cfg
		wcfg.Seed = seed + uint64(i)*7919
		g, err := game.New(wcfg, stats)
		if err != nil {
			return nil, TrainSummary{}, err
		}
		workers[i] = worker{game: g, pilot: NewPilot(agent, true)}
	}

	dt := opts.Dt
	if dt <= 0 {
		dt = 1 / cfg.InitialSpeed
	}
	maxSteps := opts.MaxSteps
	if maxSteps <= 0 {
		maxSteps = 100 * workers[0].game.Grid().InteriorCells()
	}

	summary := TrainSummary{Episodes: episodes}
	played := stats.GamesPlayed()

	jobs := make(chan int)
	go func() {
		for i := 0; i < episodes; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	var (
		mu   sync.Mutex
		wg   sync.WaitGroup
		done int
	)
	for i := range workers {
		w := workers[i]
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range jobs {
				score, apples := w.episode(dt, maxSteps)
				agent.DecayEpsilon()

				mu.Lock()
				done++
				summary.TotalApples += apples
				if score > summary.BestScore {
					summary.BestScore = score
				}
				if opts.LogEvery > 0 && done%opts.LogEvery == 0 {
					glog.Infof("Training: episode %d/%d best %.0f states %d epsilon %.3f",
						done, episodes, summary.BestScore, agent.States(), agent.ExplorationRate())
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	var total float64
	for _, run := range stats.History()[played:] {
		total += run.Score
	}
	summary.AverageScore = total / float64(episodes)
	summary.States = agent.States()
	summary.Epsilon = agent.ExplorationRate()
	return agent, summary, nil
}

// episode plays until game over or maxSteps, then restarts the game so the
// run is recorded.
func (w worker) episode(dt float64, maxSteps int) (score float64, apples int) {
	for step := 0; step < maxSteps; step++ {
		if res := w.pilot.Step(w.game, dt); res.Over {
			break
		}
	}

	snap := w.game.Snapshot()
	w.pilot.Learn(w.game.Restart(), w.game.Snapshot())
	return snap.Score, snap.Apples
}
