package manager

import (
	"fmt"

	"gridsnake/game/types"

	"github.com/golang/glog"
)

// ScoreManager tracks apples, score and speed. Speed is kept in grid units per
// second; the continuous speed is that value times the cell size.
type ScoreManager struct {
	increment   int
	cellSize    float64
	applesEaten int
	score       float64
	speed       float64
}

func NewScoreManager(grid types.Grid, initialSpeed float64, increment int) *ScoreManager {
	return &ScoreManager{
		increment: increment,
		cellSize:  grid.CellSize,
		speed:     initialSpeed,
	}
}

// FoodEaten credits one food. The score gain uses the speed before any
// speed-up triggered by this same food. Returns true when speed increased.
func (sm *ScoreManager) FoodEaten() bool {
	sm.applesEaten += sm.increment
	sm.score += float64(sm.increment) * sm.speed * sm.speed

	if sm.applesEaten%(types.SpeedUpEveryFood*sm.increment) != 0 {
		return false
	}

	sm.speed *= types.SpeedUpFactor
	glog.V(1).Infof("Score: %d apples, speed up to %.3f cells/s", sm.applesEaten, sm.speed)
	return true
}

func (sm *ScoreManager) ApplesEaten() int {
	return sm.applesEaten
}

func (sm *ScoreManager) Score() float64 {
	return sm.score
}

// SpeedInCells returns the speed in grid units per second.
func (sm *ScoreManager) SpeedInCells() float64 {
	return sm.speed
}

// SpeedInUnits returns the speed in continuous units per second.
func (sm *ScoreManager) SpeedInUnits() float64 {
	return sm.speed * sm.cellSize
}

// ApplesText is the apple counter as displayed by hosts.
func (sm *ScoreManager) ApplesText() string {
	return fmt.Sprintf("Apples: %07d", sm.applesEaten)
}

// ScoreText is the score as displayed by hosts, truncated to an integer.
func (sm *ScoreManager) ScoreText() string {
	return fmt.Sprintf("Score: %010d", uint64(sm.score))
}
