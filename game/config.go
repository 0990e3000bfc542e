package game

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// GameOverPolicy decides what happens after a wall or self collision.
type GameOverPolicy int

const (
	// PolicyHalt keeps the game over until Restart is called.
	PolicyHalt GameOverPolicy = iota
	// PolicyTeleport moves the head back to the origin on the next update and
	// keeps body, score, speed and food.
	PolicyTeleport
	// PolicyRestart rebuilds the whole simulation on the next update.
	PolicyRestart
)

func (p GameOverPolicy) String() string {
	switch p {
	case PolicyTeleport:
		return "teleport"
	case PolicyRestart:
		return "restart"
	}
	return "halt"
}

// ParseGameOverPolicy maps a flag value to a policy.
func ParseGameOverPolicy(s string) (GameOverPolicy, error) {
	switch strings.ToLower(s) {
	case "halt", "":
		return PolicyHalt, nil
	case "teleport":
		return PolicyTeleport, nil
	case "restart":
		return PolicyRestart, nil
	}
	return PolicyHalt, fmt.Errorf("%w: unknown game over policy %q", ErrInvalidConfig, s)
}

type Config struct {
	HorizontalCells   int     // Should be odd, even values are bumped
	VerticalCells     int     // Should be odd, even values are bumped
	InitialBodyLength int     // Head included
	InitialSpeed      float64 // Grid cells per second
	ElementsPerFood   int
	ScoreIncrement    int
	ScreenWidth       float64
	ScreenHeight      float64
	Seed              uint64 // 0 picks a time based seed
	OnGameOver        GameOverPolicy
}

func DefaultConfig() Config {
	return Config{
		HorizontalCells:   45,
		VerticalCells:     25,
		InitialBodyLength: 10,
		InitialSpeed:      10,
		ElementsPerFood:   1,
		ScoreIncrement:    1,
		ScreenWidth:       1280,
		ScreenHeight:      720,
		OnGameOver:        PolicyHalt,
	}
}

func (c Config) Validate() error {
	switch {
	case c.HorizontalCells < 5 || c.VerticalCells < 5:
		return fmt.Errorf("%w: grid %dx%d is smaller than 5x5", ErrInvalidConfig, c.HorizontalCells, c.VerticalCells)
	case c.InitialBodyLength < 2:
		return fmt.Errorf("%w: initial body length %d, need at least 2", ErrInvalidConfig, c.InitialBodyLength)
	case c.InitialBodyLength > (c.HorizontalCells-1)/2:
		return fmt.Errorf("%w: initial body length %d does not fit in %d columns", ErrInvalidConfig, c.InitialBodyLength, c.HorizontalCells)
	case c.InitialSpeed <= 0:
		return fmt.Errorf("%w: initial speed %v", ErrInvalidConfig, c.InitialSpeed)
	case c.ElementsPerFood < 1:
		return fmt.Errorf("%w: elements per food %d", ErrInvalidConfig, c.ElementsPerFood)
	case c.ScoreIncrement < 1:
		return fmt.Errorf("%w: score increment %d", ErrInvalidConfig, c.ScoreIncrement)
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen %vx%v", ErrInvalidConfig, c.ScreenWidth, c.ScreenHeight)
	}
	return nil
}
