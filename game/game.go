package game

import (
	"errors"
	"fmt"
	"time"

	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"

	"github.com/golang/glog"
	"golang.org/x/exp/rand"
)

// State of the run.
type State int

const (
	Running State = iota
	Over
)

func (s State) String() string {
	if s == Over {
		return "over"
	}
	return "running"
}

// Cause records why the last run ended.
type Cause int

const (
	CauseNone Cause = iota
	CauseWall
	CauseSelf
	CauseBoardFull
	CauseRestart
)

func (c Cause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	case CauseBoardFull:
		return "board-full"
	case CauseRestart:
		return "restart"
	}
	return "none"
}

// Game is the simulation context. It owns every piece of state and is driven
// by one Update per tick from a single goroutine.
type Game struct {
	cfg   Config
	grid  types.Grid
	walls []types.Cell
	rng   *rand.Rand
	now   func() time.Time

	snake        *entity.Snake
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	scoreMgr     *manager.ScoreManager
	stateMgr     *manager.StateManager

	state     State
	cause     Cause
	recorded  bool
	startTime time.Time
	Steps     int
}

// New builds a game from cfg. Runs are recorded into stats, which may be
// shared between games; nil gets a fresh one.
func New(cfg Config, stats *manager.StateManager) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	grid, err := types.NewGrid(cfg.ScreenWidth, cfg.ScreenHeight, cfg.HorizontalCells, cfg.VerticalCells)
	if err != nil {
		return nil, fmt.Errorf("failed to create grid: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	if stats == nil {
		stats = manager.NewStateManager()
	}

	g := &Game{
		cfg:      cfg,
		grid:     grid,
		walls:    grid.WallCells(),
		rng:      rand.New(rand.NewSource(seed)),
		now:      time.Now,
		stateMgr: stats,
	}
	g.collisionMgr = manager.NewCollisionManager(grid)
	g.foodMgr = manager.NewFoodManager(grid, g.collisionMgr, g.rng)

	if err := g.spawn(); err != nil {
		return nil, err
	}
	return g, nil
}

// spawn places a fresh snake, food and score.
func (g *Game) spawn() error {
	g.scoreMgr = manager.NewScoreManager(g.grid, g.cfg.InitialSpeed, g.cfg.ScoreIncrement)
	g.snake = entity.NewSnake(g.grid, g.cfg.InitialBodyLength, g.scoreMgr.SpeedInUnits())
	if err := g.foodMgr.Relocate(g.snake.Occupied()); err != nil {
		return fmt.Errorf("failed to place food: %w", err)
	}
	g.state = Running
	g.cause = CauseNone
	g.recorded = false
	g.startTime = g.now()
	g.Steps = 0
	return nil
}

// Update advances the simulation by dt seconds. keys are the direction keys
// newly pressed since the previous tick; they are applied before movement.
//
// Stages run in a fixed order: steering, movement, wall and self checks
// against the body as it was before this tick, food check, body follow,
// growth and food relocation, then score and speed.
func (g *Game) Update(dt float64, keys []types.Key) Result {
	var res Result

	if g.state == Over {
		g.handleOver(&res)
		return res
	}

	g.Steps++
	for _, key := range keys {
		if g.snake.Steer(key, g.scoreMgr.SpeedInUnits()) {
			res.emit(Event{Type: EventTurn, Key: key})
		}
	}

	trace, moved := g.snake.Move(g.grid, dt)
	if !moved {
		return res
	}
	res.Moved = true
	res.emit(Event{Type: EventMove, Trace: trace})
	glog.V(2).Infof("Move: head %v trace %v", g.snake.Head, trace)

	head := g.snake.Head
	switch g.collisionMgr.CheckCollision(head, trace, g.snake.Body) {
	case manager.WallCollision:
		res.emit(Event{Type: EventWallHit, Cell: head})
		g.gameOver(&res, CauseWall)
		return res
	case manager.SelfCollision:
		res.emit(Event{Type: EventSelfHit, Cell: head})
		g.gameOver(&res, CauseSelf)
		return res
	}

	eaten := g.collisionMgr.IsFoodCollision(head, trace, g.foodMgr.Food())
	if eaten {
		res.emit(Event{Type: EventFoodEaten, Cell: g.foodMgr.Food()})
	}

	g.snake.Follow(trace)

	if !eaten {
		return res
	}

	g.snake.Grow(g.cfg.ElementsPerFood)
	res.emit(Event{Type: EventGrow, Count: g.cfg.ElementsPerFood})

	if err := g.foodMgr.Relocate(g.snake.Occupied()); err != nil {
		if !errors.Is(err, manager.ErrNoFreeCell) {
			panic(err)
		}
		g.scoreMgr.FoodEaten()
		g.gameOver(&res, CauseBoardFull)
		return res
	}

	if g.scoreMgr.FoodEaten() {
		g.snake.SetSpeed(g.scoreMgr.SpeedInUnits())
		res.emit(Event{Type: EventSpeedUp, Speed: g.scoreMgr.SpeedInCells()})
	}
	return res
}

func (g *Game) gameOver(res *Result, cause Cause) {
	g.state = Over
	g.cause = cause
	res.Over = true
	res.emit(Event{Type: EventGameOver, Cell: g.snake.Head})
	glog.V(1).Infof("Game over (%s) at %v: %s", cause, g.snake.Head, g.scoreMgr.ScoreText())

	if g.cfg.OnGameOver != PolicyTeleport {
		g.record(cause)
	}
}

func (g *Game) handleOver(res *Result) {
	switch g.cfg.OnGameOver {
	case PolicyTeleport:
		g.snake.TeleportTo(g.grid.Origin())
		g.state = Running
		res.emit(Event{Type: EventTeleport, Cell: g.snake.Head})
	case PolicyRestart:
		g.restart(res)
	default:
		res.Over = true
	}
}

// Restart records the current run if needed and rebuilds the simulation.
func (g *Game) Restart() Result {
	var res Result
	g.restart(&res)
	return res
}

func (g *Game) restart(res *Result) {
	g.record(CauseRestart)
	if err := g.spawn(); err != nil {
		// The fresh snake fits by Config.Validate, so the board always has room.
		panic(err)
	}
	res.emit(Event{Type: EventRestart})
}

func (g *Game) record(cause Cause) {
	if g.recorded {
		return
	}
	g.recorded = true
	g.stateMgr.RecordRun(g.scoreMgr.Score(), g.scoreMgr.ApplesEaten(), cause.String(), g.startTime, g.now())
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) Grid() types.Grid {
	return g.grid
}

func (g *Game) Config() Config {
	return g.cfg
}

// Stats returns the session statistics the game records into.
func (g *Game) Stats() *manager.StateManager {
	return g.stateMgr
}

// PlaceFood moves the food to cell. Used to stage scenarios.
func (g *Game) PlaceFood(cell types.Cell) {
	g.foodMgr.SetFood(cell)
}
