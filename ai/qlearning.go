package ai

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"

	"gridsnake/game/types"

	"github.com/golang/glog"
	"golang.org/x/exp/rand"
)

const (
	DefaultLearningRate = 0.1
	DefaultDiscount     = 0.9
	InitialEpsilon      = 1.0
	EpsilonDecay        = 0.995
	MinEpsilon          = 0.01
)

// Rewards for one transition.
const (
	RewardFood    = 1.0
	RewardDeath   = -1.0
	RewardCloser  = 0.5
	RewardFarther = -0.3
)

type Action int

const (
	Up Action = iota
	Right
	Down
	Left
)

var actions = []Action{Up, Right, Down, Left}

// Key converts the action into the steering key hosts would send.
func (a Action) Key() types.Key {
	switch a {
	case Up:
		return types.KeyUp
	case Right:
		return types.KeyRight
	case Down:
		return types.KeyDown
	}
	return types.KeyLeft
}

func (a Action) String() string {
	return a.Key().String()
}

// Outcome of the transition following an action.
type Outcome struct {
	Ate  bool
	Died bool
}

type QTable map[string]map[Action]float64

type QLearning struct {
	QTable       QTable
	LearningRate float64
	Discount     float64
	Epsilon      float64
	TotalReward  float64

	rng *rand.Rand
	mu  sync.RWMutex
}

func NewQLearning(rng *rand.Rand) *QLearning {
	return &QLearning{
		QTable:       make(QTable),
		LearningRate: DefaultLearningRate,
		Discount:     DefaultDiscount,
		Epsilon:      InitialEpsilon,
		rng:          rng,
	}
}

func (q *QLearning) stateKey(s State) string {
	return fmt.Sprintf("%d%d%d%d%d%d%d",
		s.FoodDir[0]+1, s.FoodDir[1]+1,
		boolToInt(s.Dangers[Up]), boolToInt(s.Dangers[Right]),
		boolToInt(s.Dangers[Down]), boolToInt(s.Dangers[Left]),
		int(s.Axis))
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// GetAction picks an action epsilon-greedily. Safe for concurrent use.
func (q *QLearning) GetAction(state State) Action {
	q.mu.Lock()
	explore := q.rng.Float64() < q.Epsilon
	random := Action(q.rng.Intn(len(actions)))
	q.mu.Unlock()

	// Exploration: random action
	if explore {
		return random
	}

	// Exploitation: best known action
	return q.BestAction(state)
}

// BestAction returns the highest valued action, Up for unseen states.
func (q *QLearning) BestAction(state State) Action {
	q.mu.RLock()
	defer q.mu.RUnlock()

	values, ok := q.QTable[q.stateKey(state)]
	if !ok {
		return Up
	}

	bestAction := Up
	bestValue := math.Inf(-1)
	for _, action := range actions {
		if v := values[action]; v > bestValue {
			bestValue = v
			bestAction = action
		}
	}
	return bestAction
}

// Reward scores a transition: death and food override the distance shaping.
func Reward(state, next State, outcome Outcome) float64 {
	switch {
	case outcome.Died:
		return RewardDeath
	case outcome.Ate:
		return RewardFood
	case next.FoodDistance < state.FoodDistance:
		return RewardCloser
	case next.FoodDistance > state.FoodDistance:
		return RewardFarther
	}
	return 0
}

// Update applies Q += lr * (r + discount * maxQ' - Q) and returns r.
func (q *QLearning) Update(state State, action Action, next State, outcome Outcome) float64 {
	reward := Reward(state, next, outcome)

	q.mu.Lock()
	defer q.mu.Unlock()

	values := q.row(q.stateKey(state))

	maxNextQ := 0.0
	if !outcome.Died {
		nextValues := q.row(q.stateKey(next))
		maxNextQ = math.Inf(-1)
		for _, v := range nextValues {
			maxNextQ = math.Max(maxNextQ, v)
		}
	}

	currentQ := values[action]
	values[action] = currentQ + q.LearningRate*(reward+q.Discount*maxNextQ-currentQ)

	q.TotalReward += reward
	return reward
}

// row returns the action values for key, creating a zeroed row. Caller holds mu.
func (q *QLearning) row(key string) map[Action]float64 {
	values, ok := q.QTable[key]
	if !ok {
		values = make(map[Action]float64, len(actions))
		for _, a := range actions {
			values[a] = 0
		}
		q.QTable[key] = values
	}
	return values
}

// DecayEpsilon lowers exploration after an episode.
func (q *QLearning) DecayEpsilon() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.Epsilon = math.Max(MinEpsilon, q.Epsilon*EpsilonDecay)
}

// ExplorationRate returns the current epsilon.
func (q *QLearning) ExplorationRate() float64 {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.Epsilon
}

// States returns the number of states seen so far.
func (q *QLearning) States() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.QTable)
}

// SaveQTable writes the table as JSON.
func (q *QLearning) SaveQTable(filename string) error {
	q.mu.RLock()
	data, err := json.MarshalIndent(q.QTable, "", "  ")
	states := len(q.QTable)
	q.mu.RUnlock()
	if err != nil {
		return err
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return err
	}
	glog.V(1).Infof("Q-table: saved %d states to %s", states, filename)
	return nil
}

// LoadQTable replaces the table with the one stored in filename.
func (q *QLearning) LoadQTable(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	table := make(QTable)
	if err := json.Unmarshal(data, &table); err != nil {
		return fmt.Errorf("failed to parse q-table %s: %w", filename, err)
	}

	q.mu.Lock()
	q.QTable = table
	q.mu.Unlock()
	glog.V(1).Infof("Q-table: loaded %d states from %s", len(table), filename)
	return nil
}
