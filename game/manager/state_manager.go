package manager

import (
	"sort"
	"sync"
	"time"

	"github.com/golang/glog"
	"github.com/google/uuid"
)

// RunRecord is one finished run.
type RunRecord struct {
	ID        string    `json:"id"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Score     float64   `json:"score"`
	Apples    int       `json:"apples"`
	Cause     string    `json:"cause"`
}

// Duration of the run in seconds.
func (r RunRecord) Duration() float64 {
	return r.EndTime.Sub(r.StartTime).Seconds()
}

// StateManager keeps the session statistics in memory. It is read by hosts
// while the simulation writes, hence the lock.
type StateManager struct {
	mutex        sync.RWMutex
	highScore    float64
	scoreHistory []RunRecord
}

func NewStateManager() *StateManager {
	return &StateManager{
		scoreHistory: make([]RunRecord, 0),
	}
}

// RecordRun appends a finished run and returns its record.
func (sm *StateManager) RecordRun(score float64, apples int, cause string, start, end time.Time) RunRecord {
	record := RunRecord{
		ID:        uuid.New().String(),
		StartTime: start,
		EndTime:   end,
		Score:     score,
		Apples:    apples,
		Cause:     cause,
	}

	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	if score > sm.highScore {
		sm.highScore = score
	}
	sm.scoreHistory = append(sm.scoreHistory, record)
	glog.V(1).Infof("Run %s ended (%s): score %.0f, apples %d", record.ID, cause, score, apples)
	return record
}

func (sm *StateManager) HighScore() float64 {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()
	return sm.highScore
}

// History returns a copy of the recorded runs, oldest first.
func (sm *StateManager) History() []RunRecord {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	history := make([]RunRecord, len(sm.scoreHistory))
	copy(history, sm.scoreHistory)
	return history
}

func (sm *StateManager) GamesPlayed() int {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()
	return len(sm.scoreHistory)
}

func (sm *StateManager) AverageScore() float64 {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	if len(sm.scoreHistory) == 0 {
		return 0
	}
	var total float64
	for _, r := range sm.scoreHistory {
		total += r.Score
	}
	return total / float64(len(sm.scoreHistory))
}

func (sm *StateManager) MedianScore() float64 {
	sm.mutex.RLock()
	scores := make([]float64, len(sm.scoreHistory))
	for i, r := range sm.scoreHistory {
		scores[i] = r.Score
	}
	sm.mutex.RUnlock()

	if len(scores) == 0 {
		return 0
	}
	sort.Float64s(scores)
	if len(scores)%2 == 0 {
		return (scores[len(scores)/2-1] + scores[len(scores)/2]) / 2
	}
	return scores[len(scores)/2]
}

// AverageDuration of the recorded runs in seconds.
func (sm *StateManager) AverageDuration() float64 {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	if len(sm.scoreHistory) == 0 {
		return 0
	}
	var total float64
	for _, r := range sm.scoreHistory {
		total += r.Duration()
	}
	return total / float64(len(sm.scoreHistory))
}
