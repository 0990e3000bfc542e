package manager

import (
	"testing"
	"time"
)

func TestStateManagerRecordsRuns(t *testing.T) {
	sm := NewStateManager()
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	a := sm.RecordRun(300, 3, "wall", start, start.Add(10*time.Second))
	b := sm.RecordRun(100, 1, "self", start, start.Add(20*time.Second))
	sm.RecordRun(200, 2, "wall", start, start.Add(30*time.Second))

	if a.ID == "" || a.ID == b.ID {
		t.Errorf("Expected distinct run IDs, got %q and %q", a.ID, b.ID)
	}
	if sm.GamesPlayed() != 3 {
		t.Errorf("Expected 3 games, got %d", sm.GamesPlayed())
	}
	if sm.HighScore() != 300 {
		t.Errorf("Expected high score 300, got %v", sm.HighScore())
	}
	if sm.AverageScore() != 200 {
		t.Errorf("Expected average 200, got %v", sm.AverageScore())
	}
	if sm.MedianScore() != 200 {
		t.Errorf("Expected median 200, got %v", sm.MedianScore())
	}
	if sm.AverageDuration() != 20 {
		t.Errorf("Expected average duration 20, got %v", sm.AverageDuration())
	}

	history := sm.History()
	history[0].Score = -1
	if sm.History()[0].Score != 300 {
		t.Error("Expected History to return a copy")
	}
}

func TestStateManagerEmpty(t *testing.T) {
	sm := NewStateManager()
	if sm.AverageScore() != 0 || sm.MedianScore() != 0 || sm.AverageDuration() != 0 {
		t.Error("Expected zero statistics for an empty session")
	}
}

func TestStateManagerEvenMedian(t *testing.T) {
	sm := NewStateManager()
	now := time.Now()
	sm.RecordRun(10, 1, "wall", now, now)
	sm.RecordRun(30, 3, "wall", now, now)
	if sm.MedianScore() != 20 {
		t.Errorf("Expected median 20, got %v", sm.MedianScore())
	}
}
