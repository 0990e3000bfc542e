package manager

import (
	"math"
	"testing"
)

func TestFoodEatenSpeedUpEveryThird(t *testing.T) {
	g := testGrid(t, 5, 5)
	sm := NewScoreManager(g, 10, 1)

	speed := 10.0
	for apple := 1; apple <= 9; apple++ {
		spedUp := sm.FoodEaten()
		want := apple%3 == 0
		if spedUp != want {
			t.Errorf("Apple %d: expected speed-up %v, got %v", apple, want, spedUp)
		}
		if want {
			speed *= 1.1
		}
		if math.Abs(sm.SpeedInCells()-speed) > 1e-9 {
			t.Errorf("Apple %d: expected speed %v, got %v", apple, speed, sm.SpeedInCells())
		}
	}
	if sm.ApplesEaten() != 9 {
		t.Errorf("Expected 9 apples, got %d", sm.ApplesEaten())
	}
}

func TestFoodEatenScoreUsesSpeedSquared(t *testing.T) {
	g := testGrid(t, 5, 5)
	sm := NewScoreManager(g, 10, 2)

	sm.FoodEaten() // 2 apples, +2*100
	sm.FoodEaten() // 4 apples, +2*100
	sm.FoodEaten() // 6 apples, +2*100 then speed-up
	if sm.Score() != 600 {
		t.Errorf("Expected 600, got %v", sm.Score())
	}
	sm.FoodEaten() // 8 apples at 11 cells/s
	if math.Abs(sm.Score()-(600+2*11*11)) > 1e-9 {
		t.Errorf("Expected %v, got %v", 600+2*11*11, sm.Score())
	}
}

func TestFoodEatenIncrementTwoSpeedUp(t *testing.T) {
	g := testGrid(t, 5, 5)
	sm := NewScoreManager(g, 10, 2)
	results := []bool{sm.FoodEaten(), sm.FoodEaten(), sm.FoodEaten()}
	if results[0] || results[1] || !results[2] {
		t.Errorf("Expected speed-up only at 6 apples, got %v", results)
	}
}

func TestSpeedInUnits(t *testing.T) {
	g := testGrid(t, 5, 5)
	g.CellSize = 20
	sm := NewScoreManager(g, 10, 1)
	if sm.SpeedInUnits() != 200 {
		t.Errorf("Expected 200, got %v", sm.SpeedInUnits())
	}
}

func TestDisplayText(t *testing.T) {
	g := testGrid(t, 5, 5)
	sm := NewScoreManager(g, 10, 1)
	sm.FoodEaten()
	if got := sm.ApplesText(); got != "Apples: 0000001" {
		t.Errorf("Unexpected apples text %q", got)
	}
	if got := sm.ScoreText(); got != "Score: 0000000100" {
		t.Errorf("Unexpected score text %q", got)
	}
}
