package game

import (
	"errors"
	"testing"
)

func TestParseGameOverPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    GameOverPolicy
		wantErr bool
	}{
		{"", PolicyHalt, false},
		{"halt", PolicyHalt, false},
		{"Teleport", PolicyTeleport, false},
		{"restart", PolicyRestart, false},
		{"wrap", PolicyHalt, true},
	}
	for _, tc := range tests {
		got, err := ParseGameOverPolicy(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("%q: expected ErrInvalidConfig, got %v", tc.in, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("%q: expected %v, got %v (%v)", tc.in, tc.want, got, err)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"defaults", func(*Config) {}, true},
		{"tiny grid", func(c *Config) { c.HorizontalCells = 3 }, false},
		{"short body", func(c *Config) { c.InitialBodyLength = 1 }, false},
		{"body too long", func(c *Config) { c.InitialBodyLength = 23 }, false},
		{"no speed", func(c *Config) { c.InitialSpeed = 0 }, false},
		{"no growth", func(c *Config) { c.ElementsPerFood = 0 }, false},
		{"no increment", func(c *Config) { c.ScoreIncrement = 0 }, false},
		{"no screen", func(c *Config) { c.ScreenHeight = 0 }, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("Expected valid config, got %v", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}
