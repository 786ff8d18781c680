package domain

import (
	"errors"
	"testing"
	"time"
)

func TestDefaultGameConfig(t *testing.T) {
	cfg := DefaultGameConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.TickInterval() != 150*time.Millisecond {
		t.Errorf("TickInterval() = %v, want 150ms", cfg.TickInterval())
	}
	if cfg.RestartDelay() != 2*time.Second {
		t.Errorf("RestartDelay() = %v, want 2s", cfg.RestartDelay())
	}
	if w, h := cfg.ScreenSize(); w != 800 || h != 600 {
		t.Errorf("ScreenSize() = %dx%d, want 800x600", w, h)
	}
}

func TestGameConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *GameConfig)
	}{
		{"narrow", func(c *GameConfig) { c.Width = 1 }},
		{"tiny grid", func(c *GameConfig) { c.Width, c.Height, c.StartX, c.StartY = 2, 2, 0, 0 }},
		{"short", func(c *GameConfig) { c.Height = MinGridSize - 1 }},
		{"tall", func(c *GameConfig) { c.Height = 501 }},
		{"zero cell", func(c *GameConfig) { c.CellSize = 0 }},
		{"negative apples", func(c *GameConfig) { c.AppleCount = -1 }},
		{"apples crowd grid", func(c *GameConfig) { c.Width, c.Height, c.AppleCount = 10, 10, 51 }},
		{"fast tick", func(c *GameConfig) { c.TickMs = 1 }},
		{"negative delay", func(c *GameConfig) { c.RestartDelayMs = -1 }},
		{"start outside", func(c *GameConfig) { c.StartX = c.Width }},
		{"start negative", func(c *GameConfig) { c.StartY = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultGameConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestGameConfigValidateSmallestGrid(t *testing.T) {
	cfg := DefaultGameConfig()
	cfg.Width, cfg.Height = MinGridSize, MinGridSize
	cfg.AppleCount = MinGridSize * MinGridSize / 2
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestGameConfigCopy(t *testing.T) {
	cfg := DefaultGameConfig()
	cp := cfg.Copy()
	cp.Width = 10
	if cfg.Width != 40 {
		t.Error("Copy shares storage with the original")
	}
}
