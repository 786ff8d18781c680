package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidConfig = errors.New("invalid game config")

type GameConfig struct {
	Width          int
	Height         int
	CellSize       int
	AppleCount     int
	TickMs         int
	RestartDelayMs int
	StartX         int
	StartY         int
}

func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Width:          40,
		Height:         30,
		CellSize:       20,
		AppleCount:     5,
		TickMs:         150,
		RestartDelayMs: 2000,
		StartX:         5,
		StartY:         5,
	}
}

const (
	MinGridSize = 10
	MaxGridSize = 500
)

// Validate checks ranges. Grids are at least MinGridSize cells per side and
// apples may cover at most half of the grid, so the starting snake always
// leaves free cells for respawn. A snake that fills the whole grid is not
// guarded against.
func (c *GameConfig) Validate() error {
	if c.Width < MinGridSize || c.Width > MaxGridSize {
		return fmt.Errorf("%w: width %d out of range [%d, %d]", ErrInvalidConfig, c.Width, MinGridSize, MaxGridSize)
	}
	if c.Height < MinGridSize || c.Height > MaxGridSize {
		return fmt.Errorf("%w: height %d out of range [%d, %d]", ErrInvalidConfig, c.Height, MinGridSize, MaxGridSize)
	}
	if c.CellSize < 1 || c.CellSize > 100 {
		return fmt.Errorf("%w: cell size %d out of range [1, 100]", ErrInvalidConfig, c.CellSize)
	}
	if c.AppleCount < 0 || c.AppleCount > 100 {
		return fmt.Errorf("%w: apple count %d out of range [0, 100]", ErrInvalidConfig, c.AppleCount)
	}
	if c.AppleCount > c.Width*c.Height/2 {
		return fmt.Errorf("%w: %d apples do not fit a %dx%d grid", ErrInvalidConfig, c.AppleCount, c.Width, c.Height)
	}
	if c.TickMs < 10 || c.TickMs > 3000 {
		return fmt.Errorf("%w: tick %dms out of range [10, 3000]", ErrInvalidConfig, c.TickMs)
	}
	if c.RestartDelayMs < 0 || c.RestartDelayMs > 60000 {
		return fmt.Errorf("%w: restart delay %dms out of range [0, 60000]", ErrInvalidConfig, c.RestartDelayMs)
	}
	if c.StartX < 0 || c.StartX >= c.Width || c.StartY < 0 || c.StartY >= c.Height {
		return fmt.Errorf("%w: start cell (%d,%d) outside %dx%d grid",
			ErrInvalidConfig, c.StartX, c.StartY, c.Width, c.Height)
	}
	return nil
}

func (c *GameConfig) Copy() *GameConfig {
	cp := *c
	return &cp
}

func (c *GameConfig) Start() Coord {
	return Coord{X: c.StartX, Y: c.StartY}
}

func (c *GameConfig) TickInterval() time.Duration {
	return time.Duration(c.TickMs) * time.Millisecond
}

func (c *GameConfig) RestartDelay() time.Duration {
	return time.Duration(c.RestartDelayMs) * time.Millisecond
}

// ScreenSize is the pixel size of the playing field.
func (c *GameConfig) ScreenSize() (int, int) {
	return c.Width * c.CellSize, c.Height * c.CellSize
}
