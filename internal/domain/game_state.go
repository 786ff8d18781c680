package domain

import (
	"fmt"
	"math/rand"
	"time"
)

type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game over"
	}
	return "unknown"
}

type GameState struct {
	Config *GameConfig
	Field  *Field
	Snake  *Snake
	Apples []*Apple
	Phase  Phase
	Ticks  int

	rng        *rand.Rand
	clock      Clock
	lastTick   time.Time
	gameOverAt time.Time
}

func NewGameState(config *GameConfig, rng *rand.Rand, clock Clock) (*GameState, error) {
	if config == nil {
		return nil, fmt.Errorf("new game state: nil config")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("new game state: nil random source")
	}
	if clock == nil {
		clock = SystemClock{}
	}

	cfg := config.Copy()
	field := NewField(cfg.Width, cfg.Height)
	snake := NewSnake([]Coord{cfg.Start()}, DirectionRight)

	return &GameState{
		Config:   cfg,
		Field:    field,
		Snake:    snake,
		Apples:   NewApples(cfg.AppleCount, rng, field, snake.Segments()),
		Phase:    PhasePlaying,
		rng:      rng,
		clock:    clock,
		lastTick: clock.Now(),
	}, nil
}

// Scene is everything a rendering surface needs for one frame.
type Scene struct {
	Field    Field
	Apples   []Coord
	Snake    []Coord
	GameOver bool
	Score    int
}

func (gs *GameState) Scene() Scene {
	return Scene{
		Field:    *gs.Field,
		Apples:   ApplePositions(gs.Apples),
		Snake:    gs.Snake.Segments(),
		GameOver: gs.Phase == PhaseGameOver,
		Score:    gs.Snake.Len() - 1,
	}
}

// GameOverElapsed is the time spent in PhaseGameOver so far.
func (gs *GameState) GameOverElapsed() time.Duration {
	if gs.Phase != PhaseGameOver {
		return 0
	}
	return gs.clock.Now().Sub(gs.gameOverAt)
}
