package app

import (
	"errors"
	"fmt"
	"log"
	"math/rand"

	"snake/internal/domain"
)

type AppEvent struct {
	Type  AppEventType
	Score int
}

type AppEventType int

const (
	AppEventAteApple AppEventType = iota
	AppEventGameOver
	AppEventRestarted
	AppEventQuit
)

func (t AppEventType) String() string {
	switch t {
	case AppEventAteApple:
		return "ate apple"
	case AppEventGameOver:
		return "game over"
	case AppEventRestarted:
		return "restarted"
	case AppEventQuit:
		return "quit"
	}
	return "unknown"
}

// Listener receives events synchronously on the frame goroutine.
type Listener interface {
	OnEvent(event AppEvent)
}

type ListenerFunc func(event AppEvent)

func (f ListenerFunc) OnEvent(event AppEvent) {
	f(event)
}

// App owns the game state and is driven by a front end once per frame.
type App struct {
	state     *domain.GameState
	listeners []Listener
	seed      int64
}

func NewApp(opts *Options, clock domain.Clock, listeners ...Listener) (*App, error) {
	seed := opts.ResolvedSeed()
	state, err := domain.NewGameState(opts.Config, rand.New(rand.NewSource(seed)), clock)
	if err != nil {
		return nil, fmt.Errorf("create game: %w", err)
	}

	log.Printf("Game created: %dx%d grid, %d apples, tick=%v, restart=%v, seed=%d",
		state.Field.Width, state.Field.Height, len(state.Apples),
		state.Config.TickInterval(), state.Config.RestartDelay(), seed)

	return &App{
		state:     state,
		listeners: listeners,
		seed:      seed,
	}, nil
}

// Frame advances the game by one render frame. It returns domain.ErrQuit
// when the player asked to leave.
func (a *App) Frame(in domain.InputSource) error {
	res, err := a.state.Frame(in)
	if err != nil {
		if errors.Is(err, domain.ErrQuit) {
			log.Println("Quit requested")
			a.emit(AppEvent{Type: AppEventQuit, Score: a.Score()})
		}
		return err
	}

	if res.Ate {
		a.emit(AppEvent{Type: AppEventAteApple, Score: a.Score()})
	}
	if res.Died {
		log.Printf("Game over: length=%d after %d ticks", a.state.Snake.Len(), a.state.Ticks)
		a.emit(AppEvent{Type: AppEventGameOver, Score: a.Score()})
	}
	if res.Restarted {
		log.Println("Restarting")
		a.emit(AppEvent{Type: AppEventRestarted})
	}
	return nil
}

func (a *App) Scene() domain.Scene {
	return a.state.Scene()
}

func (a *App) Config() *domain.GameConfig {
	return a.state.Config
}

func (a *App) Phase() domain.Phase {
	return a.state.Phase
}

func (a *App) Score() int {
	return a.state.Snake.Len() - 1
}

func (a *App) Seed() int64 {
	return a.seed
}

func (a *App) emit(event AppEvent) {
	for _, l := range a.listeners {
		l.OnEvent(event)
	}
}
