package terminal

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"

	"snake/internal/app"
	"snake/internal/domain"
)

// FrameInterval is the render rate of the terminal front end.
const FrameInterval = 16 * time.Millisecond

// Loop owns the game on a single goroutine. Device events reach it only
// through the channel given to Run.
type Loop struct {
	screen   tcell.Screen
	app      *app.App
	renderer *Renderer
	input    *KeyInput
	interval time.Duration
}

func NewLoop(screen tcell.Screen, a *app.App) *Loop {
	return &Loop{
		screen:   screen,
		app:      a,
		renderer: NewRenderer(screen),
		input:    NewKeyInput(),
		interval: FrameInterval,
	}
}

func (l *Loop) Renderer() *Renderer {
	return l.renderer
}

// Run processes events and frames until the player quits, the event
// channel closes, or ctx is cancelled.
func (l *Loop) Run(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.renderer.Draw(l.app.Scene())

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				l.screen.Sync()
			}
			l.input.HandleEvent(ev)

		case <-ticker.C:
			err := l.app.Frame(l.input)
			l.input.Clear()
			if errors.Is(err, domain.ErrQuit) {
				return nil
			}
			if err != nil {
				return err
			}
			l.renderer.Draw(l.app.Scene())
		}
	}
}

// PumpEvents forwards screen events to out until the screen is finalized
// or ctx is cancelled. It closes out before returning.
func PumpEvents(ctx context.Context, screen tcell.Screen, out chan<- tcell.Event) error {
	defer close(out)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return nil
		}
	}
}
