package domain

import "errors"

// ErrQuit is returned by Frame when the quit action is held.
var ErrQuit = errors.New("quit requested")

type TickResult struct {
	Ate  bool
	Died bool
}

type FrameResult struct {
	Ticked    bool
	Ate       bool
	Died      bool
	Restarted bool
}

// Frame runs one render frame: input, at most one gated tick, and the
// restart timer. Quit ends the loop and is not a phase.
func (gs *GameState) Frame(in InputSource) (FrameResult, error) {
	var result FrameResult

	if in.Pressed(ActionQuit) {
		return result, ErrQuit
	}

	now := gs.clock.Now()

	switch gs.Phase {
	case PhasePlaying:
		gs.Snake.HandleInput(in)

		if now.Sub(gs.lastTick) < gs.Config.TickInterval() {
			return result, nil
		}
		gs.lastTick = now

		tick := gs.Tick()
		result.Ticked = true
		result.Ate = tick.Ate
		result.Died = tick.Died
		if tick.Died {
			gs.Phase = PhaseGameOver
			gs.gameOverAt = now
		}

	case PhaseGameOver:
		if now.Sub(gs.gameOverAt) >= gs.Config.RestartDelay() {
			gs.Restart()
			gs.lastTick = now
			result.Restarted = true
		}
	}

	return result, nil
}

// Tick applies one simulation step regardless of timing.
func (gs *GameState) Tick() TickResult {
	gs.Ticks++
	ate := gs.Snake.Update(gs.Field, gs.Apples, gs.rng)
	return TickResult{
		Ate:  ate,
		Died: gs.Snake.Dead(),
	}
}

// Restart resets the snake and respawns every apple against it.
func (gs *GameState) Restart() {
	gs.Snake.Reset(gs.Config.Start())
	occupied := gs.Snake.Segments()
	for _, apple := range gs.Apples {
		apple.Respawn(gs.rng, gs.Field, occupied)
	}
	gs.Phase = PhasePlaying
	gs.Ticks = 0
}
