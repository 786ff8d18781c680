// Package sound plays short synthesized cues for game events.
package sound

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"snake/internal/app"
)

const SampleRate = beep.SampleRate(44100)

type note struct {
	freq     float64
	duration time.Duration
}

var cues = map[app.AppEventType][]note{
	app.AppEventAteApple: {
		{880, 60 * time.Millisecond},
	},
	app.AppEventGameOver: {
		{440, 120 * time.Millisecond},
		{330, 120 * time.Millisecond},
		{220, 240 * time.Millisecond},
	},
	app.AppEventRestarted: {
		{523.25, 80 * time.Millisecond},
		{659.25, 80 * time.Millisecond},
	},
}

// Cue builds the streamer for an event, or nil when the event is silent.
func Cue(event app.AppEventType, rate beep.SampleRate, volume float64) (beep.Streamer, error) {
	notes, ok := cues[event]
	if !ok {
		return nil, nil
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(rate, n.freq)
		if err != nil {
			return nil, fmt.Errorf("tone %.2fHz: %w", n.freq, err)
		}
		parts = append(parts, beep.Take(rate.N(n.duration), tone))
	}

	return withVolume(beep.Seq(parts...), volume), nil
}

// CueLength is the total number of samples Cue produces for event.
func CueLength(event app.AppEventType, rate beep.SampleRate) int {
	total := 0
	for _, n := range cues[event] {
		total += rate.N(n.duration)
	}
	return total
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Player is an app.Listener that sends cues to the speaker.
type Player struct {
	volume  float64
	enabled bool
}

// NewPlayer opens the audio device. Failure is not fatal: the returned
// player stays silent and the error is only logged.
func NewPlayer(mute bool) *Player {
	p := &Player{volume: 0.3}
	if mute {
		return p
	}

	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		log.Printf("Audio initialization failed, continuing without sound: %v", err)
		return p
	}
	p.enabled = true
	return p
}

func (p *Player) Enabled() bool {
	return p.enabled
}

func (p *Player) OnEvent(event app.AppEvent) {
	if !p.enabled {
		return
	}

	s, err := Cue(event.Type, SampleRate, p.volume)
	if err != nil {
		log.Printf("Sound cue for %v: %v", event.Type, err)
		return
	}
	if s != nil {
		speaker.Play(s)
	}
}

func (p *Player) Close() {
	if p.enabled {
		speaker.Clear()
		speaker.Close()
		p.enabled = false
	}
}
