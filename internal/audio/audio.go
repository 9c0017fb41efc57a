// Package audio plays the game's sound effects. Every effect is synthesized
// at play time; there are no audio files.
package audio

import (
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/flappy-bird/internal/config"
)

const SampleRate = beep.SampleRate(44100)

type Sound int

const (
	SoundFlap Sound = iota
	SoundScore
	SoundHit
)

// Player mixes effects into one speaker stream:
// mixer -> ctrl (pause) -> volume -> speaker.
type Player struct {
	rate  beep.SampleRate
	mixer *beep.Mixer
	ctrl  *beep.Ctrl
	out   *effects.Volume

	muted   bool
	started bool
}

func NewPlayer(s config.Settings) *Player {
	mixer := &beep.Mixer{}
	ctrl := &beep.Ctrl{Streamer: mixer}
	return &Player{
		rate:  SampleRate,
		mixer: mixer,
		ctrl:  ctrl,
		out: &effects.Volume{
			Streamer: ctrl,
			Base:     2,
			Volume:   s.Volume,
			Silent:   s.Mute,
		},
		muted: s.Mute,
	}
}

// Start opens the audio device. A muted player never touches it. If the
// device cannot be opened the player stays muted for good.
func (p *Player) Start() error {
	if p.muted || p.started {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(time.Second/20)); err != nil {
		p.muted = true
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.out)
	p.started = true
	return nil
}

// Stop silences the device and drops everything queued.
func (p *Player) Stop() {
	if !p.started {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
	p.started = false
}

func (p *Player) Play(s Sound) {
	if p.muted {
		return
	}
	st := p.effect(s)
	speaker.Lock()
	p.mixer.Add(st)
	speaker.Unlock()
}

// SetPaused holds or releases everything currently playing.
func (p *Player) SetPaused(paused bool) {
	speaker.Lock()
	p.ctrl.Paused = paused
	speaker.Unlock()
}

func (p *Player) effect(s Sound) beep.Streamer {
	r := p.rate
	switch s {
	case SoundFlap:
		return &effects.Gain{
			Streamer: newTone(520, 880, 90*time.Millisecond, WaveSine, r),
			Gain:     -0.5,
		}
	case SoundScore:
		return &effects.Gain{
			Streamer: beep.Seq(
				newTone(880, 880, 70*time.Millisecond, WaveSquare, r),
				newTone(1320, 1320, 110*time.Millisecond, WaveSquare, r),
			),
			Gain: -0.8,
		}
	default:
		return &effects.Gain{
			Streamer: beep.Mix(
				newTone(0, 0, 160*time.Millisecond, WaveNoise, r),
				newTone(140, 60, 220*time.Millisecond, WaveSine, r),
			),
			Gain: -0.6,
		}
	}
}
