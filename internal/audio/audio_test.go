package audio

import (
	"math"
	"testing"
	"time"

	"github.com/faiface/beep"

	"github.com/iburimskiy/flappy-bird/internal/config"
)

func drain(s beep.Streamer, max int) (samples [][2]float64) {
	buf := make([][2]float64, 256)
	for len(samples) < max {
		n, ok := s.Stream(buf)
		samples = append(samples, buf[:n]...)
		if !ok {
			break
		}
	}
	return samples
}

func peak(samples [][2]float64) float64 {
	var p float64
	for _, s := range samples {
		p = math.Max(p, math.Max(math.Abs(s[0]), math.Abs(s[1])))
	}
	return p
}

func TestToneLengthAndRange(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveNoise} {
		tn := newTone(440, 880, 100*time.Millisecond, wave, SampleRate)
		got := drain(tn, 1<<20)
		if want := SampleRate.N(100 * time.Millisecond); len(got) != want {
			t.Fatalf("wave %d: %d samples, want %d", wave, len(got), want)
		}
		for i, s := range got {
			if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
				t.Fatalf("wave %d sample %d = %v", wave, i, s)
			}
		}
		if n, ok := tn.Stream(make([][2]float64, 8)); n != 0 || ok {
			t.Fatalf("wave %d: exhausted tone streamed %d, %v", wave, n, ok)
		}
		if tn.Err() != nil {
			t.Fatalf("wave %d: unexpected error %v", wave, tn.Err())
		}
	}
}

func TestToneFadesOut(t *testing.T) {
	got := drain(newTone(220, 220, 200*time.Millisecond, WaveSquare, SampleRate), 1<<20)
	head, tail := peak(got[:len(got)/10]), peak(got[len(got)*9/10:])
	if tail >= head {
		t.Fatalf("tail peak %v not below head peak %v", tail, head)
	}
}

func TestPlayerMixesEffects(t *testing.T) {
	p := NewPlayer(config.Settings{})
	for _, s := range []Sound{SoundFlap, SoundScore, SoundHit} {
		p.Play(s)
	}
	if p.mixer.Len() != 3 {
		t.Fatalf("mixer has %d streamers, want 3", p.mixer.Len())
	}
	if pk := peak(drain(p.out, 2048)); pk == 0 {
		t.Fatal("player output is silent")
	}
}

func TestPlayerPause(t *testing.T) {
	p := NewPlayer(config.Settings{})
	p.Play(SoundHit)
	p.SetPaused(true)
	if pk := peak(drain(p.out, 1024)); pk != 0 {
		t.Fatalf("paused output peak = %v, want silence", pk)
	}
	p.SetPaused(false)
	if pk := peak(drain(p.out, 1024)); pk == 0 {
		t.Fatal("resumed output is silent")
	}
}

func TestMutedPlayerIgnoresEverything(t *testing.T) {
	p := NewPlayer(config.Settings{Mute: true})
	if err := p.Start(); err != nil {
		t.Fatalf("muted Start: %v", err)
	}
	p.Play(SoundFlap)
	if p.mixer.Len() != 0 {
		t.Fatalf("muted player queued %d effects", p.mixer.Len())
	}
	p.Stop()
}
