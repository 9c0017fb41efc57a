package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/faiface/beep"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// tone is a single oscillator that sweeps linearly from one frequency to
// another and fades out over its duration.
type tone struct {
	from, to float64
	wave     WaveType
	rate     beep.SampleRate

	phase    float64
	position int
	duration int
}

func newTone(from, to float64, d time.Duration, wave WaveType, rate beep.SampleRate) *tone {
	return &tone{
		from:     from,
		to:       to,
		wave:     wave,
		rate:     rate,
		duration: rate.N(d),
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.position >= t.duration {
		return 0, false
	}
	for i := range samples {
		if t.position >= t.duration {
			return i, true
		}
		progress := float64(t.position) / float64(t.duration)

		var val float64
		switch t.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			if t.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}
		val *= 1 - progress

		samples[i][0] = val
		samples[i][1] = val

		freq := t.from + (t.to-t.from)*progress
		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase) // keep in [0, 1)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
