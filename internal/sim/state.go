// Package sim is the flappy bird simulation: bird and pipe physics, the
// menu/playing/gameover state machine, scoring and the best score.
// It knows nothing about windows, pixels or where the best score lives.
package sim

import (
	"math/rand/v2"

	"github.com/iburimskiy/flappy-bird/internal/config"
)

type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	}
	return "unknown"
}

type Bird struct {
	X, Y  float64
	R     float64
	VY    float64
	Angle float64
}

type Pipe struct {
	X      float64
	GapY   float64 // top of the gap
	Passed bool
}

// BestStore persists the best score between runs.
type BestStore interface {
	LoadBest() (int, error)
	SaveBest(best int) error
}

// Rand is the source of pipe gap draws. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// State is one game session. The game loop owns it exclusively; input
// reaches it only through Apply.
type State struct {
	Phase  Phase
	Paused bool
	Score  int
	Best   int

	Bird  Bird
	Pipes []Pipe

	// NextPipe counts down to the next spawn, in seconds.
	NextPipe float64
	Speed    float64

	cfg   config.Physics
	rng   Rand
	store BestStore
}

type Option func(*State)

// WithRand sets the source of gap draws.
func WithRand(r Rand) Option {
	return func(s *State) { s.rng = r }
}

// WithStore sets where the best score is loaded from and saved to.
func WithStore(b BestStore) Option {
	return func(s *State) { s.store = b }
}

// New returns a session sitting in the menu. The best score is read from
// the store if one is given; a failed read leaves it at 0.
func New(cfg config.Physics, opts ...Option) *State {
	s := &State{cfg: cfg}
	for _, o := range opts {
		o(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if s.store != nil {
		if best, err := s.store.LoadBest(); err == nil && best > 0 {
			s.Best = best
		}
	}
	s.Reset()
	return s
}

// Config returns the tuning the session was built with.
func (s *State) Config() config.Physics { return s.cfg }

// Reset puts a fresh bird in the middle of the screen and clears the pipes.
// Phase and pause are left to the caller.
func (s *State) Reset() {
	s.Score = 0
	s.Bird = Bird{
		X: s.cfg.BirdX,
		Y: s.cfg.Height * 0.5,
		R: s.cfg.BirdRadius,
	}
	s.Pipes = s.Pipes[:0]
	s.NextPipe = 0
	s.Speed = s.cfg.BaseSpeed
}

// Running reports whether the next tick should advance physics.
func (s *State) Running() bool {
	return s.Phase == PhasePlaying && !s.Paused
}

// Flap kicks the bird upwards and snaps it into the climb angle.
func (s *State) Flap() {
	s.Bird.VY = s.cfg.JumpVelocity
	s.Bird.Angle = s.cfg.ClimbAngle
}

func (s *State) gameOver() {
	s.Phase = PhaseGameOver
	if s.Score > s.Best {
		s.Best = s.Score
	}
	if s.store != nil {
		_ = s.store.SaveBest(s.Best)
	}
}
