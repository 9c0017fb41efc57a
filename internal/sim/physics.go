package sim

import "math"

// Step reports what happened during one Update.
type Step struct {
	Spawned bool
	Scored  int
	Crashed bool
}

// Update advances a playing, unpaused session by dt seconds. Other phases
// are left untouched.
func (s *State) Update(dt float64) Step {
	var st Step
	if !s.Running() {
		return st
	}
	cfg := &s.cfg
	b := &s.Bird

	s.NextPipe -= dt
	if s.NextPipe <= 0 {
		s.spawnPipe()
		s.NextPipe = cfg.PipeInterval
		s.Speed = cfg.BaseSpeed + math.Min(cfg.SpeedBonusCap, float64(s.Score)*cfg.SpeedPerScore)
		st.Spawned = true
	}

	b.VY += cfg.Gravity * dt
	b.Y += b.VY * dt
	b.Angle = math.Min(cfg.DiveAngle, b.Angle+dt*cfg.DiveRate)

	for i := range s.Pipes {
		p := &s.Pipes[i]
		p.X -= s.Speed * dt
		if !p.Passed && p.X+cfg.PipeWidth < b.X-b.R {
			p.Passed = true
			s.Score++
			st.Scored++
		}
	}

	kept := s.Pipes[:0]
	for _, p := range s.Pipes {
		if p.X+cfg.PipeWidth > cfg.PipeCullX {
			kept = append(kept, p)
		}
	}
	s.Pipes = kept

	if s.crashed() {
		s.gameOver()
		st.Crashed = true
	}
	return st
}

func (s *State) spawnPipe() {
	minY, maxY := s.cfg.GapRange()
	s.Pipes = append(s.Pipes, Pipe{
		X:    s.cfg.Width + s.cfg.PipeWidth,
		GapY: minY + s.rng.Float64()*(maxY-minY),
	})
}

func (s *State) crashed() bool {
	b := s.Bird
	if b.Y+b.R >= s.cfg.GroundY() || b.Y-b.R <= 0 {
		return true
	}
	for _, p := range s.Pipes {
		if HitsPipe(b, p, s.cfg.PipeWidth, s.cfg.PipeGap) {
			return true
		}
	}
	return false
}

// HitsPipe reports whether the bird's bounding extent touches the solid part
// of a pipe. Touching an edge counts as a hit.
func HitsPipe(b Bird, p Pipe, width, gap float64) bool {
	if b.X+b.R < p.X || b.X-b.R > p.X+width {
		return false
	}
	return b.Y-b.R <= p.GapY || b.Y+b.R >= p.GapY+gap
}
