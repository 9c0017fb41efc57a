package sim

// Event is a discrete player action. Input collects events during a frame
// and the loop applies them in order before stepping physics.
type Event int

const (
	// EventFlap is the tap/click/space action.
	EventFlap Event = iota + 1
	// EventTogglePause is the pause key.
	EventTogglePause
	// EventReset forces the session back to the menu.
	EventReset
	// EventPauseButton is the top bar button: reset from gameover, else pause.
	EventPauseButton
)

func (e Event) String() string {
	switch e {
	case EventFlap:
		return "flap"
	case EventTogglePause:
		return "pause"
	case EventReset:
		return "reset"
	case EventPauseButton:
		return "pause-button"
	}
	return "unknown"
}

// Apply feeds one event through the state machine and reports whether the
// bird flapped.
func (s *State) Apply(e Event) (flapped bool) {
	switch e {
	case EventFlap:
		switch s.Phase {
		case PhaseMenu:
			s.Phase = PhasePlaying
			s.Flap()
			return true
		case PhaseGameOver:
			s.Reset()
			s.Paused = false
			s.Phase = PhasePlaying
			s.Flap()
			return true
		case PhasePlaying:
			if s.Paused {
				return false
			}
			s.Flap()
			return true
		}
	case EventTogglePause:
		if s.Phase == PhasePlaying {
			s.Paused = !s.Paused
		}
	case EventReset:
		s.toMenu()
	case EventPauseButton:
		if s.Phase == PhaseGameOver {
			s.toMenu()
			return false
		}
		if s.Phase == PhasePlaying {
			s.Paused = !s.Paused
		}
	}
	return false
}

func (s *State) toMenu() {
	s.Reset()
	s.Phase = PhaseMenu
	s.Paused = false
}
