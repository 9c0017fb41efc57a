package config

// Logical play surface. All physics and drawing happens in these units.
const (
	LogicalWidth  = 400
	LogicalHeight = 600

	// Widest the canvas gets on screen, in device-independent pixels.
	MaxCanvasWidth = 520

	// Top bar (score, best, buttons) sits above the play surface.
	TopBarHeight = 44
)

// Physics tuning
const (
	Gravity       = 1400.0
	JumpVelocity  = -360.0
	PipeGap       = 150.0
	PipeWidth     = 70.0
	PipeInterval  = 1.15 // seconds between spawns
	BaseSpeed     = 180.0
	SpeedPerScore = 8.0
	SpeedBonusCap = 120.0
	GroundHeight  = 90.0
	GapMargin     = 60.0
	PipeCullX     = -10.0

	BirdX      = 80.0
	BirdRadius = 14.0
	ClimbAngle = -0.35
	DiveAngle  = 0.5
	DiveRate   = 1.4 // rad/s

	// Longest step the simulation will take after a stalled frame.
	MaxFrameDelta = 0.033 * 2
)

// Button dimensions
const (
	ButtonWidth   = 72
	ButtonHeight  = 28
	ButtonSpacing = 6
	ButtonMargin  = 8
)

// BestScoreKey names the persisted best score in every storage backend.
const BestScoreKey = "flappy_best"

// Physics is the tuning the simulation runs with. Everything except the
// current speed stays fixed for the lifetime of a State.
type Physics struct {
	Width, Height float64

	Gravity      float64
	JumpVelocity float64
	PipeGap      float64
	PipeWidth    float64
	PipeInterval float64
	GroundHeight float64
	GapMargin    float64
	PipeCullX    float64

	BaseSpeed     float64
	SpeedPerScore float64
	SpeedBonusCap float64

	BirdX      float64
	BirdRadius float64
	ClimbAngle float64
	DiveAngle  float64
	DiveRate   float64
}

// DefaultPhysics returns the game's standard tuning.
func DefaultPhysics() Physics {
	return Physics{
		Width:         LogicalWidth,
		Height:        LogicalHeight,
		Gravity:       Gravity,
		JumpVelocity:  JumpVelocity,
		PipeGap:       PipeGap,
		PipeWidth:     PipeWidth,
		PipeInterval:  PipeInterval,
		GroundHeight:  GroundHeight,
		GapMargin:     GapMargin,
		PipeCullX:     PipeCullX,
		BaseSpeed:     BaseSpeed,
		SpeedPerScore: SpeedPerScore,
		SpeedBonusCap: SpeedBonusCap,
		BirdX:         BirdX,
		BirdRadius:    BirdRadius,
		ClimbAngle:    ClimbAngle,
		DiveAngle:     DiveAngle,
		DiveRate:      DiveRate,
	}
}

// GroundY is the top edge of the ground band.
func (p Physics) GroundY() float64 { return p.Height - p.GroundHeight }

// GapRange is the closed interval a pipe's gap top may be drawn from.
func (p Physics) GapRange() (minY, maxY float64) {
	return p.GapMargin, p.Height - p.GroundHeight - p.GapMargin - p.PipeGap
}
