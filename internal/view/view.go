// Package view maps between physical pixels and the logical play surface and
// decides what the HUD says. Nothing here draws.
package view

import (
	"fmt"
	"math"
	"time"

	"github.com/iburimskiy/flappy-bird/internal/config"
	"github.com/iburimskiy/flappy-bird/internal/sim"
)

// Logical size of the whole screen: top bar plus play surface.
const (
	ScreenWidth  = config.LogicalWidth
	ScreenHeight = config.TopBarHeight + config.LogicalHeight
)

// Layout is the transform from logical units to framebuffer pixels. The
// framebuffer covers the whole container; the game sits centred inside it.
type Layout struct {
	// Scale converts one logical unit into framebuffer pixels (css scale * dpr).
	Scale float64
	// Pixel offset of the logical origin.
	OffsetX, OffsetY float64
	// Framebuffer size in pixels.
	Width, Height int
}

// Fit sizes the framebuffer for a container of outsideW x outsideH device
// independent pixels on a display with the given device pixel ratio. The
// game is never drawn wider than config.MaxCanvasWidth and keeps its aspect.
func Fit(outsideW, outsideH int, dpr float64) Layout {
	dpr = math.Max(1, dpr)
	cssW := math.Min(float64(outsideW), config.MaxCanvasWidth)
	scale := cssW / ScreenWidth
	if h := float64(outsideH); ScreenHeight*scale > h {
		scale = h / ScreenHeight
	}
	if scale <= 0 {
		scale = 1
	}
	px := scale * dpr
	l := Layout{
		Scale:  px,
		Width:  int(math.Floor(float64(outsideW) * dpr)),
		Height: int(math.Floor(float64(outsideH) * dpr)),
	}
	l.OffsetX = math.Max(0, math.Floor((float64(l.Width)-ScreenWidth*px)/2))
	l.OffsetY = math.Max(0, math.Floor((float64(l.Height)-ScreenHeight*px)/2))
	return l
}

// ToScreen converts framebuffer pixels to logical screen units (top bar origin).
func (l Layout) ToScreen(px, py float64) (x, y float64) {
	if l.Scale == 0 {
		return px, py
	}
	return (px - l.OffsetX) / l.Scale, (py - l.OffsetY) / l.Scale
}

// Point in logical screen units.
type Point struct{ X, Y float64 }

// InPlayArea reports whether a screen point is on the play surface and
// returns it in play-surface coordinates.
func InPlayArea(p Point) (Point, bool) {
	q := Point{X: p.X, Y: p.Y - config.TopBarHeight}
	ok := q.X >= 0 && q.X < config.LogicalWidth && q.Y >= 0 && q.Y < config.LogicalHeight
	return q, ok
}

// Rect is an axis-aligned box in logical screen units.
type Rect struct{ X, Y, W, H float64 }

func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

type Button int

const (
	ButtonNone Button = iota
	ButtonPause
	ButtonRestart
)

// ButtonRect returns where a top bar button sits.
func ButtonRect(b Button) Rect {
	y := (config.TopBarHeight - config.ButtonHeight) / 2.0
	restartX := float64(ScreenWidth - config.ButtonMargin - config.ButtonWidth)
	switch b {
	case ButtonRestart:
		return Rect{X: restartX, Y: y, W: config.ButtonWidth, H: config.ButtonHeight}
	case ButtonPause:
		return Rect{X: restartX - config.ButtonSpacing - config.ButtonWidth, Y: y, W: config.ButtonWidth, H: config.ButtonHeight}
	}
	return Rect{}
}

// HitButton returns the button under a screen point.
func HitButton(p Point) Button {
	for _, b := range []Button{ButtonPause, ButtonRestart} {
		if ButtonRect(b).Contains(p) {
			return b
		}
	}
	return ButtonNone
}

// ButtonLabel is the caption for a top bar button in the current state.
func ButtonLabel(b Button, phase sim.Phase, paused bool) string {
	switch b {
	case ButtonRestart:
		return "Restart"
	case ButtonPause:
		switch {
		case paused:
			return "Resume"
		case phase == sim.PhaseGameOver:
			return "Reset"
		default:
			return "Pause"
		}
	}
	return ""
}

// Overlay is the modal panel shown over the play surface.
type Overlay struct {
	Title, Subtitle, Hint string
}

// OverlayFor picks the panel for the session, if any. Menu and game over
// take precedence over the pause panel.
func OverlayFor(s *sim.State) (Overlay, bool) {
	switch {
	case s.Phase == sim.PhaseMenu:
		return Overlay{"Click / Tap / Space to Flap", "P: Pause", "Flap between the pipes!"}, true
	case s.Phase == sim.PhaseGameOver:
		return Overlay{"Game Over", fmt.Sprintf("Score: %d  ·  Best: %d", s.Score, s.Best), "Press R to restart"}, true
	case s.Paused:
		return Overlay{"Paused", "Press P to resume", ""}, true
	}
	return Overlay{}, false
}

// Cloud drift.
const (
	CloudCount   = 3
	cloudSpeed   = 0.02 // units per millisecond
	cloudSpacing = 150
	cloudWrap    = config.LogicalWidth + 100
)

// CloudPos is where the i-th decorative cloud sits at wall-clock time now.
func CloudPos(now time.Time, i int) Point {
	ms := float64(now.UnixMilli())
	x := math.Mod(ms*cloudSpeed+float64(i*cloudSpacing), cloudWrap) - 100
	return Point{X: x, Y: 90 + float64(i)*35}
}
