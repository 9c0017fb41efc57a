// Package input turns polled key and pointer state into the ordered list of
// simulation events for one tick.
package input

import (
	"github.com/iburimskiy/flappy-bird/internal/sim"
	"github.com/iburimskiy/flappy-bird/internal/view"
)

type Key int

const (
	KeySpace Key = iota
	KeyP
	KeyR
	KeyEscape
	KeyQ
)

// Device is polled once per tick.
type Device interface {
	KeyPressed(k Key) bool
	// Pointer returns the primary pointer (mouse or first touch) in
	// framebuffer pixels and whether it is held down.
	Pointer() (x, y float64, down bool)
}

// Reader edge-detects a Device. Within a tick, events come out in a fixed
// order: pointer, space, pause, reset.
type Reader struct {
	dev     Device
	prevKey map[Key]bool

	prevDown bool
	pointer  view.Point

	// Hover is the top bar button under the pointer.
	Hover view.Button
	// Held is the button a press started on, until release.
	Held view.Button
	// Quit is set when a quit key went down this tick.
	Quit bool
}

func NewReader(dev Device) *Reader {
	return &Reader{
		dev:     dev,
		prevKey: map[Key]bool{},
	}
}

func (r *Reader) justPressed(k Key) bool {
	pressed := r.dev.KeyPressed(k)
	jp := pressed && !r.prevKey[k]
	r.prevKey[k] = pressed
	return jp
}

// Poll appends this tick's events to dst. l converts pointer pixels into
// logical units.
func (r *Reader) Poll(l view.Layout, dst []sim.Event) []sim.Event {
	px, py, down := r.dev.Pointer()
	x, y := l.ToScreen(px, py)
	r.pointer = view.Point{X: x, Y: y}
	r.Hover = view.HitButton(r.pointer)

	switch {
	case down && !r.prevDown:
		if r.Hover != view.ButtonNone {
			r.Held = r.Hover
		} else if _, ok := view.InPlayArea(r.pointer); ok {
			dst = append(dst, sim.EventFlap)
		}
	case !down && r.prevDown:
		// Buttons fire on release, and only over the button they were pressed on.
		if r.Held != view.ButtonNone && r.Held == r.Hover {
			dst = append(dst, buttonEvent(r.Held))
		}
		r.Held = view.ButtonNone
	}
	r.prevDown = down

	if r.justPressed(KeySpace) {
		dst = append(dst, sim.EventFlap)
	}
	if r.justPressed(KeyP) {
		dst = append(dst, sim.EventTogglePause)
	}
	if r.justPressed(KeyR) {
		dst = append(dst, sim.EventReset)
	}
	quitEsc := r.justPressed(KeyEscape)
	quitQ := r.justPressed(KeyQ)
	r.Quit = quitEsc || quitQ
	return dst
}

func buttonEvent(b view.Button) sim.Event {
	if b == view.ButtonRestart {
		return sim.EventReset
	}
	return sim.EventPauseButton
}
