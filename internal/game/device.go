package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/flappy-bird/internal/input"
)

var keys = map[input.Key]ebiten.Key{
	input.KeySpace:  ebiten.KeySpace,
	input.KeyP:      ebiten.KeyP,
	input.KeyR:      ebiten.KeyR,
	input.KeyEscape: ebiten.KeyEscape,
	input.KeyQ:      ebiten.KeyQ,
}

// device reads ebiten's keyboard, mouse and touch state.
type device struct {
	touches  []ebiten.TouchID
	released []ebiten.TouchID
}

func (d *device) KeyPressed(k input.Key) bool {
	ek, ok := keys[k]
	return ok && ebiten.IsKeyPressed(ek)
}

// Pointer prefers the first touch. A touch that just lifted reports where it
// was last seen so the release lands on the right button.
func (d *device) Pointer() (x, y float64, down bool) {
	d.touches = ebiten.AppendTouchIDs(d.touches[:0])
	if len(d.touches) > 0 {
		tx, ty := ebiten.TouchPosition(d.touches[0])
		return float64(tx), float64(ty), true
	}
	d.released = inpututil.AppendJustReleasedTouchIDs(d.released[:0])
	if len(d.released) > 0 {
		tx, ty := inpututil.TouchPositionInPreviousTick(d.released[0])
		return float64(tx), float64(ty), false
	}
	mx, my := ebiten.CursorPosition()
	return float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}
