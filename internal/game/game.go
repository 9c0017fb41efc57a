// Package game glues the simulation, input, sound and renderer into an
// ebiten.Game.
package game

import (
	"runtime"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/flappy-bird/internal/audio"
	"github.com/iburimskiy/flappy-bird/internal/config"
	"github.com/iburimskiy/flappy-bird/internal/input"
	"github.com/iburimskiy/flappy-bird/internal/render"
	"github.com/iburimskiy/flappy-bird/internal/sim"
	"github.com/iburimskiy/flappy-bird/internal/view"
)

type Game struct {
	state    *sim.State
	input    *input.Reader
	sound    *audio.Player
	renderer *render.Renderer

	layout view.Layout
	clock  sim.Clock
	events []sim.Event

	// audio pause last pushed to the player
	paused bool
	// Escape and Q quit on desktop only; a page cannot close itself.
	canQuit bool
}

func New(state *sim.State, r *render.Renderer, sound *audio.Player) *Game {
	return &Game{
		state:    state,
		input:    input.NewReader(&device{}),
		sound:    sound,
		renderer: r,
		clock:    sim.Clock{Max: config.MaxFrameDelta},
		canQuit:  runtime.GOOS != "js",
	}
}

func (g *Game) Update() error {
	g.events = g.input.Poll(g.layout, g.events[:0])
	for _, e := range g.events {
		if g.state.Apply(e) {
			g.sound.Play(audio.SoundFlap)
		}
	}

	if g.state.Running() {
		st := g.state.Update(g.clock.Tick(time.Now()))
		for i := 0; i < st.Scored; i++ {
			g.sound.Play(audio.SoundScore)
		}
		if st.Crashed {
			g.sound.Play(audio.SoundHit)
		}
	} else {
		g.clock.Stop()
	}

	if g.state.Paused != g.paused {
		g.paused = g.state.Paused
		g.sound.SetPaused(g.paused)
	}

	if g.input.Quit && g.canQuit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	hud := render.HUD{Hover: g.input.Hover, Held: g.input.Held}
	g.renderer.Draw(screen, g.layout, g.state, hud, time.Now())
}

// Layout renders at native resolution: the framebuffer is the window size
// times the device scale factor.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.layout = view.Fit(outsideWidth, outsideHeight, ebiten.Monitor().DeviceScaleFactor())
	return max(g.layout.Width, 1), max(g.layout.Height, 1)
}
