package main

import (
	"errors"
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/flappy-bird/internal/audio"
	"github.com/iburimskiy/flappy-bird/internal/config"
	"github.com/iburimskiy/flappy-bird/internal/game"
	"github.com/iburimskiy/flappy-bird/internal/render"
	"github.com/iburimskiy/flappy-bird/internal/sim"
	"github.com/iburimskiy/flappy-bird/internal/storage"
	"github.com/iburimskiy/flappy-bird/internal/view"
)

func main() {
	settings := config.Load()
	log.Printf("[config] mute=%v volume=%v seed=%d", settings.Mute, settings.Volume, settings.Seed)

	best := storage.NewBest(storage.Open(settings.DataDir), config.BestScoreKey)
	opts := []sim.Option{sim.WithStore(best)}
	if settings.Seed != 0 {
		opts = append(opts, sim.WithRand(rand.New(rand.NewPCG(uint64(settings.Seed), 0))))
	}
	state := sim.New(config.DefaultPhysics(), opts...)

	sound := audio.NewPlayer(settings)
	if err := sound.Start(); err != nil {
		log.Printf("[audio] disabled: %v", err)
	}
	defer sound.Stop()

	renderer, err := render.New()
	if err != nil {
		fatal(err)
	}

	ebiten.SetWindowSize(view.ScreenWidth, view.ScreenHeight)
	ebiten.SetWindowTitle("Flappy Bird - Space/Click: Flap, P: Pause, R: Reset, Esc/Q: Quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.New(state, renderer, sound)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fatal(err)
	}
}
