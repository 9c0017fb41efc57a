package view

import (
	"strings"
	"testing"
	"time"

	"github.com/iburimskiy/flappy-bird/internal/config"
	"github.com/iburimskiy/flappy-bird/internal/sim"
)

func TestFit(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		dpr        float64
		wantScale  float64
		wantOffX   float64
		wantOffY   float64
		wantWidth  int
		wantHeight int
	}{
		{"exact", 400, 644, 1, 1, 0, 0, 400, 644},
		{"capped width", 1920, 2000, 1, 1.3, 700, 581, 1920, 2000},
		{"hidpi", 400, 644, 2, 2, 0, 0, 800, 1288},
		{"narrow phone", 200, 2000, 3, 1.5, 0, 2517, 600, 6000},
		{"short window", 1000, 322, 1, 0.5, 400, 0, 1000, 322},
		{"dpr below one", 400, 644, 0.5, 1, 0, 0, 400, 644},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fit(tt.w, tt.h, tt.dpr)
			want := Layout{
				Scale:   tt.wantScale,
				OffsetX: tt.wantOffX,
				OffsetY: tt.wantOffY,
				Width:   tt.wantWidth,
				Height:  tt.wantHeight,
			}
			if got != want {
				t.Fatalf("Fit(%d, %d, %v) = %+v, want %+v", tt.w, tt.h, tt.dpr, got, want)
			}
		})
	}
}

func TestFitContentInsideFramebuffer(t *testing.T) {
	for _, w := range []int{120, 333, 400, 517, 900, 2560} {
		for _, dpr := range []float64{1, 1.75, 3} {
			l := Fit(w, 900, dpr)
			if css := ScreenWidth * l.Scale / dpr; css > config.MaxCanvasWidth+1e-9 {
				t.Fatalf("width %d dpr %v: drawn %v css px wide", w, dpr, css)
			}
			if l.OffsetX+ScreenWidth*l.Scale > float64(l.Width)+1 {
				t.Fatalf("width %d dpr %v: content overflows horizontally: %+v", w, dpr, l)
			}
			if l.OffsetY+ScreenHeight*l.Scale > float64(l.Height)+1 {
				t.Fatalf("width %d dpr %v: content overflows vertically: %+v", w, dpr, l)
			}
		}
	}
}

func TestToScreenInvertsScale(t *testing.T) {
	l := Fit(1000, 322, 2)
	// One pixel per unit, content centred 800 pixels in.
	x, y := l.ToScreen(l.OffsetX+200, l.OffsetY+400)
	if x != 200/l.Scale || y != 400/l.Scale {
		t.Fatalf("ToScreen = (%v, %v), want (%v, %v)", x, y, 200/l.Scale, 400/l.Scale)
	}
	if x, y := (Layout{}).ToScreen(3, 4); x != 3 || y != 4 {
		t.Fatalf("zero layout ToScreen = (%v, %v), want identity", x, y)
	}
}

func TestInPlayArea(t *testing.T) {
	if _, ok := InPlayArea(Point{X: 10, Y: 10}); ok {
		t.Fatal("top bar point reported as play area")
	}
	q, ok := InPlayArea(Point{X: 10, Y: config.TopBarHeight + 5})
	if !ok || q.Y != 5 {
		t.Fatalf("InPlayArea = %+v, %v, want y=5 inside", q, ok)
	}
	if _, ok := InPlayArea(Point{X: 400, Y: 300}); ok {
		t.Fatal("right edge is outside the play area")
	}
}

func TestHitButton(t *testing.T) {
	pause, restart := ButtonRect(ButtonPause), ButtonRect(ButtonRestart)
	if pause.X+pause.W >= restart.X {
		t.Fatalf("buttons overlap: %+v %+v", pause, restart)
	}
	if restart.X+restart.W > ScreenWidth {
		t.Fatalf("restart button off screen: %+v", restart)
	}
	tests := []struct {
		p    Point
		want Button
	}{
		{Point{pause.X + 1, pause.Y + 1}, ButtonPause},
		{Point{restart.X + restart.W, restart.Y + restart.H}, ButtonRestart},
		{Point{5, 5}, ButtonNone},
		{Point{restart.X, config.TopBarHeight + 20}, ButtonNone},
	}
	for _, tt := range tests {
		if got := HitButton(tt.p); got != tt.want {
			t.Fatalf("HitButton(%+v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestButtonLabel(t *testing.T) {
	tests := []struct {
		phase  sim.Phase
		paused bool
		want   string
	}{
		{sim.PhaseMenu, false, "Pause"},
		{sim.PhasePlaying, false, "Pause"},
		{sim.PhasePlaying, true, "Resume"},
		{sim.PhaseGameOver, false, "Reset"},
	}
	for _, tt := range tests {
		if got := ButtonLabel(ButtonPause, tt.phase, tt.paused); got != tt.want {
			t.Fatalf("label(%v, paused=%v) = %q, want %q", tt.phase, tt.paused, got, tt.want)
		}
	}
	if got := ButtonLabel(ButtonRestart, sim.PhaseGameOver, false); got != "Restart" {
		t.Fatalf("restart label = %q", got)
	}
}

func TestOverlayFor(t *testing.T) {
	s := sim.New(config.DefaultPhysics())

	o, ok := OverlayFor(s)
	if !ok || !strings.Contains(o.Title, "Flap") || !strings.Contains(o.Subtitle, "Pause") {
		t.Fatalf("menu overlay = %+v, %v", o, ok)
	}

	s.Phase = sim.PhasePlaying
	if _, ok := OverlayFor(s); ok {
		t.Fatal("overlay shown while playing")
	}

	s.Paused = true
	o, ok = OverlayFor(s)
	if !ok || o.Title != "Paused" || !strings.Contains(o.Subtitle, "resume") {
		t.Fatalf("paused overlay = %+v, %v", o, ok)
	}

	s.Paused = false
	s.Phase = sim.PhaseGameOver
	s.Score, s.Best = 4, 11
	o, ok = OverlayFor(s)
	if !ok || o.Title != "Game Over" {
		t.Fatalf("gameover overlay = %+v, %v", o, ok)
	}
	if !strings.Contains(o.Subtitle, "Score: 4") || !strings.Contains(o.Subtitle, "Best: 11") {
		t.Fatalf("gameover subtitle = %q", o.Subtitle)
	}
	if !strings.Contains(o.Hint, "restart") {
		t.Fatalf("gameover hint = %q", o.Hint)
	}
}

func TestCloudPos(t *testing.T) {
	base := time.UnixMilli(0)
	for i := 0; i < CloudCount; i++ {
		p := CloudPos(base, i)
		if want := float64(i*150) - 100; p.X != want {
			t.Fatalf("cloud %d x = %v, want %v", i, p.X, want)
		}
		if want := 90 + float64(i)*35; p.Y != want {
			t.Fatalf("cloud %d y = %v, want %v", i, p.Y, want)
		}
	}
	// 1s drifts 20 units right.
	if p := CloudPos(time.UnixMilli(1000), 0); p.X != -80 {
		t.Fatalf("cloud drift x = %v, want -80", p.X)
	}
	// Wraps after the screen plus one cloud width.
	if p := CloudPos(time.UnixMilli(25000), 0); p.X != -100 {
		t.Fatalf("wrapped x = %v, want -100", p.X)
	}
}
