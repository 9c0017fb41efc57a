// Package render draws the game. Every drawing call is expressed in logical
// units; the Canvas carries the single logical-to-pixel transform.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/flappy-bird/internal/config"
	"github.com/iburimskiy/flappy-bird/internal/sim"
	"github.com/iburimskiy/flappy-bird/internal/view"
)

var (
	skyColor      = color.RGBA{R: 0x87, G: 0xCE, B: 0xEB, A: 0xFF}
	pipeColor     = color.RGBA{R: 0x2B, G: 0xD9, B: 0x6B, A: 0xFF}
	pipeLipColor  = color.RGBA{R: 0x1F, G: 0xB8, B: 0x58, A: 0xFF}
	groundColor   = color.RGBA{R: 0xE2, G: 0xC5, B: 0x71, A: 0xFF}
	groundStripe  = color.RGBA{R: 0xD3, G: 0xB4, B: 0x5A, A: 0xFF}
	birdLight     = color.RGBA{R: 0xFF, G: 0xD1, B: 0x66, A: 0xFF}
	birdDark      = color.RGBA{R: 0xF4, G: 0xA2, B: 0x61, A: 0xFF}
	beakColor     = color.RGBA{R: 0xE7, G: 0x6F, B: 0x51, A: 0xFF}
	wingColor     = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 204}
	white         = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	black         = color.RGBA{A: 0xFF}
	scoreColor    = color.RGBA{A: 191}
	panelText     = color.RGBA{R: 0x0B, G: 0x17, B: 0x26, A: 0xFF}
	panelBorder   = color.RGBA{A: 26}
	topBarColor   = color.RGBA{R: 0x0B, G: 0x17, B: 0x26, A: 0xFF}
	topBarText    = color.RGBA{R: 0xE2, G: 0xE8, B: 0xF0, A: 0xFF}
	buttonNormal  = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	buttonHovered = color.RGBA{R: 80, G: 100, B: 140, A: 255}
	buttonPressed = color.RGBA{R: 60, G: 80, B: 120, A: 255}
	buttonBorder  = color.RGBA{R: 150, G: 170, B: 200, A: 255}
)

const (
	cloudLayerAlpha  = 0.5
	overlayPanelFill = 0.85

	panelW = 290
	panelH = 140
	panelY = 180
)

// HUD is the pointer state the top bar reacts to.
type HUD struct {
	Hover, Held view.Button
}

type Renderer struct {
	bold, medium, regular *text.GoTextFaceSource

	canvas Canvas
	clouds *ebiten.Image
}

func New() (*Renderer, error) {
	r := &Renderer{}
	for _, f := range []struct {
		dst  **text.GoTextFaceSource
		ttf  []byte
		name string
	}{
		{&r.bold, gobold.TTF, "Go Bold"},
		{&r.medium, gomedium.TTF, "Go Medium"},
		{&r.regular, goregular.TTF, "Go Regular"},
	} {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(f.ttf))
		if err != nil {
			return nil, fmt.Errorf("load font %s: %w", f.name, err)
		}
		*f.dst = src
	}
	return r, nil
}

// Draw paints the whole frame. It only reads s; now drives the clouds.
func (r *Renderer) Draw(dst *ebiten.Image, l view.Layout, s *sim.State, hud HUD, now time.Time) {
	c := &r.canvas

	dst.Fill(topBarColor)
	c.Reset(dst, l)
	c.Save()
	c.Translate(0, config.TopBarHeight)
	r.drawSky(c, dst, l, now)
	r.drawPipes(c, s)
	r.drawGround(c, s.Config())
	drawBird(c, s.Bird)
	c.Text(fmt.Sprint(s.Score), r.bold, 42, config.LogicalWidth/2, 70, scoreColor)
	if o, ok := view.OverlayFor(s); ok {
		r.drawOverlay(c, o)
	}
	c.Restore()

	r.drawTopBar(c, s, hud)
	maskMargins(dst, l)
}

// maskMargins repaints whatever spilled outside the game, such as pipes
// entering from the right.
func maskMargins(dst *ebiten.Image, l view.Layout) {
	b := dst.Bounds()
	x0, y0 := int(l.OffsetX), int(l.OffsetY)
	x1 := int(math.Ceil(l.OffsetX + view.ScreenWidth*l.Scale))
	y1 := int(math.Ceil(l.OffsetY + view.ScreenHeight*l.Scale))
	for _, m := range []image.Rectangle{
		image.Rect(b.Min.X, b.Min.Y, x0, b.Max.Y),
		image.Rect(x1, b.Min.Y, b.Max.X, b.Max.Y),
		image.Rect(x0, b.Min.Y, x1, y0),
		image.Rect(x0, y1, x1, b.Max.Y),
	} {
		if m = m.Intersect(b); !m.Empty() {
			dst.SubImage(m).(*ebiten.Image).Fill(topBarColor)
		}
	}
}

func (r *Renderer) drawSky(c *Canvas, dst *ebiten.Image, l view.Layout, now time.Time) {
	c.FillRect(0, 0, config.LogicalWidth, config.LogicalHeight, Solid(skyColor))

	// Clouds are drawn opaque on their own layer and composited at half
	// alpha so overlapping puffs do not darken.
	b := dst.Bounds()
	if r.clouds == nil || r.clouds.Bounds() != b {
		if r.clouds != nil {
			r.clouds.Deallocate()
		}
		r.clouds = ebiten.NewImage(b.Dx(), b.Dy())
	}
	r.clouds.Clear()

	layer := Canvas{}
	layer.Reset(r.clouds, l)
	layer.Translate(0, config.TopBarHeight)
	for i := 0; i < view.CloudCount; i++ {
		p := view.CloudPos(now, i)
		drawCloud(&layer, p.X, p.Y)
	}

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(cloudLayerAlpha)
	dst.DrawImage(r.clouds, op)
}

func drawCloud(c *Canvas, x, y float64) {
	c.FillCircle(x, y, 18, Solid(white))
	c.FillCircle(x+20, y-8, 22, Solid(white))
	c.FillCircle(x+45, y, 18, Solid(white))
}

func (r *Renderer) drawPipes(c *Canvas, s *sim.State) {
	cfg := s.Config()
	for _, p := range s.Pipes {
		top := p.GapY
		bot := p.GapY + cfg.PipeGap
		c.FillRect(p.X, 0, cfg.PipeWidth, top, Solid(pipeColor))
		c.FillRect(p.X, bot, cfg.PipeWidth, cfg.Height-bot-cfg.GroundHeight, Solid(pipeColor))

		c.FillRect(p.X-4, top-14, cfg.PipeWidth+8, 14, Solid(pipeLipColor))
		c.FillRect(p.X-4, bot, cfg.PipeWidth+8, 14, Solid(pipeLipColor))
	}
}

func (r *Renderer) drawGround(c *Canvas, cfg config.Physics) {
	c.FillRect(0, cfg.GroundY(), cfg.Width, cfg.GroundHeight, Solid(groundColor))
	c.FillRect(0, cfg.GroundY(), cfg.Width, 12, Solid(groundStripe))
}

func drawBird(c *Canvas, b sim.Bird) {
	rad := b.R
	c.Save()
	c.Translate(b.X, b.Y)
	c.Rotate(b.Angle)

	c.FillEllipse(0, 0, rad+2, rad, 0, Linear(-rad, -rad, rad, rad, birdLight, birdDark))
	c.FillEllipse(-4, 4, rad*0.7, rad*0.45, -0.6, Solid(wingColor))

	c.FillCircle(rad*0.25, -rad*0.25, rad*0.35, Solid(white))
	c.FillCircle(rad*0.35, -rad*0.25, rad*0.15, Solid(black))

	c.FillPolygon([][2]float64{{rad + 2, -2}, {rad + 12, 0}, {rad + 2, 2}}, Solid(beakColor))
	c.Restore()
}

func (r *Renderer) drawOverlay(c *Canvas, o view.Overlay) {
	x := (config.LogicalWidth - panelW) / 2.0
	y := float64(panelY)

	c.Save()
	c.SetAlpha(overlayPanelFill)
	c.FillRect(x, y, panelW, panelH, Solid(white))
	c.SetAlpha(1)
	c.StrokeRect(x+1, y+1, panelW-2, panelH-2, 2, panelBorder)

	cx := config.LogicalWidth / 2.0
	c.Text(o.Title, r.bold, 20, cx, y+34, panelText)
	c.Text(o.Subtitle, r.medium, 14, cx, y+64, panelText)
	c.Text(o.Hint, r.regular, 12, cx, y+94, panelText)
	c.Restore()
}

func (r *Renderer) drawTopBar(c *Canvas, s *sim.State, hud HUD) {
	c.FillRect(0, 0, view.ScreenWidth, config.TopBarHeight, Solid(topBarColor))

	baseline := config.TopBarHeight/2.0 + 5
	c.TextLeft(fmt.Sprintf("Score: %d", s.Score), r.medium, 14, 12, baseline, topBarText)
	c.TextLeft(fmt.Sprintf("Best: %d", s.Best), r.medium, 14, 110, baseline, topBarText)

	for _, b := range []view.Button{view.ButtonPause, view.ButtonRestart} {
		r.drawButton(c, b, view.ButtonLabel(b, s.Phase, s.Paused), hud)
	}
}

func (r *Renderer) drawButton(c *Canvas, b view.Button, label string, hud HUD) {
	rect := view.ButtonRect(b)

	bg := buttonNormal
	switch {
	case hud.Held == b && hud.Hover == b:
		bg = buttonPressed
	case hud.Hover == b:
		bg = buttonHovered
	}
	c.FillRect(rect.X, rect.Y, rect.W, rect.H, Solid(bg))
	c.StrokeRect(rect.X, rect.Y, rect.W, rect.H, 2, buttonBorder)
	c.Text(label, r.medium, 13, rect.X+rect.W/2, rect.Y+rect.H/2+5, white)
}
