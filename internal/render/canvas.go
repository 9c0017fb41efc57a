package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/flappy-bird/internal/view"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Paint is a solid colour or a two-stop linear gradient between two points
// in the local coordinate space of the shape being filled.
type Paint struct {
	From, To       color.RGBA
	X0, Y0, X1, Y1 float64
	gradient       bool
}

func Solid(c color.RGBA) Paint { return Paint{From: c} }

func Linear(x0, y0, x1, y1 float64, from, to color.RGBA) Paint {
	return Paint{From: from, To: to, X0: x0, Y0: y0, X1: x1, Y1: y1, gradient: true}
}

func (p Paint) at(x, y float64) (r, g, b, a float32) {
	c0 := p.From
	if !p.gradient {
		return float32(c0.R) / 255, float32(c0.G) / 255, float32(c0.B) / 255, float32(c0.A) / 255
	}
	dx, dy := p.X1-p.X0, p.Y1-p.Y0
	t := 0.0
	if l2 := dx*dx + dy*dy; l2 > 0 {
		t = clamp01(((x-p.X0)*dx + (y-p.Y0)*dy) / l2)
	}
	c1 := p.To
	mix := func(a, b uint8) float32 { return float32((float64(a)*(1-t) + float64(b)*t) / 255) }
	return mix(c0.R, c1.R), mix(c0.G, c1.G), mix(c0.B, c1.B), mix(c0.A, c1.A)
}

// Canvas draws in logical units onto a framebuffer. Like a 2D canvas
// context it carries a transform stack and a global alpha.
type Canvas struct {
	dst   *ebiten.Image
	scale float64
	geo   ebiten.GeoM
	alpha float64
	stack []canvasState

	vs []ebiten.Vertex
	is []uint16
}

type canvasState struct {
	geo   ebiten.GeoM
	alpha float64
}

// Reset points the canvas at dst with the logical origin and scale of l.
func (c *Canvas) Reset(dst *ebiten.Image, l view.Layout) {
	c.dst = dst
	c.scale = l.Scale
	c.geo = ebiten.GeoM{}
	c.geo.Scale(l.Scale, l.Scale)
	c.geo.Translate(l.OffsetX, l.OffsetY)
	c.alpha = 1
	c.stack = c.stack[:0]
}

func (c *Canvas) Save() {
	c.stack = append(c.stack, canvasState{geo: c.geo, alpha: c.alpha})
}

func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	top := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.geo, c.alpha = top.geo, top.alpha
}

// Translate and Rotate apply before the current transform, the way a
// canvas context composes them.
func (c *Canvas) Translate(x, y float64) {
	var g ebiten.GeoM
	g.Translate(x, y)
	g.Concat(c.geo)
	c.geo = g
}

func (c *Canvas) Rotate(theta float64) {
	var g ebiten.GeoM
	g.Rotate(theta)
	g.Concat(c.geo)
	c.geo = g
}

func (c *Canvas) SetAlpha(a float64) { c.alpha = clamp01(a) }

func (c *Canvas) FillRect(x, y, w, h float64, p Paint) {
	var path vector.Path
	path.MoveTo(float32(x), float32(y))
	path.LineTo(float32(x+w), float32(y))
	path.LineTo(float32(x+w), float32(y+h))
	path.LineTo(float32(x), float32(y+h))
	path.Close()
	c.fill(&path, p)
}

func (c *Canvas) StrokeRect(x, y, w, h, width float64, col color.RGBA) {
	var path vector.Path
	path.MoveTo(float32(x), float32(y))
	path.LineTo(float32(x+w), float32(y))
	path.LineTo(float32(x+w), float32(y+h))
	path.LineTo(float32(x), float32(y+h))
	path.Close()
	c.vs, c.is = path.AppendVerticesAndIndicesForStroke(c.vs[:0], c.is[:0], &vector.StrokeOptions{
		Width:      float32(width),
		LineJoin:   vector.LineJoinMiter,
		MiterLimit: 10,
	})
	c.draw(Solid(col))
}

func (c *Canvas) FillCircle(x, y, r float64, p Paint) {
	var path vector.Path
	path.Arc(float32(x), float32(y), float32(r), 0, 2*math.Pi, vector.Clockwise)
	path.Close()
	c.fill(&path, p)
}

// FillEllipse fills an ellipse with radii rx, ry rotated by rot around its centre.
func (c *Canvas) FillEllipse(cx, cy, rx, ry, rot float64, p Paint) {
	const segments = 40
	sin, cos := math.Sincos(rot)
	var path vector.Path
	for i := 0; i < segments; i++ {
		t := 2 * math.Pi * float64(i) / segments
		ex, ey := rx*math.Cos(t), ry*math.Sin(t)
		x := float32(cx + ex*cos - ey*sin)
		y := float32(cy + ex*sin + ey*cos)
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()
	c.fill(&path, p)
}

// FillPolygon fills a convex polygon.
func (c *Canvas) FillPolygon(pts [][2]float64, p Paint) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0][0]), float32(pts[0][1]))
	for _, pt := range pts[1:] {
		path.LineTo(float32(pt[0]), float32(pt[1]))
	}
	path.Close()
	c.fill(&path, p)
}

// Text draws s horizontally centred on x with its baseline at y. size is in
// logical units; glyphs are rasterized at framebuffer resolution.
func (c *Canvas) Text(s string, src *text.GoTextFaceSource, size, x, y float64, col color.RGBA) {
	c.text(s, src, size, x, y, col, text.AlignCenter)
}

// TextLeft is Text anchored at its left edge.
func (c *Canvas) TextLeft(s string, src *text.GoTextFaceSource, size, x, y float64, col color.RGBA) {
	c.text(s, src, size, x, y, col, text.AlignStart)
}

func (c *Canvas) text(s string, src *text.GoTextFaceSource, size, x, y float64, col color.RGBA, align text.Align) {
	if s == "" {
		return
	}
	face := &text.GoTextFace{Source: src, Size: size * c.scale}
	px, py := c.geo.Apply(x, y)

	op := &text.DrawOptions{}
	op.GeoM.Translate(px, py-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(col)
	op.ColorScale.ScaleAlpha(float32(c.alpha))
	op.PrimaryAlign = align
	text.Draw(c.dst, s, face, op)
}

func (c *Canvas) fill(path *vector.Path, p Paint) {
	c.vs, c.is = path.AppendVerticesAndIndicesForFilling(c.vs[:0], c.is[:0])
	c.draw(p)
}

// draw colours the pending vertices in local space, moves them into pixel
// space and submits them.
func (c *Canvas) draw(p Paint) {
	a := float32(c.alpha)
	for i := range c.vs {
		v := &c.vs[i]
		lx, ly := float64(v.DstX), float64(v.DstY)
		r, g, b, al := p.at(lx, ly)
		x, y := c.geo.Apply(lx, ly)
		v.DstX, v.DstY = float32(x), float32(y)
		v.SrcX, v.SrcY = 1, 1
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = r, g, b, al*a
	}
	c.dst.DrawTriangles(c.vs, c.is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
