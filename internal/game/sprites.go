package game

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/starward/engine"
	"github.com/plus3/starward/engine/geom"
)

// whitePixel is the source image for DrawTriangles fills.
var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.White)
	return img
}()

// fillPolygon fills a convex polygon given in screen coordinates.
func fillPolygon(screen *ebiten.Image, points []geom.Vec2, c color.RGBA) {
	if len(points) < 3 {
		return
	}

	cr := float32(c.R) / 255
	cg := float32(c.G) / 255
	cb := float32(c.B) / 255
	ca := float32(c.A) / 255

	vertices := make([]ebiten.Vertex, len(points))
	for i, p := range points {
		vertices[i] = ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		}
	}

	indices := make([]uint16, 0, (len(points)-2)*3)
	for i := 2; i < len(points); i++ {
		indices = append(indices, 0, uint16(i-1), uint16(i))
	}

	op := &ebiten.DrawTrianglesOptions{}
	screen.DrawTriangles(vertices, indices, whitePixel, op)
}

// Backdrop clears the whole screen with a solid color. Spawn it first so
// everything else draws on top.
type Backdrop struct {
	Color color.RGBA
}

func (b *Backdrop) Draw(obj *engine.GameObject, canvas *engine.Canvas) {
	canvas.Screen.Fill(b.Color)
}

// RectSprite is a world-anchored rectangle centered on the object's
// transform and rotated with it.
type RectSprite struct {
	W, H  float64
	Color color.RGBA
}

func (r *RectSprite) Draw(obj *engine.GameObject, canvas *engine.Canvas) {
	tr := obj.Transform()

	corners := []geom.Vec2{
		{X: -r.W / 2, Y: -r.H / 2},
		{X: r.W / 2, Y: -r.H / 2},
		{X: r.W / 2, Y: r.H / 2},
		{X: -r.W / 2, Y: r.H / 2},
	}
	for i, c := range corners {
		p := c.Rotate(tr.Rotation).Add(tr.Pos)
		x, y := canvas.Project(p.X, p.Y)
		corners[i] = geom.Vec2{X: x, Y: y}
	}

	fillPolygon(canvas.Screen, corners, r.Color)
}

// Starfield scatters fixed stars over a square region of the world. The
// same seed produces the same sky.
type Starfield struct {
	Seed   int64
	Count  int
	Extent float64
	Color  color.RGBA

	stars []geom.Vec2
	sizes []float64
}

func (s *Starfield) Start(obj *engine.GameObject) {
	if s.Count == 0 {
		s.Count = 400
	}
	if s.Extent == 0 {
		s.Extent = 2000
	}
	if s.Color == (color.RGBA{}) {
		s.Color = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	}

	rng := rand.New(rand.NewSource(s.Seed))
	s.stars = make([]geom.Vec2, s.Count)
	s.sizes = make([]float64, s.Count)
	for i := range s.stars {
		s.stars[i] = geom.Vec2{
			X: (rng.Float64()*2 - 1) * s.Extent,
			Y: (rng.Float64()*2 - 1) * s.Extent,
		}
		s.sizes[i] = 1 + rng.Float64()*2
	}
}

func (s *Starfield) Draw(obj *engine.GameObject, canvas *engine.Canvas) {
	for i, star := range s.stars {
		x, y := canvas.Project(star.X, star.Y)
		size := float32(s.sizes[i])
		vector.DrawFilledRect(canvas.Screen, float32(x), float32(y), size, size, s.Color, false)
	}
}
