package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/starward/engine"
	"github.com/plus3/starward/engine/geom"
)

// CameraRig follows a target object, leaning slightly toward the mouse
// cursor and zooming with the target's speed. Each update it installs the
// resulting view transform on the scene.
type CameraRig struct {
	Target *engine.ObjectRef

	// MinZoom is the zoomed-out magnification used at rest; the view eases
	// toward 1 as the target approaches max speed.
	MinZoom float64

	// Lean is how far the view shifts toward the cursor, in pixels.
	Lean float64

	Width, Height int
}

func (c *CameraRig) Start(obj *engine.GameObject) {
	if c.MinZoom == 0 {
		c.MinZoom = 1 / 1.5
	}
	if c.Lean == 0 {
		c.Lean = 20
	}
}

func (c *CameraRig) Update(obj *engine.GameObject, frame *engine.Frame) {
	target := c.Target.Object()
	if target == nil {
		return
	}

	mx, my := ebiten.CursorPosition()
	toCursor := geom.Vec2{
		X: float64(mx) - float64(c.Width)/2,
		Y: float64(my) - float64(c.Height)/2,
	}
	pos := target.Transform().Pos.Add(toCursor.Normalize().Mul(c.Lean))

	zoom := 1.0
	if body := engine.Get[Body](target); body != nil {
		zoom = zoomFor(body.Speed(), body.MaxSpeed, c.MinZoom)
	}

	obj.Transform().Pos = pos
	frame.Scene.SetView(viewMatrix(pos, zoom, c.Width, c.Height))
}

// zoomFor maps speed to magnification: MinZoom at rest, easing toward 1 at
// max speed.
func zoomFor(speed, maxSpeed, minZoom float64) float64 {
	if maxSpeed <= 0 {
		return minZoom
	}
	frac := speed / maxSpeed
	if frac > 1 {
		frac = 1
	}
	return minZoom + (1-minZoom)*frac
}

// viewMatrix builds the world-to-screen transform that puts pos at the
// screen center at the given magnification.
func viewMatrix(pos geom.Vec2, zoom float64, width, height int) ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(-pos.X, -pos.Y)
	m.Scale(zoom, zoom)
	m.Translate(float64(width)/2, float64(height)/2)
	return m
}
