package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/starward/engine"
	"github.com/plus3/starward/engine/geom"
)

const (
	// Thrust factors relative to the main engine: reverse and strafe
	// engines are weaker than the back engine.
	frontEngineFactor   = 0.6
	lateralEngineFactor = 0.4

	// Accelerations below this magnitude are treated as engine noise.
	accelDeadZone = 1.0 // px/s^2

	// Braking cuts velocity below this to a full stop.
	stopSpeed = 1.0 // px/s
)

// Thruster reads the movement keys and converts them into engine forces.
// Power is the back engine's thrust; the other engines derive from it.
type Thruster struct {
	Power float64

	// Per-engine throttle in [0, 1], set from the keyboard each frame.
	Back, Front, Left, Right float64
}

func (t *Thruster) Start(obj *engine.GameObject) {
	if t.Power == 0 {
		t.Power = 1800
	}
}

func (t *Thruster) Update(obj *engine.GameObject, frame *engine.Frame) {
	t.Back = keyThrottle(ebiten.KeyW)
	t.Front = keyThrottle(ebiten.KeyS)
	t.Left = keyThrottle(ebiten.KeyD)
	t.Right = keyThrottle(ebiten.KeyA)
}

func keyThrottle(key ebiten.Key) float64 {
	if ebiten.IsKeyPressed(key) {
		return 1
	}
	return 0
}

// Forces returns the world-space force of each engine given the ship's
// rotation. The back engine pushes forward; the front engine pushes
// backward at reduced power; the side engines strafe.
func (t *Thruster) Forces(rotation float64) []geom.Vec2 {
	return []geom.Vec2{
		geom.Vec2{X: t.Back * t.Power}.Rotate(rotation),
		geom.Vec2{X: -t.Front * t.Power * frontEngineFactor}.Rotate(rotation),
		geom.Vec2{Y: t.Left * t.Power * lateralEngineFactor}.Rotate(rotation),
		geom.Vec2{Y: -t.Right * t.Power * lateralEngineFactor}.Rotate(rotation),
	}
}

// Thrusting reports whether any engine is firing.
func (t *Thruster) Thrusting() bool {
	return t.Back > 0 || t.Front > 0 || t.Left > 0 || t.Right > 0
}

// Body integrates the ship's motion: engine forces divided by mass, a
// velocity-proportional brake when the engines are idle, and a hard speed
// cap.
type Body struct {
	Mass     float64
	MaxSpeed float64 // px/s
	Brake    float64 // velocity decay rate while coasting, 1/s

	Velocity geom.Vec2
	Accel    geom.Vec2
}

func (b *Body) Start(obj *engine.GameObject) {
	if b.Mass == 0 {
		b.Mass = 2
	}
	if b.MaxSpeed == 0 {
		b.MaxSpeed = 600
	}
	if b.Brake == 0 {
		b.Brake = 4.5
	}
}

func (b *Body) Update(obj *engine.GameObject, frame *engine.Frame) {
	thruster := engine.Get[Thruster](obj)
	if thruster == nil {
		return
	}
	b.Step(obj.Transform(), thruster, frame.DeltaTime)
}

// Step advances the body by dt seconds. Exposed for direct use in tests.
func (b *Body) Step(tr *engine.Transform, thruster *Thruster, dt float64) {
	b.Accel = b.acceleration(tr.Rotation, thruster)

	b.Velocity = b.Velocity.Add(b.Accel.Mul(dt)).ClampLen(b.MaxSpeed)

	if !thruster.Thrusting() && b.Velocity.Len() < stopSpeed {
		b.Velocity = geom.Vec2{}
	}

	tr.Pos = tr.Pos.Add(b.Velocity.Mul(dt))
}

func (b *Body) acceleration(rotation float64, thruster *Thruster) geom.Vec2 {
	var total geom.Vec2
	for _, f := range thruster.Forces(rotation) {
		total = total.Add(f)
	}

	if total.IsZero() {
		if b.Velocity.IsZero() {
			return geom.Vec2{}
		}
		// Coasting: bleed speed off proportionally to velocity.
		accel := b.Velocity.Mul(-b.Brake)
		if accel.Len() <= accelDeadZone {
			return geom.Vec2{}
		}
		return accel
	}

	accel := total.Mul(1 / b.Mass)
	if accel.Len() <= accelDeadZone {
		return geom.Vec2{}
	}
	return accel
}

// Speed returns the current speed in px/s.
func (b *Body) Speed() float64 {
	return b.Velocity.Len()
}

// Aim rotates the ship to face the mouse cursor. The ship's camera keeps it
// at the screen center, so the angle is taken from there.
type Aim struct {
	Width, Height int
}

func (a *Aim) Update(obj *engine.GameObject, frame *engine.Frame) {
	mx, my := ebiten.CursorPosition()
	obj.Transform().Rotation = aimAngle(float64(mx), float64(my), a.Width, a.Height)
}

func aimAngle(mx, my float64, width, height int) float64 {
	return math.Atan2(my-float64(height)/2, mx-float64(width)/2)
}

// ShipSprite draws the ship as a triangle pointing along its rotation, with
// an exhaust flame while the main engine fires.
type ShipSprite struct {
	Color      color.RGBA
	FlameColor color.RGBA
}

func (s *ShipSprite) Start(obj *engine.GameObject) {
	if s.Color == (color.RGBA{}) {
		s.Color = color.RGBA{R: 210, G: 215, B: 225, A: 255}
	}
	if s.FlameColor == (color.RGBA{}) {
		s.FlameColor = color.RGBA{R: 255, G: 160, B: 40, A: 255}
	}
}

func (s *ShipSprite) Draw(obj *engine.GameObject, canvas *engine.Canvas) {
	tr := obj.Transform()

	hull := []geom.Vec2{
		{X: 22, Y: 0},
		{X: -16, Y: 14},
		{X: -16, Y: -14},
	}
	fillPolygon(canvas.Screen, projectShape(hull, tr, canvas), s.Color)

	thruster := engine.Get[Thruster](obj)
	if thruster != nil && thruster.Back > 0 {
		flame := []geom.Vec2{
			{X: -16, Y: 7},
			{X: -16, Y: -7},
			{X: -30, Y: 0},
		}
		fillPolygon(canvas.Screen, projectShape(flame, tr, canvas), s.FlameColor)
	}
}

func projectShape(points []geom.Vec2, tr *engine.Transform, canvas *engine.Canvas) []geom.Vec2 {
	out := make([]geom.Vec2, len(points))
	for i, p := range points {
		w := p.Rotate(tr.Rotation).Add(tr.Pos)
		x, y := canvas.Project(w.X, w.Y)
		out[i] = geom.Vec2{X: x, Y: y}
	}
	return out
}
