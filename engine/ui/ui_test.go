package ui_test

import (
	"image/color"
	"testing"

	"github.com/plus3/starward/engine"
	"github.com/plus3/starward/engine/geom"
	"github.com/plus3/starward/engine/ui"
	"github.com/stretchr/testify/assert"
)

func rgba(r, g, b, a uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: a}
}

// fakePointer scripts mouse state for widget tests.
type fakePointer struct {
	x, y        int
	pressed     bool
	justPressed bool
}

func (p *fakePointer) Position() (int, int) { return p.x, p.y }
func (p *fakePointer) Pressed() bool        { return p.pressed }
func (p *fakePointer) JustPressed() bool    { return p.justPressed }

func newWidgetScene(t *testing.T) (*engine.App, *engine.Scene) {
	t.Helper()
	app := engine.New("widgets", 640, 480)
	scene := engine.NewScene("widgets")
	assert.NoError(t, app.Register(scene))
	return app, scene
}

func TestButtonClick(t *testing.T) {
	app, scene := newWidgetScene(t)
	pointer := &fakePointer{x: 500, y: 400}

	clicks := 0
	h := scene.Spawn("button", &ui.Button{
		Text:    "PLAY",
		W:       100,
		H:       40,
		Pointer: pointer,
		OnClick: func() { clicks++ },
	})
	scene.Object(h).Transform().Pos = geom.V(100, 100)
	assert.NoError(t, app.Start("widgets"))

	btn := engine.Get[ui.Button](scene.Object(h))

	// Away from the button: no hover, no click.
	pointer.justPressed = true
	app.Step(1.0 / 60)
	assert.False(t, btn.Hovered())
	assert.Equal(t, 0, clicks)

	// Press inside the box.
	pointer.x, pointer.y = 100, 100
	pointer.pressed = true
	app.Step(1.0 / 60)
	assert.True(t, btn.Hovered())
	assert.Equal(t, 1, clicks)

	// Holding without a new press does not re-fire.
	pointer.justPressed = false
	app.Step(1.0 / 60)
	assert.Equal(t, 1, clicks)
}

func TestButtonHitBox(t *testing.T) {
	app, scene := newWidgetScene(t)

	h := scene.Spawn("button", &ui.Button{
		Text:    "X",
		W:       100,
		H:       40,
		Pointer: &fakePointer{},
	})
	scene.Object(h).Transform().Pos = geom.V(100, 100)
	assert.NoError(t, app.Start("widgets"))

	obj := scene.Object(h)
	btn := engine.Get[ui.Button](obj)

	assert.True(t, btn.Contains(obj, 100, 100))
	assert.True(t, btn.Contains(obj, 50, 80))
	assert.True(t, btn.Contains(obj, 150, 120))
	assert.False(t, btn.Contains(obj, 49, 100))
	assert.False(t, btn.Contains(obj, 100, 121))
}

func TestButtonDerivesSizeFromText(t *testing.T) {
	app, scene := newWidgetScene(t)

	h := scene.Spawn("button", &ui.Button{Text: "OPTIONS", Pointer: &fakePointer{}})
	assert.NoError(t, app.Start("widgets"))

	btn := engine.Get[ui.Button](scene.Object(h))
	assert.Greater(t, btn.W, 0.0)
	assert.Greater(t, btn.H, 0.0)
	assert.Greater(t, btn.W, btn.H)
}

func TestSliderDrag(t *testing.T) {
	app, scene := newWidgetScene(t)
	pointer := &fakePointer{}

	var reported []float64
	h := scene.Spawn("slider", &ui.Slider{
		W:        110,
		H:        10,
		Pointer:  pointer,
		OnChange: func(v float64) { reported = append(reported, v) },
	})
	assert.NoError(t, app.Start("widgets"))

	slider := engine.Get[ui.Slider](scene.Object(h))

	// Press the middle of the track: value jumps to the cursor.
	pointer.x, pointer.y = 55, 5
	pointer.pressed = true
	pointer.justPressed = true
	app.Step(1.0 / 60)
	assert.InDelta(t, 0.5, slider.Value, 1e-9)

	// Drag past the end: clamped to 1.
	pointer.justPressed = false
	pointer.x = 300
	app.Step(1.0 / 60)
	assert.Equal(t, 1.0, slider.Value)

	// Released: the cursor no longer moves the value.
	pointer.pressed = false
	pointer.x = 55
	app.Step(1.0 / 60)
	assert.Equal(t, 1.0, slider.Value)

	assert.Equal(t, []float64{0.5, 1.0}, reported)
}

func TestSliderIgnoresPressOutside(t *testing.T) {
	app, scene := newWidgetScene(t)
	pointer := &fakePointer{x: 400, y: 300, pressed: true, justPressed: true}

	h := scene.Spawn("slider", &ui.Slider{W: 110, H: 10, Value: 0.25, Pointer: pointer})
	assert.NoError(t, app.Start("widgets"))

	app.Step(1.0 / 60)
	assert.Equal(t, 0.25, engine.Get[ui.Slider](scene.Object(h)).Value)
}

func TestCheckboxToggle(t *testing.T) {
	app, scene := newWidgetScene(t)
	pointer := &fakePointer{}

	var toggles []bool
	h := scene.Spawn("checkbox", &ui.Checkbox{
		Label:    "Fullscreen",
		Size:     20,
		Pointer:  pointer,
		OnToggle: func(v bool) { toggles = append(toggles, v) },
	})
	assert.NoError(t, app.Start("widgets"))

	box := engine.Get[ui.Checkbox](scene.Object(h))

	// Click inside the box toggles on.
	pointer.x, pointer.y = 10, 10
	pointer.justPressed = true
	app.Step(1.0 / 60)
	assert.True(t, box.Checked)

	// A click outside does nothing.
	pointer.x = 200
	app.Step(1.0 / 60)
	assert.True(t, box.Checked)

	// Back inside toggles off.
	pointer.x = 10
	app.Step(1.0 / 60)
	assert.False(t, box.Checked)

	assert.Equal(t, []bool{true, false}, toggles)
}

func TestMix(t *testing.T) {
	a := rgba(0, 100, 200, 255)
	b := rgba(100, 200, 0, 255)

	assert.Equal(t, a, ui.Mix(a, b, 0))
	assert.Equal(t, b, ui.Mix(a, b, 1))

	mid := ui.Mix(a, b, 0.5)
	assert.Equal(t, rgba(50, 150, 100, 255), mid)

	// t is clamped.
	assert.Equal(t, a, ui.Mix(a, b, -3))
	assert.Equal(t, b, ui.Mix(a, b, 7))
}
