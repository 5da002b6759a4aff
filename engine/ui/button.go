package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/starward/engine"
	"github.com/plus3/starward/engine/tween"
)

const (
	buttonPadding    = 1.3
	hoverDuration    = 0.1
	pressDuration    = 0.05
	defaultTextSize  = 24
	pressInsetPixels = 3
)

// Button is a clickable labeled box. The object's transform marks the
// button center. Hovering blends toward the hover colors over a short
// animation that reverses when the cursor leaves; pressing insets the box.
type Button struct {
	Text     string
	TextSize float64

	// W and H are the box size in pixels. When zero, Start derives them
	// from the label size.
	W, H float64

	Background      color.RGBA
	HoverBackground color.RGBA
	TextColor       color.RGBA
	HoverTextColor  color.RGBA

	// OnClick fires when the button is clicked.
	OnClick func()

	// Pointer supplies mouse state, Device when nil.
	Pointer Pointer

	hover   *tween.Tween
	press   *tween.Tween
	hovered bool
}

func (b *Button) Start(obj *engine.GameObject) {
	if b.TextSize == 0 {
		b.TextSize = defaultTextSize
	}
	if b.Pointer == nil {
		b.Pointer = Device
	}
	if b.W == 0 || b.H == 0 {
		w, h := text.Measure(b.Text, Face(b.TextSize), 0)
		if b.W == 0 {
			b.W = w * buttonPadding
		}
		if b.H == 0 {
			b.H = h * buttonPadding
		}
	}
	b.hover = tween.New(hoverDuration, tween.Smooth)
	b.press = tween.New(pressDuration, tween.Smooth)
}

func (b *Button) Update(obj *engine.GameObject, frame *engine.Frame) {
	mx, my := b.Pointer.Position()
	b.hovered = b.Contains(obj, float64(mx), float64(my))

	b.hover.Play(frame.DeltaTime, b.hovered)
	b.press.Play(frame.DeltaTime, b.hovered && b.Pointer.Pressed())

	if b.hovered && b.Pointer.JustPressed() && b.OnClick != nil {
		b.OnClick()
	}
}

func (b *Button) Draw(obj *engine.GameObject, canvas *engine.Canvas) {
	pos := obj.Transform().Pos
	inset := b.press.Value() * pressInsetPixels
	w := b.W - inset*2
	h := b.H - inset*2

	bg := Mix(b.Background, b.HoverBackground, b.hover.Value())
	fg := Mix(b.TextColor, b.HoverTextColor, b.hover.Value())

	vector.DrawFilledRect(canvas.Screen,
		float32(pos.X-w/2), float32(pos.Y-h/2), float32(w), float32(h), bg, false)

	tw, th := text.Measure(b.Text, Face(b.TextSize), 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(pos.X-tw/2, pos.Y-th/2)
	op.ColorScale.ScaleWithColor(fg)
	text.Draw(canvas.Screen, b.Text, Face(b.TextSize), op)
}

// Contains reports whether the screen point lies inside the button box.
func (b *Button) Contains(obj *engine.GameObject, x, y float64) bool {
	pos := obj.Transform().Pos
	return x >= pos.X-b.W/2 && x <= pos.X+b.W/2 &&
		y >= pos.Y-b.H/2 && y <= pos.Y+b.H/2
}

// Hovered reports whether the cursor was over the button last update.
func (b *Button) Hovered() bool { return b.hovered }
