package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/starward/engine"
)

// Slider is a horizontal drag control with a value in [0, 1]. The object's
// transform marks the top-left corner of the track.
type Slider struct {
	W, H  float64
	Value float64

	Track color.RGBA
	Knob  color.RGBA

	// OnChange fires whenever dragging moves the value.
	OnChange func(value float64)

	Pointer Pointer

	dragging bool
}

func (s *Slider) Start(obj *engine.GameObject) {
	if s.W == 0 {
		s.W = 160
	}
	if s.H == 0 {
		s.H = 16
	}
	if s.Track == (color.RGBA{}) {
		s.Track = color.RGBA{R: 60, G: 60, B: 70, A: 255}
	}
	if s.Knob == (color.RGBA{}) {
		s.Knob = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	}
	if s.Pointer == nil {
		s.Pointer = Device
	}
}

func (s *Slider) Update(obj *engine.GameObject, frame *engine.Frame) {
	mx, my := s.Pointer.Position()
	pos := obj.Transform().Pos

	inside := float64(mx) >= pos.X && float64(mx) <= pos.X+s.W &&
		float64(my) >= pos.Y && float64(my) <= pos.Y+s.H

	if s.Pointer.JustPressed() && inside {
		s.dragging = true
	}
	if !s.Pointer.Pressed() {
		s.dragging = false
	}

	if !s.dragging {
		return
	}

	// Map the cursor to the knob center's travel range.
	v := (float64(mx) - pos.X - s.H/2) / (s.W - s.H)
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	if v != s.Value {
		s.Value = v
		if s.OnChange != nil {
			s.OnChange(v)
		}
	}
}

func (s *Slider) Draw(obj *engine.GameObject, canvas *engine.Canvas) {
	pos := obj.Transform().Pos

	vector.DrawFilledRect(canvas.Screen,
		float32(pos.X), float32(pos.Y), float32(s.W), float32(s.H), s.Track, false)

	knobX := pos.X + s.Value*(s.W-s.H)
	vector.DrawFilledRect(canvas.Screen,
		float32(knobX), float32(pos.Y), float32(s.H), float32(s.H), s.Knob, false)
}
