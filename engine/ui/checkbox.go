package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/starward/engine"
)

// Checkbox is a labeled toggle. The object's transform marks the top-left
// corner of the box; the label renders to its right.
type Checkbox struct {
	Label    string
	TextSize float64
	Size     float64
	Checked  bool

	Outline   color.RGBA
	Mark      color.RGBA
	TextColor color.RGBA

	// OnToggle fires after the checked state flips.
	OnToggle func(checked bool)

	Pointer Pointer
}

func (c *Checkbox) Start(obj *engine.GameObject) {
	if c.TextSize == 0 {
		c.TextSize = defaultTextSize
	}
	if c.Size == 0 {
		c.Size = 20
	}
	if c.Outline == (color.RGBA{}) {
		c.Outline = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	}
	if c.Mark == (color.RGBA{}) {
		c.Mark = c.Outline
	}
	if c.TextColor == (color.RGBA{}) {
		c.TextColor = c.Outline
	}
	if c.Pointer == nil {
		c.Pointer = Device
	}
}

func (c *Checkbox) Update(obj *engine.GameObject, frame *engine.Frame) {
	if !c.Pointer.JustPressed() {
		return
	}
	mx, my := c.Pointer.Position()
	pos := obj.Transform().Pos
	if float64(mx) < pos.X || float64(mx) > pos.X+c.Size ||
		float64(my) < pos.Y || float64(my) > pos.Y+c.Size {
		return
	}
	c.Checked = !c.Checked
	if c.OnToggle != nil {
		c.OnToggle(c.Checked)
	}
}

func (c *Checkbox) Draw(obj *engine.GameObject, canvas *engine.Canvas) {
	pos := obj.Transform().Pos

	vector.StrokeRect(canvas.Screen,
		float32(pos.X), float32(pos.Y), float32(c.Size), float32(c.Size), 2, c.Outline, false)

	if c.Checked {
		pad := float32(c.Size * 0.25)
		vector.DrawFilledRect(canvas.Screen,
			float32(pos.X)+pad, float32(pos.Y)+pad,
			float32(c.Size)-pad*2, float32(c.Size)-pad*2, c.Mark, false)
	}

	if c.Label != "" {
		_, th := text.Measure(c.Label, Face(c.TextSize), 0)
		op := &text.DrawOptions{}
		op.GeoM.Translate(pos.X+c.Size+10, pos.Y+(c.Size-th)/2)
		op.ColorScale.ScaleWithColor(c.TextColor)
		text.Draw(canvas.Screen, c.Label, Face(c.TextSize), op)
	}
}
