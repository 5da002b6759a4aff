package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/plus3/starward/engine"
)

// Label renders a line of text in screen space at the object's transform.
// With Centered set, the transform marks the text center instead of its
// top-left corner.
type Label struct {
	Text     string
	Size     float64
	Color    color.RGBA
	Centered bool
}

// Measure returns the rendered size of the label's text in pixels.
func (l *Label) Measure() (width, height float64) {
	if l.Text == "" {
		return 0, 0
	}
	return text.Measure(l.Text, Face(l.Size), 0)
}

func (l *Label) Draw(obj *engine.GameObject, canvas *engine.Canvas) {
	if l.Text == "" {
		return
	}

	pos := obj.Transform().Pos
	x, y := pos.X, pos.Y
	if l.Centered {
		w, h := l.Measure()
		x -= w / 2
		y -= h / 2
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(l.Color)
	text.Draw(canvas.Screen, l.Text, Face(l.Size), op)
}
