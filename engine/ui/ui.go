// Package ui provides the widget properties used by menu scenes: labels,
// buttons, sliders and checkboxes. Widgets draw in screen space and read
// the mouse through a small Pointer interface so their behavior is testable
// without a window.
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Pointer reports mouse state to widgets. The package-level Device reads
// the real cursor; tests substitute their own.
type Pointer interface {
	Position() (int, int)
	Pressed() bool
	JustPressed() bool
}

// Device is the default Pointer, backed by the actual mouse.
var Device Pointer = devicePointer{}

type devicePointer struct{}

func (devicePointer) Position() (int, int) {
	return ebiten.CursorPosition()
}

func (devicePointer) Pressed() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func (devicePointer) JustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// Mix blends two colors. t=0 yields a, t=1 yields b.
func Mix(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{
		R: lerp(a.R, b.R),
		G: lerp(a.G, b.G),
		B: lerp(a.B, b.B),
		A: lerp(a.A, b.A),
	}
}
