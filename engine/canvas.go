package engine

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Canvas is the draw target handed to property Draw hooks. View holds the
// active camera transform; world-anchored drawers run their coordinates
// through Project, screen-space drawers (HUD, menus) use Screen directly.
type Canvas struct {
	Screen *ebiten.Image
	View   ebiten.GeoM
}

// Project maps a world position to screen coordinates.
func (c *Canvas) Project(x, y float64) (float64, float64) {
	return c.View.Apply(x, y)
}
