// Package ebiten provides Dear ImGui backend integration for the Ebiten
// game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend. It satisfies
// the app's FrameOverlay interface, so installing it brackets every update
// pass in an ImGui frame and draws the overlay after the scene.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// Layout adapts the backend's ebiten.Game Layout signature to the
// FrameOverlay interface; the app supplies its own logical size.
func (b *ImguiBackend) Layout(width, height int) {
	b.EbitenBackend.Layout(width, height)
}
