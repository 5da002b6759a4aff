// Package debugui provides an immediate-mode debug overlay built on Dear
// ImGui: a browser over the active scene's objects, a reflection-based
// property inspector, and update timing panels.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/starward/engine"
)

// Overlay is a property that renders the debug panels each frame. It must
// update inside an ImGui frame, so the app needs an ImGui backend installed
// as its FrameOverlay (see the ebiten subpackage). Disable the owning
// object to hide the panels.
type Overlay struct {
	Browser   ObjectBrowser
	Inspector PropertyInspector
	Perf      PerformanceStats

	timer *FrameTimer

	wantCaptureMouse    bool
	wantCaptureKeyboard bool
}

// NewOverlay creates an overlay with default panel settings.
func NewOverlay() *Overlay {
	return &Overlay{
		Browser: NewObjectBrowser(64),
		Perf:    NewPerformanceStats(120),
	}
}

func (o *Overlay) Start(obj *engine.GameObject) {
	o.timer = NewFrameTimer()
}

func (o *Overlay) Update(obj *engine.GameObject, frame *engine.Frame) {
	io := imgui.CurrentIO()
	o.wantCaptureMouse = io.WantCaptureMouse()
	o.wantCaptureKeyboard = io.WantCaptureKeyboard()

	scene := frame.Scene
	o.Browser.Render(scene)
	o.Inspector.Render(scene, o.Browser.SelectedHandle())
	o.Perf.Render(scene, o.timer.DeltaTime())
}

// CaptureMouse reports whether ImGui is consuming mouse input. Game code
// should skip its own mouse handling while this is true.
func (o *Overlay) CaptureMouse() bool { return o.wantCaptureMouse }

// CaptureKeyboard reports whether ImGui is consuming keyboard input.
func (o *Overlay) CaptureKeyboard() bool { return o.wantCaptureKeyboard }
