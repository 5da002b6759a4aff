package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"

	"github.com/plus3/starward/engine"
	"github.com/plus3/starward/engine/debugui"
	"github.com/plus3/starward/engine/geom"
	"github.com/plus3/starward/engine/ui"
)

// NewFlightScene builds the playable scene: the player's ship in a derelict
// field, a follow camera and a HUD. With debug set, a hidden debug overlay
// object is included; F3 toggles it.
func NewFlightScene(width, height int, debug bool) *engine.Scene {
	s := engine.NewScene(SceneFlight)

	s.Spawn("backdrop", &Backdrop{Color: color.RGBA{R: 50, G: 50, B: 50, A: 255}})
	s.Spawn("starfield", &Starfield{Seed: 7})

	ship := s.Spawn("ship",
		&Thruster{},
		&Body{},
		&Aim{Width: width, Height: height},
		&ShipSprite{},
	)

	derelict := s.Spawn("derelict", &RectSprite{
		W:     200,
		H:     300,
		Color: color.RGBA{R: 234, G: 255, B: 34, A: 127},
	})
	s.Object(derelict).Transform().Pos = geom.Vec2{X: 300, Y: 300}

	s.Spawn("camera", &CameraRig{
		Target: s.Ref(ship),
		Width:  width,
		Height: height,
	})

	hud := s.Spawn("hud",
		&ui.Label{Size: 18, Color: color.RGBA{R: 200, G: 200, B: 210, A: 255}},
		&hudReadout{Ship: s.Ref(ship)},
	)
	s.Object(hud).Transform().Pos = geom.Vec2{X: 12, Y: float64(height) - 30}

	ctrl := &flightController{}
	if debug {
		overlay := s.Spawn("debug-overlay", debugui.NewOverlay())
		s.Object(overlay).Disable()
		ctrl.overlay = s.Ref(overlay)
	}
	s.Spawn("flight-controller", ctrl)

	return s
}

// hudReadout updates the HUD label with the ship's speed and the tick rate.
type hudReadout struct {
	Ship *engine.ObjectRef
}

func (h *hudReadout) Update(obj *engine.GameObject, frame *engine.Frame) {
	label := engine.Get[ui.Label](obj)
	ship := h.Ship.Object()
	if label == nil || ship == nil {
		return
	}

	body := engine.Get[Body](ship)
	if body == nil {
		return
	}
	label.Text = fmt.Sprintf("SPD %4.0f   TPS %2.0f", body.Speed(), ebiten.ActualTPS())
}

// flightController handles scene-level input: leaving for the menu,
// quitting, and toggling the debug overlay.
type flightController struct {
	overlay *engine.ObjectRef
}

func (f *flightController) Update(obj *engine.GameObject, frame *engine.Frame) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if err := frame.App.Go(SceneMenu); err != nil {
			log.Error().Err(err).Msg("flight: menu transition failed")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		frame.App.Quit()
	}
	if f.overlay != nil && inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		if overlayObj := f.overlay.Object(); overlayObj != nil {
			if overlayObj.Enabled() {
				overlayObj.Disable()
			} else {
				overlayObj.Enable()
			}
		}
	}
}
