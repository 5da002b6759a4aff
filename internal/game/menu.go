package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"github.com/plus3/starward/engine"
	"github.com/plus3/starward/engine/geom"
	"github.com/plus3/starward/engine/tween"
	"github.com/plus3/starward/engine/ui"
)

type menuState int

const (
	menuMain menuState = iota
	menuControls
	menuOptions
)

const (
	menuSlideDuration = 0.6
	menuButtonSpacing = 10.0
)

// NewMenuScene builds the main menu: a column of buttons that slides aside
// to reveal the controls and options panels.
func NewMenuScene(width, height int) *engine.Scene {
	s := engine.NewScene(SceneMenu)

	s.Spawn("backdrop", &Backdrop{Color: color.RGBA{R: 230, G: 230, B: 230, A: 255}})

	title := s.Spawn("title", &ui.Label{
		Text:     "STARWARD",
		Size:     64,
		Color:    color.RGBA{R: 100, G: 100, B: 100, A: 255},
		Centered: true,
	})
	s.Object(title).Transform().Pos = geom.Vec2{X: float64(width) / 2, Y: float64(height) / 4}

	buttonColor := color.RGBA{R: 100, G: 100, B: 100, A: 255}
	textColor := color.RGBA{R: 170, G: 170, B: 170, A: 255}

	ctrl := &menuController{width: width, height: height}

	makeButton := func(name, label string, hover color.RGBA, onClick func()) engine.Handle {
		return s.Spawn(name, &ui.Button{
			Text:            label,
			Background:      buttonColor,
			HoverBackground: buttonColor,
			TextColor:       textColor,
			HoverTextColor:  hover,
			OnClick:         onClick,
		})
	}

	ctrl.buttons = []engine.Handle{
		makeButton("button-play", "PLAY", color.RGBA{R: 150, G: 250, B: 150, A: 255}, func() { ctrl.clickedPlay = true }),
		makeButton("button-controls", "CONTROLS", color.RGBA{R: 250, G: 250, B: 150, A: 255}, func() { ctrl.toggled = menuControls }),
		makeButton("button-options", "OPTIONS", color.RGBA{R: 150, G: 250, B: 250, A: 255}, func() { ctrl.toggled = menuOptions }),
		makeButton("button-exit", "EXIT", color.RGBA{R: 250, G: 150, B: 150, A: 255}, func() { ctrl.clickedExit = true }),
	}

	controlsText := s.Spawn("controls-text", &ui.Label{
		Text:  "W/S thrust   A/D strafe   mouse aim   ESC menu   Q quit",
		Size:  20,
		Color: color.RGBA{R: 100, G: 100, B: 100, A: 255},
	})
	s.Object(controlsText).Transform().Pos = geom.Vec2{X: menuButtonSpacing * 2, Y: float64(height) / 2}
	s.Object(controlsText).Disable()

	volume := s.Spawn("options-volume", &ui.Slider{Value: 0.8})
	s.Object(volume).Transform().Pos = geom.Vec2{X: float64(width) - 200, Y: float64(height)/2 - 30}
	s.Object(volume).Disable()

	fullscreen := s.Spawn("options-fullscreen", &ui.Checkbox{
		Label:     "Fullscreen",
		TextColor: color.RGBA{R: 100, G: 100, B: 100, A: 255},
		Outline:   color.RGBA{R: 100, G: 100, B: 100, A: 255},
		OnToggle:  ebiten.SetFullscreen,
	})
	s.Object(fullscreen).Transform().Pos = geom.Vec2{X: float64(width) - 200, Y: float64(height)/2 + 10}
	s.Object(fullscreen).Disable()

	ctrl.panels = map[menuState][]engine.Handle{
		menuControls: {controlsText},
		menuOptions:  {volume, fullscreen},
	}

	s.Spawn("menu-controller", ctrl)

	return s
}

// menuController owns the menu's state machine: which panel is open, where
// each button should sit, and the slide animation between layouts. Click
// handlers only set flags; the controller acts on them during Update, where
// it has frame context.
type menuController struct {
	width, height int

	buttons []engine.Handle
	panels  map[menuState][]engine.Handle

	state   menuState
	slide   *tween.Tween
	sliding bool

	clickedPlay bool
	clickedExit bool
	toggled     menuState
}

func (m *menuController) Start(obj *engine.GameObject) {
	m.slide = tween.New(menuSlideDuration, tween.Smooth)
	m.toggled = menuMain

	// Button sizes are known once their Start hooks have run, which spawn
	// order guarantees happened before this.
	scene := obj.Scene()
	var buttonHeight float64
	if btn := engine.Get[ui.Button](scene.Object(m.buttons[0])); btn != nil {
		buttonHeight = btn.H
	}

	step := buttonHeight + menuButtonSpacing
	centerY := float64(m.height) / 2
	offsets := []float64{-1.5 * step, -0.5 * step, 0.5 * step, 1.5 * step}

	for i, h := range m.buttons {
		scene.Object(h).Transform().Pos = geom.Vec2{
			X: float64(m.width) / 2,
			Y: centerY + offsets[i],
		}
	}
}

func (m *menuController) Update(obj *engine.GameObject, frame *engine.Frame) {
	scene := obj.Scene()

	if m.clickedPlay {
		m.clickedPlay = false
		if err := frame.App.Go(SceneFlight); err != nil {
			log.Error().Err(err).Msg("menu: play transition failed")
		}
	}
	if m.clickedExit {
		m.clickedExit = false
		frame.App.Quit()
	}
	if m.toggled != menuMain {
		next := m.toggled
		m.toggled = menuMain
		if m.state == next {
			m.state = menuMain
		} else {
			m.state = next
		}
		m.slide.Reset()
		m.sliding = true
	}

	for state, handles := range m.panels {
		for _, h := range handles {
			panel := scene.Object(h)
			if panel == nil {
				continue
			}
			if state == m.state {
				panel.Enable()
			} else {
				panel.Disable()
			}
		}
	}

	if !m.sliding {
		return
	}

	m.slide.Advance(frame.DeltaTime)
	for _, h := range m.buttons {
		btnObj := scene.Object(h)
		btn := engine.Get[ui.Button](btnObj)
		if btn == nil {
			continue
		}
		tr := btnObj.Transform()
		tr.Pos.X = tween.Lerp(tr.Pos.X, m.destX(btn), m.slide.Value())
	}
	if m.slide.Done() {
		m.sliding = false
	}
}

// destX returns the button column's horizontal anchor for the active state:
// centered on the main menu, pushed to the far edge while a panel is open.
func (m *menuController) destX(btn *ui.Button) float64 {
	switch m.state {
	case menuControls:
		return float64(m.width) - menuButtonSpacing - btn.W/2
	case menuOptions:
		return menuButtonSpacing + btn.W/2
	default:
		return float64(m.width) / 2
	}
}
