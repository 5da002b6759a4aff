package game_test

import (
	"testing"

	"github.com/plus3/starward/engine"
	"github.com/plus3/starward/engine/ui"
	"github.com/plus3/starward/internal/game"
	"github.com/stretchr/testify/assert"
)

func TestMenuSceneLayout(t *testing.T) {
	app := engine.New("test", 1280, 720)
	scene := game.NewMenuScene(1280, 720)
	assert.NoError(t, app.Register(scene))
	assert.NoError(t, app.Start(game.SceneMenu))

	var buttons []*engine.GameObject
	for obj := range scene.Objects() {
		if engine.Has[ui.Button](obj) {
			buttons = append(buttons, obj)
		}
	}
	assert.Len(t, buttons, 4)

	// Buttons stack in a centered column, top to bottom.
	lastY := -1.0
	for _, obj := range buttons {
		pos := obj.Transform().Pos
		assert.Equal(t, 640.0, pos.X)
		assert.Greater(t, pos.Y, lastY)
		lastY = pos.Y
	}
}

func TestMenuScenePanelsStartHidden(t *testing.T) {
	app := engine.New("test", 1280, 720)
	scene := game.NewMenuScene(1280, 720)
	assert.NoError(t, app.Register(scene))
	assert.NoError(t, app.Start(game.SceneMenu))

	var sliders, checkboxes int
	for obj := range scene.Objects() {
		if engine.Has[ui.Slider](obj) {
			sliders++
			assert.False(t, obj.Enabled())
		}
		if engine.Has[ui.Checkbox](obj) {
			checkboxes++
			assert.False(t, obj.Enabled())
		}
	}
	assert.Equal(t, 1, sliders)
	assert.Equal(t, 1, checkboxes)
}

func TestFlightSceneSetup(t *testing.T) {
	app := engine.New("test", 1280, 720)
	scene := game.NewFlightScene(1280, 720, false)
	assert.NoError(t, app.Register(scene))
	assert.NoError(t, app.Start(game.SceneFlight))

	var ship *engine.GameObject
	var rig *game.CameraRig
	for obj := range scene.Objects() {
		if engine.Has[game.Body](obj) {
			ship = obj
		}
		if c := engine.Get[game.CameraRig](obj); c != nil {
			rig = c
		}
	}

	assert.NotNil(t, ship)
	assert.True(t, engine.Has[game.Thruster](ship))
	assert.True(t, engine.Has[game.Aim](ship))
	assert.True(t, engine.Has[game.ShipSprite](ship))

	assert.NotNil(t, rig)
	assert.True(t, rig.Target.Alive())
	assert.Same(t, ship, rig.Target.Object())
	assert.InDelta(t, 1/1.5, rig.MinZoom, 1e-12)
}

func TestFlightSceneWithoutDebugHasNoOverlay(t *testing.T) {
	scene := game.NewFlightScene(1280, 720, false)

	for obj := range scene.Objects() {
		assert.NotEqual(t, "debug-overlay", obj.Name())
	}
}
