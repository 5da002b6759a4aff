// Package game contains the menu and flight scenes of the Starward
// prototype: a spaceship drifting through a derelict field, steered with
// the keyboard and aimed with the mouse.
package game

// Scene ids used with App.Go.
const (
	SceneMenu   = "menu"
	SceneFlight = "flight"
)
