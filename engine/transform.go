package engine

import "github.com/plus3/starward/engine/geom"

// Transform describes an object's placement in 2D space. Every game object
// carries one: Spawn attaches a zero Transform when none is provided.
type Transform struct {
	Pos      geom.Vec2
	Rotation float64 // radians
}
