package engine_test

import (
	"github.com/plus3/starward/engine"
)

// Common test property types

type Health struct {
	Current int
	Max     int
}

type Tag struct {
	Value string
}

// Counter increments on every update.
type Counter struct {
	Ticks int
}

func (c *Counter) Update(obj *engine.GameObject, frame *engine.Frame) {
	c.Ticks++
}

// Mover translates the object's transform every update.
type Mover struct {
	DX, DY float64
}

func (m *Mover) Update(obj *engine.GameObject, frame *engine.Frame) {
	tr := obj.Transform()
	tr.Pos.X += m.DX * frame.DeltaTime
	tr.Pos.Y += m.DY * frame.DeltaTime
}

// Lifecycle appends hook invocations to a shared log.
type Lifecycle struct {
	Name string
	Log  *[]string
}

func (l *Lifecycle) Start(obj *engine.GameObject) {
	*l.Log = append(*l.Log, l.Name+":start")
}

func (l *Lifecycle) Update(obj *engine.GameObject, frame *engine.Frame) {
	*l.Log = append(*l.Log, l.Name+":update")
}

func (l *Lifecycle) Finish(obj *engine.GameObject) {
	*l.Log = append(*l.Log, l.Name+":finish")
}

// Script runs an arbitrary function each update.
type Script struct {
	Fn func(obj *engine.GameObject, frame *engine.Frame)
}

func (s *Script) Update(obj *engine.GameObject, frame *engine.Frame) {
	if s.Fn != nil {
		s.Fn(obj, frame)
	}
}
