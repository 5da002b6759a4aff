package engine

import (
	"iter"
	"reflect"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// Scene is a container of game objects with its own lifecycle. Scenes are
// registered with an App under a unique id; the App keeps exactly one scene
// active at a time.
type Scene struct {
	id       string
	log      zerolog.Logger
	objects  *arena
	order    []Handle // spawn order
	commands *Commands
	stats    *sceneStats
	view     ebiten.GeoM
	started  bool
}

// NewScene creates an empty scene with the given id. The scene logs nothing
// until it is registered with an App.
func NewScene(id string) *Scene {
	return &Scene{
		id:       id,
		log:      zerolog.Nop(),
		objects:  newArena(),
		commands: &Commands{},
		stats:    newSceneStats(),
	}
}

// ID returns the scene's registration id.
func (s *Scene) ID() string { return s.id }

// Started reports whether the scene is currently active.
func (s *Scene) Started() bool { return s.started }

// Spawn creates a game object with the given properties attached in order.
// A Transform is attached automatically when props does not include one.
// Spawn panics on duplicate property types; that is always a programming
// error at the call site.
//
// When the scene is active, Start hooks run immediately. Calling Spawn from
// inside an update pass is not safe; use Frame.Commands instead.
func (s *Scene) Spawn(name string, props ...Property) Handle {
	handle, obj := s.objects.alloc()
	*obj = GameObject{
		name:    name,
		uid:     uuid.New(),
		handle:  handle,
		scene:   s,
		enabled: true,
		byType:  make(map[reflect.Type]Property),
	}

	for _, p := range props {
		if err := obj.Attach(p); err != nil {
			panic(err)
		}
	}
	if !Has[Transform](obj) {
		if err := obj.Attach(&Transform{}); err != nil {
			panic(err)
		}
	}

	s.order = append(s.order, handle)

	if s.started {
		for p := range obj.Properties() {
			if starter, ok := p.(Starter); ok {
				starter.Start(obj)
			}
		}
	}

	return handle
}

// Despawn removes an object from the scene. In an active scene the Finish
// hooks of its properties run first. Reports whether the handle was live.
// Calling Despawn from inside an update pass is not safe; use Frame.Commands
// instead.
func (s *Scene) Despawn(h Handle) bool {
	obj := s.objects.get(h)
	if obj == nil {
		return false
	}

	if s.started {
		for p := range obj.Properties() {
			if finisher, ok := p.(Finisher); ok {
				finisher.Finish(obj)
			}
		}
	}

	if !s.objects.free(h) {
		return false
	}

	if i := slices.Index(s.order, h); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
	return true
}

// Object returns the object behind the handle, or nil when the handle is
// stale. The pointer is only valid until the next Compact.
func (s *Scene) Object(h Handle) *GameObject {
	return s.objects.get(h)
}

// Ref returns a stable reference to the object, or nil when the handle is
// stale. Refs survive Compact and resolve to nil after despawn.
func (s *Scene) Ref(h Handle) *ObjectRef {
	return s.objects.ref(h, s)
}

// Objects iterates over live objects in spawn order.
func (s *Scene) Objects() iter.Seq[*GameObject] {
	return func(yield func(*GameObject) bool) {
		for _, h := range s.order {
			obj := s.objects.get(h)
			if obj == nil {
				continue
			}
			if !yield(obj) {
				return
			}
		}
	}
}

// Len returns the number of live objects in the scene.
func (s *Scene) Len() int { return s.objects.len() }

// SetView installs the camera transform used for world-space drawing this
// frame. Typically called from a camera property's Update.
func (s *Scene) SetView(view ebiten.GeoM) { s.view = view }

// View returns the current camera transform. The zero GeoM is identity, so
// scenes without a camera draw in screen space.
func (s *Scene) View() ebiten.GeoM { return s.view }

// Stats returns a snapshot of property update timing for this scene.
func (s *Scene) Stats() *StatsReport {
	return s.stats.report(s.objects.len())
}

// Commands returns the scene's deferred command buffer. It is exposed for
// tests and tools; game code receives it through Frame.Commands.
func (s *Scene) Commands() *Commands { return s.commands }

// Compact reorganizes object storage to remove fragmentation left by
// despawns. Raw handles and object pointers taken before the call become
// stale; ObjectRefs stay valid. Returns the old-to-new handle mapping.
func (s *Scene) Compact() map[Handle]Handle {
	remap := s.objects.compact()
	for i, h := range s.order {
		if nh, ok := remap[h]; ok {
			s.order[i] = nh
		}
	}
	return remap
}

// start activates the scene: Start hooks run for every property of every
// object in spawn order, then any commands queued by those hooks flush.
func (s *Scene) start() {
	s.started = true
	for obj := range s.Objects() {
		for p := range obj.Properties() {
			if starter, ok := p.(Starter); ok {
				starter.Start(obj)
			}
		}
	}
	s.commands.flush(s)
	s.log.Info().Int("objects", s.Len()).Msg("scene started")
}

// finish deactivates the scene. Finish hooks run in spawn order; objects
// stay in the scene and keep their state for the next activation.
func (s *Scene) finish() {
	for obj := range s.Objects() {
		for p := range obj.Properties() {
			if finisher, ok := p.(Finisher); ok {
				finisher.Finish(obj)
			}
		}
	}
	s.started = false
	s.log.Info().Msg("scene finished")
}

// update runs one simulation tick: Update hooks of every enabled object in
// spawn order, properties in attach order, then the command buffer flushes.
func (s *Scene) update(frame *Frame) {
	for obj := range s.Objects() {
		if !obj.enabled {
			continue
		}
		for p := range obj.Properties() {
			updater, ok := p.(Updater)
			if !ok {
				continue
			}
			start := time.Now()
			updater.Update(obj, frame)
			s.stats.record(propertyType(p), time.Since(start))
		}
	}
	s.commands.flush(s)
}

// draw renders every enabled object in spawn order, properties in attach
// order.
func (s *Scene) draw(canvas *Canvas) {
	for obj := range s.Objects() {
		if !obj.enabled {
			continue
		}
		for p := range obj.Properties() {
			if drawer, ok := p.(Drawer); ok {
				drawer.Draw(obj, canvas)
			}
		}
	}
}
