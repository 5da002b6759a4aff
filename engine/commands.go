package engine

import (
	"reflect"
)

type spawnCommand struct {
	name  string
	props []Property
}

type attachCommand struct {
	target Handle
	prop   Property
}

type detachCommand struct {
	target   Handle
	propType reflect.Type
}

// Commands buffers structural changes requested during an update pass.
// Mutating the object set while it is being iterated would invalidate the
// pass, so spawns, despawns and property changes queue here and apply at
// the end of the frame.
type Commands struct {
	spawns   []spawnCommand
	despawns []Handle
	attaches []attachCommand
	detaches []detachCommand
	deferred []func()
}

// Spawn queues a new object. It becomes visible to iteration next frame.
func (c *Commands) Spawn(name string, props ...Property) {
	c.spawns = append(c.spawns, spawnCommand{name: name, props: props})
}

// Despawn queues removal of an object.
func (c *Commands) Despawn(h Handle) {
	c.despawns = append(c.despawns, h)
}

// Attach queues adding a property to an existing object.
func (c *Commands) Attach(h Handle, prop Property) {
	c.attaches = append(c.attaches, attachCommand{target: h, prop: prop})
}

// Detach queues removal of the property of type T from an object.
func Detach[T any](c *Commands, h Handle) {
	c.detaches = append(c.detaches, detachCommand{target: h, propType: reflect.TypeFor[T]()})
}

// Defer queues an arbitrary function to run after all structural commands
// in this flush have been applied.
func (c *Commands) Defer(fn func()) {
	c.deferred = append(c.deferred, fn)
}

func (c *Commands) pending() bool {
	return len(c.spawns) > 0 || len(c.despawns) > 0 ||
		len(c.attaches) > 0 || len(c.detaches) > 0 || len(c.deferred) > 0
}

// flush applies all queued commands against the scene. Despawns win over
// attaches and detaches targeting the same object in the same batch. In an
// active scene, deferred attaches run the property's Start hook and
// deferred detaches run its Finish hook.
//
// Applying a command can queue further commands, a Start hook spawning a
// child for example. Those form a new batch and flush keeps draining until
// the buffers are empty, so flush will not return while a hook keeps
// queueing unconditionally.
func (c *Commands) flush(s *Scene) {
	for c.pending() {
		spawns := c.spawns
		despawns := c.despawns
		attaches := c.attaches
		detaches := c.detaches
		deferred := c.deferred
		c.spawns = nil
		c.despawns = nil
		c.attaches = nil
		c.detaches = nil
		c.deferred = nil

		despawned := make(map[Handle]struct{}, len(despawns))
		for _, h := range despawns {
			if s.Despawn(h) {
				despawned[h] = struct{}{}
			}
		}

		for _, cmd := range detaches {
			if _, gone := despawned[cmd.target]; gone {
				continue
			}
			obj := s.Object(cmd.target)
			if obj == nil {
				continue
			}
			prop, ok := obj.byType[cmd.propType]
			if !ok {
				continue
			}
			if s.started {
				if finisher, ok := prop.(Finisher); ok {
					finisher.Finish(obj)
				}
			}
			obj.Detach(cmd.propType)
		}

		for _, cmd := range attaches {
			if _, gone := despawned[cmd.target]; gone {
				continue
			}
			obj := s.Object(cmd.target)
			if obj == nil {
				continue
			}
			if err := obj.Attach(cmd.prop); err != nil {
				s.log.Warn().Err(err).Str("object", obj.Name()).Msg("deferred attach failed")
				continue
			}
			if s.started {
				if starter, ok := cmd.prop.(Starter); ok {
					starter.Start(obj)
				}
			}
		}

		for _, cmd := range spawns {
			s.Spawn(cmd.name, cmd.props...)
		}

		for _, fn := range deferred {
			fn()
		}
	}
}
