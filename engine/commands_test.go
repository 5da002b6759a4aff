package engine_test

import (
	"testing"

	"github.com/plus3/starward/engine"
	"github.com/stretchr/testify/assert"
)

func TestCommandsSpawnIsDeferred(t *testing.T) {
	app, scene := newStartedScene(t, "test")

	scene.Spawn("spawner", &Script{Fn: func(obj *engine.GameObject, frame *engine.Frame) {
		if frame.Scene.Len() == 1 {
			frame.Commands.Spawn("child", &Health{Current: 10})
		}
	}})

	assert.Equal(t, 1, scene.Len())
	app.Step(1.0 / 60)
	assert.Equal(t, 2, scene.Len())

	var names []string
	for obj := range scene.Objects() {
		names = append(names, obj.Name())
	}
	assert.Equal(t, []string{"spawner", "child"}, names)
}

func TestCommandsSpawnRunsStartHooks(t *testing.T) {
	var log []string
	app, scene := newStartedScene(t, "test")

	spawned := false
	scene.Spawn("spawner", &Script{Fn: func(obj *engine.GameObject, frame *engine.Frame) {
		if !spawned {
			spawned = true
			frame.Commands.Spawn("child", &Lifecycle{Name: "child", Log: &log})
		}
	}})

	app.Step(1.0 / 60)
	assert.Equal(t, []string{"child:start"}, log)
}

func TestCommandsDespawn(t *testing.T) {
	app, scene := newStartedScene(t, "test")

	victim := scene.Spawn("victim", &Counter{})
	scene.Spawn("killer", &Script{Fn: func(obj *engine.GameObject, frame *engine.Frame) {
		frame.Commands.Despawn(victim)
	}})

	app.Step(1.0 / 60)

	assert.Nil(t, scene.Object(victim))
	assert.Equal(t, 1, scene.Len())
}

func TestCommandsAttachDetach(t *testing.T) {
	app, scene := newStartedScene(t, "test")

	target := scene.Spawn("target", &Health{Current: 5})
	done := false
	scene.Spawn("mutator", &Script{Fn: func(obj *engine.GameObject, frame *engine.Frame) {
		if !done {
			done = true
			frame.Commands.Attach(target, &Tag{Value: "marked"})
			engine.Detach[Health](frame.Commands, target)
		}
	}})

	app.Step(1.0 / 60)

	obj := scene.Object(target)
	assert.True(t, engine.Has[Tag](obj))
	assert.False(t, engine.Has[Health](obj))
}

func TestCommandsDespawnWinsOverAttach(t *testing.T) {
	app, scene := newStartedScene(t, "test")

	target := scene.Spawn("target")
	scene.Spawn("mutator", &Script{Fn: func(obj *engine.GameObject, frame *engine.Frame) {
		frame.Commands.Attach(target, &Tag{Value: "too late"})
		frame.Commands.Despawn(target)
	}})

	app.Step(1.0 / 60)
	assert.Nil(t, scene.Object(target))
}

func TestCommandsDeferredAttachRunsStartHook(t *testing.T) {
	var log []string
	app, scene := newStartedScene(t, "test")

	target := scene.Spawn("target")
	done := false
	scene.Spawn("mutator", &Script{Fn: func(obj *engine.GameObject, frame *engine.Frame) {
		if !done {
			done = true
			frame.Commands.Attach(target, &Lifecycle{Name: "late", Log: &log})
		}
	}})

	// The attach lands at flush, after the update pass, so the property is
	// started this frame and first updated the next.
	app.Step(1.0 / 60)
	assert.Equal(t, []string{"late:start"}, log)

	app.Step(1.0 / 60)
	assert.Equal(t, []string{"late:start", "late:update"}, log)
}

func TestCommandsDeferredDetachRunsFinishHook(t *testing.T) {
	var log []string
	app, scene := newStartedScene(t, "test")

	target := scene.Spawn("target", &Lifecycle{Name: "late", Log: &log})
	done := false
	scene.Spawn("mutator", &Script{Fn: func(obj *engine.GameObject, frame *engine.Frame) {
		if !done {
			done = true
			engine.Detach[Lifecycle](frame.Commands, target)
		}
	}})

	app.Step(1.0 / 60)

	assert.Equal(t, []string{"late:start", "late:update", "late:finish"}, log)
	assert.False(t, engine.Has[Lifecycle](scene.Object(target)))
}

func TestCommandsQueuedDuringFlushAreApplied(t *testing.T) {
	app, scene := newStartedScene(t, "test")

	done := false
	scene.Spawn("spawner", &Script{Fn: func(obj *engine.GameObject, frame *engine.Frame) {
		if !done {
			done = true
			frame.Commands.Spawn("child", &chainSpawner{Child: "grandchild"})
		}
	}})

	// The child's Start hook queues the grandchild while the buffer is
	// already flushing; it must still land this frame.
	app.Step(1.0 / 60)

	var names []string
	for obj := range scene.Objects() {
		names = append(names, obj.Name())
	}
	assert.Equal(t, []string{"spawner", "child", "grandchild"}, names)
}

func TestCommandsDuplicateAttachIsDropped(t *testing.T) {
	app, scene := newStartedScene(t, "test")

	target := scene.Spawn("target", &Health{Current: 42})
	scene.Spawn("mutator", &Script{Fn: func(obj *engine.GameObject, frame *engine.Frame) {
		frame.Commands.Attach(target, &Health{Current: 1})
	}})

	// The duplicate attach is logged and skipped, not fatal.
	app.Step(1.0 / 60)
	assert.Equal(t, 42, engine.Get[Health](scene.Object(target)).Current)
}

func TestCommandsDefer(t *testing.T) {
	app, scene := newStartedScene(t, "test")

	var order []string
	done := false
	scene.Spawn("actor", &Script{Fn: func(obj *engine.GameObject, frame *engine.Frame) {
		if done {
			return
		}
		done = true
		frame.Commands.Defer(func() {
			// Structural commands from the same frame land first.
			order = append(order, "deferred")
			assert.Equal(t, 2, frame.Scene.Len())
		})
		frame.Commands.Spawn("child")
	}})

	app.Step(1.0 / 60)
	assert.Equal(t, []string{"deferred"}, order)
}

// chainSpawner queues another spawn from its own Start hook, feeding the
// command buffer while it is being flushed.
type chainSpawner struct {
	Child string
}

func (c *chainSpawner) Start(obj *engine.GameObject) {
	if c.Child != "" {
		obj.Scene().Commands().Spawn(c.Child)
	}
}
