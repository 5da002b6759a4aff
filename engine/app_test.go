package engine_test

import (
	"testing"

	"github.com/plus3/starward/engine"
	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
)

func TestRegisterDuplicateScene(t *testing.T) {
	app := engine.New("test", 640, 480)

	assert.NoError(t, app.Register(engine.NewScene("menu")))

	err := app.Register(engine.NewScene("menu"))
	assert.Error(t, err)
	assert.True(t, eris.Is(err, engine.ErrDuplicateScene))
}

func TestStartUnknownScene(t *testing.T) {
	app := engine.New("test", 640, 480)

	err := app.Start("nowhere")
	assert.Error(t, err)
	assert.True(t, eris.Is(err, engine.ErrUnknownScene))
	assert.Nil(t, app.Current())
}

func TestGoUnknownScene(t *testing.T) {
	app := engine.New("test", 640, 480)
	assert.NoError(t, app.Register(engine.NewScene("menu")))
	assert.NoError(t, app.Start("menu"))

	err := app.Go("nowhere")
	assert.Error(t, err)
	assert.True(t, eris.Is(err, engine.ErrUnknownScene))

	// The active scene is unchanged, even after a tick.
	app.Step(1.0 / 60)
	assert.Equal(t, "menu", app.Current().ID())
}

func TestSceneTransition(t *testing.T) {
	var log []string

	app := engine.New("test", 640, 480)
	menu := engine.NewScene("menu")
	flight := engine.NewScene("flight")
	assert.NoError(t, app.Register(menu))
	assert.NoError(t, app.Register(flight))

	menu.Spawn("m", &Lifecycle{Name: "menu", Log: &log})
	flight.Spawn("f", &Lifecycle{Name: "flight", Log: &log})

	assert.NoError(t, app.Start("menu"))
	assert.NoError(t, app.Go("flight"))

	// The switch happens at the next tick: menu finishes before flight
	// starts, and only flight updates.
	log = nil
	app.Step(1.0 / 60)
	assert.Equal(t, []string{"menu:finish", "flight:start", "flight:update"}, log)
	assert.Equal(t, "flight", app.Current().ID())
}

func TestTransitionFromUpdate(t *testing.T) {
	app := engine.New("test", 640, 480)
	menu := engine.NewScene("menu")
	flight := engine.NewScene("flight")
	assert.NoError(t, app.Register(menu))
	assert.NoError(t, app.Register(flight))

	menu.Spawn("switcher", &Script{Fn: func(obj *engine.GameObject, frame *engine.Frame) {
		assert.NoError(t, frame.App.Go("flight"))
	}})

	assert.NoError(t, app.Start("menu"))

	app.Step(1.0 / 60)
	assert.Equal(t, "menu", app.Current().ID())
	app.Step(1.0 / 60)
	assert.Equal(t, "flight", app.Current().ID())
}

func TestSceneKeepsStateAcrossVisits(t *testing.T) {
	app := engine.New("test", 640, 480)
	menu := engine.NewScene("menu")
	flight := engine.NewScene("flight")
	assert.NoError(t, app.Register(menu))
	assert.NoError(t, app.Register(flight))

	h := menu.Spawn("counter", &Counter{})

	assert.NoError(t, app.Start("menu"))
	app.Step(1.0 / 60)

	assert.NoError(t, app.Go("flight"))
	app.Step(1.0 / 60)

	assert.NoError(t, app.Go("menu"))
	app.Step(1.0 / 60)

	// Objects survive deactivation, so the counter resumes at 2.
	assert.Equal(t, 2, engine.Get[Counter](menu.Object(h)).Ticks)
}

func TestLastTransitionWins(t *testing.T) {
	var log []string

	app := engine.New("test", 640, 480)
	for _, id := range []string{"a", "b", "c"} {
		s := engine.NewScene(id)
		s.Spawn(id, &Lifecycle{Name: id, Log: &log})
		assert.NoError(t, app.Register(s))
	}

	assert.NoError(t, app.Start("a"))
	assert.NoError(t, app.Go("b"))
	assert.NoError(t, app.Go("c"))

	log = nil
	app.Step(1.0 / 60)
	assert.Equal(t, []string{"a:finish", "c:start", "c:update"}, log)
}

func TestAppSize(t *testing.T) {
	app := engine.New("test", 800, 600)
	w, h := app.Size()
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
}
