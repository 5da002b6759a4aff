package engine

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// ErrUnknownScene is returned when a scene id was never registered.
var ErrUnknownScene = eris.New("unknown scene id")

// ErrDuplicateScene is returned when registering a scene id twice.
var ErrDuplicateScene = eris.New("scene id already registered")

// FrameOverlay hooks a debug layer into the frame loop. BeginFrame and
// EndFrame bracket the update pass, Draw runs after the scene has rendered.
type FrameOverlay interface {
	BeginFrame()
	EndFrame()
	Draw(screen *ebiten.Image)
	Layout(width, height int)
}

// App owns the scene registry and drives the active scene through the game
// loop. It implements ebiten.Game; Run hands it to ebiten, while Start and
// Step allow driving the loop manually in tests and tools.
type App struct {
	title  string
	width  int
	height int
	log    zerolog.Logger

	scenes  map[string]*Scene
	current *Scene

	pending    string
	hasPending bool
	quitting   bool

	overlay FrameOverlay
}

// New creates an App with the given window title and logical screen size.
func New(title string, width, height int) *App {
	return &App{
		title:  title,
		width:  width,
		height: height,
		log:    zerolog.New(os.Stderr).With().Timestamp().Logger(),
		scenes: make(map[string]*Scene),
	}
}

// SetLogger replaces the app logger. Scenes registered afterwards inherit
// it.
func (a *App) SetLogger(log zerolog.Logger) {
	a.log = log
}

// SetOverlay installs a debug overlay, or removes it when nil.
func (a *App) SetOverlay(overlay FrameOverlay) {
	a.overlay = overlay
}

// Size returns the logical screen size.
func (a *App) Size() (width, height int) {
	return a.width, a.height
}

// Register adds a scene to the registry under its id.
func (a *App) Register(s *Scene) error {
	if _, ok := a.scenes[s.id]; ok {
		return eris.Wrapf(ErrDuplicateScene, "register %q", s.id)
	}
	s.log = a.log.With().Str("scene", s.id).Logger()
	a.scenes[s.id] = s
	return nil
}

// Current returns the active scene, nil before Start.
func (a *App) Current() *Scene {
	return a.current
}

// Go requests a transition to the scene with the given id. The switch
// happens at the start of the next tick: the current scene finishes, then
// the target starts. Safe to call from inside an update pass.
func (a *App) Go(id string) error {
	if _, ok := a.scenes[id]; !ok {
		return eris.Wrapf(ErrUnknownScene, "go %q", id)
	}
	a.pending = id
	a.hasPending = true
	return nil
}

// Quit requests a clean shutdown at the end of the current tick.
func (a *App) Quit() {
	a.quitting = true
}

// Start activates the initial scene without entering the game loop.
func (a *App) Start(id string) error {
	s, ok := a.scenes[id]
	if !ok {
		return eris.Wrapf(ErrUnknownScene, "start %q", id)
	}
	a.current = s
	s.start()
	return nil
}

// Step advances the active scene by dt seconds, applying any pending scene
// transition first. It is the core of Update, split out so tests and
// headless tools can drive the loop directly.
func (a *App) Step(dt float64) {
	if a.hasPending {
		next := a.scenes[a.pending]
		a.hasPending = false
		if a.current != nil {
			a.current.finish()
		}
		a.log.Info().Str("to", next.id).Msg("scene transition")
		a.current = next
		next.start()
	}

	if a.current == nil {
		return
	}

	frame := &Frame{
		DeltaTime: dt,
		App:       a,
		Scene:     a.current,
		Commands:  a.current.commands,
	}
	a.current.update(frame)
}

// Update implements ebiten.Game.
func (a *App) Update() error {
	if a.quitting {
		return ebiten.Termination
	}

	if a.overlay != nil {
		a.overlay.BeginFrame()
	}
	a.Step(1 / float64(ebiten.TPS()))
	if a.overlay != nil {
		a.overlay.EndFrame()
	}
	return nil
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	if a.current != nil {
		canvas := &Canvas{Screen: screen, View: a.current.view}
		a.current.draw(canvas)
	}
	if a.overlay != nil {
		a.overlay.Draw(screen)
	}
}

// Layout implements ebiten.Game.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if a.overlay != nil {
		a.overlay.Layout(outsideWidth, outsideHeight)
	}
	return a.width, a.height
}

// Run starts the initial scene and hands the app to ebiten. It blocks until
// Quit is called or the window closes, then finishes the active scene.
func (a *App) Run(startID string) error {
	if err := a.Start(startID); err != nil {
		return err
	}

	ebiten.SetWindowTitle(a.title)

	err := ebiten.RunGame(a)
	if a.current != nil {
		a.current.finish()
	}
	if err != nil {
		return eris.Wrap(err, "game loop")
	}
	return nil
}
