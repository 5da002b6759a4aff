package engine

// Frame carries per-tick context into property Update hooks.
type Frame struct {
	// DeltaTime is the simulated time step for this tick, in seconds.
	DeltaTime float64
	App       *App
	Scene     *Scene
	Commands  *Commands
}
