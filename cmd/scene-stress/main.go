// Command scene-stress runs a headless scene full of churning objects and
// reports update throughput, timing and memory usage.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/plus3/starward/engine"
	"github.com/plus3/starward/engine/geom"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	objectCount := flag.Int("objects", 10000, "The initial number of objects to create.")
	churn := flag.Int("churn", 50, "Objects despawned and respawned per tick.")
	compactEvery := flag.Int("compact-every", 600, "Ticks between arena compactions, 0 to disable.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting scene stress test...")

	app := engine.New("scene-stress", 1, 1)
	scene := engine.NewScene("stress")
	if err := app.Register(scene); err != nil {
		log.Fatalf("Failed to register scene: %v", err)
	}

	log.Printf("Populating scene with %d objects...\n", *objectCount)
	for i := 0; i < *objectCount; i++ {
		spawnStressObject(scene, i)
	}
	scene.Spawn("churn-controller", &churnController{Rate: *churn})
	log.Println("Population complete.")

	if err := app.Start("stress"); err != nil {
		log.Fatalf("Failed to start scene: %v", err)
	}

	report := &Report{
		Duration:       *duration,
		Objects:        *objectCount,
		Churn:          *churn,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalTicks int64
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			updateStart := time.Now()
			app.Step(float64(deltaTime) / float64(time.Second))
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalTicks++

			if *compactEvery > 0 && totalTicks%int64(*compactEvery) == 0 {
				scene.Compact()
			}
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalTicks = totalTicks
	report.FinalObjects = scene.Len()
	report.SceneStats = scene.Stats()
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

func spawnStressObject(scene *engine.Scene, i int) {
	scene.Spawn(fmt.Sprintf("stress-%d", i),
		&orbiter{Radius: 50 + rand.Float64()*500, Speed: rand.Float64() * 3},
		&wobbler{Amplitude: rand.Float64() * 10, Frequency: 1 + rand.Float64()*5},
	)
}

// orbiter moves its object around the origin.
type orbiter struct {
	Radius float64
	Speed  float64
	angle  float64
}

func (o *orbiter) Update(obj *engine.GameObject, frame *engine.Frame) {
	o.angle += o.Speed * frame.DeltaTime
	obj.Transform().Pos = geom.Vec2{X: o.Radius}.Rotate(o.angle)
}

// wobbler perturbs the object's rotation.
type wobbler struct {
	Amplitude float64
	Frequency float64
	phase     float64
}

func (w *wobbler) Update(obj *engine.GameObject, frame *engine.Frame) {
	w.phase += w.Frequency * frame.DeltaTime
	obj.Transform().Rotation = geom.Vec2{X: w.Amplitude}.Rotate(w.phase).Y
}

// churnController despawns a batch of objects each tick and queues
// replacements, keeping the arena's free list busy.
type churnController struct {
	Rate int
	next int
}

func (c *churnController) Update(obj *engine.GameObject, frame *engine.Frame) {
	scene := frame.Scene

	victims := make([]engine.Handle, 0, c.Rate)
	for other := range scene.Objects() {
		if len(victims) == c.Rate {
			break
		}
		if other == obj {
			continue
		}
		victims = append(victims, other.Handle())
	}

	for _, h := range victims {
		frame.Commands.Despawn(h)
	}
	for i := 0; i < len(victims); i++ {
		c.next++
		n := c.next
		frame.Commands.Defer(func() {
			spawnStressObject(scene, n)
		})
	}
}
