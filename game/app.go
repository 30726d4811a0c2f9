package game

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"orbitcam/physics"
)

const (
	fpsWindow     = 0.5 // seconds between FPS samples
	profileWarmup = 3.0 // seconds of frames before FPS drops count
)

// Stats is a snapshot of the running application
type Stats struct {
	Frames      uint64
	Steps       uint64
	FPS         float64
	SimTime     float64
	Bodies      int
	NonFinite   int
	Momentum    physics.Vector
	VelocitySum physics.Vector
	Paused      bool
	Seed        int64
}

// App owns the simulation and its renderer and turns scheduler
// timestamps into simulation steps.
type App struct {
	config   Config
	seed     int64
	sim      *Simulation
	renderer *Renderer
	clock    FrameClock
	debug    *DebugState
	profiler *Profiler

	paused bool
	frames uint64

	// FPS tracking
	fps        float64
	fpsCounter int
	fpsTimer   float64
	elapsed    float64
}

// NewApp validates config and builds the initial simulation
func NewApp(config Config) (*App, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	app := &App{
		config: config,
		debug:  NewDebugState(),
		fps:    float64(config.TPS),
	}
	app.build()

	return app, nil
}

// build creates a fresh simulation and renderer from the config
func (a *App) build() {
	a.seed = a.config.Seed
	if a.seed == 0 {
		a.seed = time.Now().UnixNano()
	}

	a.sim = NewSimulation(a.config, rand.New(rand.NewSource(a.seed)))
	a.renderer = NewRenderer(
		a.sim.Centre(),
		a.sim.Bodies(),
		physics.Vector{X: a.config.ScreenCentre, Y: a.config.ScreenCentre},
		a.config.ParticleRadius,
	)
}

// SetProfiler attaches a profiler triggered by FPS drops
func (a *App) SetProfiler(p *Profiler) {
	a.profiler = p
}

// Tick handles one scheduler callback. The first call only sets the time
// origin; later calls step the simulation by the elapsed time unless
// paused. Reports whether a step ran.
func (a *App) Tick(timestampMillis float64) bool {
	a.frames++

	delta, ok := a.clock.Advance(timestampMillis)
	if !ok {
		return false
	}
	a.trackFPS(delta)

	if a.paused {
		return false
	}
	a.sim.Step(delta)
	return true
}

// Render draws the current state on sink
func (a *App) Render(sink Sink) {
	a.renderer.Draw(sink)
}

// Frame is one full scheduler callback: tick, then render
func (a *App) Frame(timestampMillis float64, sink Sink) bool {
	stepped := a.Tick(timestampMillis)
	a.Render(sink)
	return stepped
}

// TogglePause pauses or resumes stepping. The clock keeps running so
// resuming does not produce a long delta.
func (a *App) TogglePause() {
	a.paused = !a.paused
}

// Paused reports whether stepping is suspended
func (a *App) Paused() bool {
	return a.paused
}

// StepOnce advances a paused simulation by one nominal frame
func (a *App) StepOnce() bool {
	if !a.paused {
		return false
	}
	a.sim.Step(1 / float64(a.config.TPS))
	return true
}

// Reset rebuilds the simulation from the config
func (a *App) Reset() {
	a.build()
	log.Printf("Simulation reset (seed %d, %d bodies)", a.seed, len(a.sim.Bodies()))
}

// Simulation returns the running simulation
func (a *App) Simulation() *Simulation {
	return a.sim
}

// Renderer returns the renderer
func (a *App) Renderer() *Renderer {
	return a.renderer
}

// Debug returns the display toggles
func (a *App) Debug() *DebugState {
	return a.debug
}

// Config returns the configuration the app was built with
func (a *App) Config() Config {
	return a.config
}

// Stats returns a snapshot for overlays
func (a *App) Stats() Stats {
	return Stats{
		Frames:      a.frames,
		Steps:       a.sim.Steps(),
		FPS:         a.fps,
		SimTime:     a.sim.SimTime(),
		Bodies:      len(a.sim.Bodies()),
		NonFinite:   a.sim.NonFinite(),
		Momentum:    a.sim.TotalMomentum(),
		VelocitySum: physics.VelocitySum(a.sim.Bodies()),
		Paused:      a.paused,
		Seed:        a.seed,
	}
}

// trackFPS samples the frame rate every fpsWindow seconds
func (a *App) trackFPS(delta float64) {
	a.elapsed += delta
	a.fpsTimer += delta
	a.fpsCounter++
	if a.fpsTimer < fpsWindow {
		return
	}

	a.fps = float64(a.fpsCounter) / a.fpsTimer
	a.fpsCounter = 0
	a.fpsTimer = 0

	if a.profiler == nil || a.elapsed < profileWarmup || a.fps >= a.config.MinFPS {
		return
	}
	reason := fmt.Sprintf("fps%.0f-bodies%d", a.fps, len(a.sim.Bodies()))
	if err := a.profiler.CaptureProfile(reason); err == nil {
		log.Printf("FPS drop detected (%.0f FPS), capturing profile", a.fps)
	}
}
