// Package app wires the viewer together and runs the frame loop.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/hikesim/internal/assets"
	"github.com/Faultbox/hikesim/internal/config"
	"github.com/Faultbox/hikesim/internal/engine/action"
	"github.com/Faultbox/hikesim/internal/engine/debug"
	"github.com/Faultbox/hikesim/internal/engine/input"
	"github.com/Faultbox/hikesim/internal/engine/marker"
	"github.com/Faultbox/hikesim/internal/engine/renderer"
	"github.com/Faultbox/hikesim/internal/engine/shader"
	"github.com/Faultbox/hikesim/internal/engine/window"
	"github.com/Faultbox/hikesim/internal/logger"
	"github.com/Faultbox/hikesim/internal/sim"
)

// App is the running viewer.
type App struct {
	config   *config.Config
	assets   *assets.Manager
	scene    *Scene
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	shots    *debug.ScreenshotCapture

	state    sim.State
	settings sim.Settings
	running  bool
	log      *zap.Logger
}

// New loads all assets, opens the window and uploads the scene.
// Every error is fatal to startup.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		config:   cfg,
		assets:   assets.NewManager(cfg.Assets.DataDirs...),
		settings: Settings(cfg),
		shots:    debug.NewScreenshotCapture(cfg.Screenshot.Dir, cfg.Screenshot.Prefix),
		log:      logger.Named("app"),
	}

	a.log.Info("initializing viewer",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Strings("data_dirs", a.assets.Dirs()),
	)

	var err error
	a.scene, err = LoadScene(cfg, a.assets)
	if err != nil {
		return nil, err
	}

	a.state, err = InitialState(cfg, a.scene.Path)
	if err != nil {
		return nil, err
	}

	sources, err := shader.LoadSources(a.assets, cfg.Assets.Shaders.Vertex, cfg.Assets.Shaders.Fragment)
	if err != nil {
		return nil, err
	}

	a.input, err = input.New(cfg.Input.Bindings)
	if err != nil {
		return nil, fmt.Errorf("input bindings: %w", err)
	}

	// Create window (this also creates the OpenGL context)
	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, err
	}

	width, height := a.window.GetDrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:       width,
		Height:      height,
		Sources:     sources,
		SkyColor:    renderer.SkyColor,
		PathColor:   renderer.PathColor,
		MarkerColor: mgl32.Vec3(cfg.Marker.Color),
	})
	if err != nil {
		a.Close()
		return nil, err
	}

	if err := a.renderer.Upload(a.scene.Mesh, a.scene.Path, a.scene.Marker); err != nil {
		a.Close()
		return nil, err
	}

	if err := input.CapturePointer(); err != nil {
		a.log.Warn("relative mouse mode unavailable", zap.Error(err))
	}

	a.log.Info("viewer initialized", zap.Stringer("camera", a.state.Camera.Mode))
	return a, nil
}

// Run starts the frame loop and returns when an exit action fires.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	a.log.Info("starting frame loop")

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now

		// 1. Process input
		frame := a.input.Update()
		if frame.Actions.Has(action.Exit) {
			a.running = false
			break
		}
		if frame.Resized {
			a.renderer.Resize(a.window.GetDrawableSize())
		}

		// 2. Update simulation
		a.state = sim.Step(a.state, sim.FrameInput{
			Actions: frame.Actions,
			Pointer: frame.Pointer,
			Elapsed: dt,
		}, a.scene.Path, a.settings)

		// 3. Render
		a.renderer.Draw(a.frame())
		if frame.Actions.Has(action.Screenshot) {
			a.screenshot()
		}

		// 4. Present
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.Duration("dt", dt),
				zap.Float32("progress", a.state.Animation.Progress),
				zap.Float32("rate", a.state.Animation.Rate),
			)
			a.window.SetTitle(fmt.Sprintf("%s - %d FPS", a.config.Window.Title, frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	a.log.Info("frame loop stopped", zap.Uint64("frames", a.state.Frame))
	return nil
}

// frame builds the matrices for the current state.
func (a *App) frame() renderer.Frame {
	width, height := a.renderer.Size()
	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}
	return renderer.Frame{
		View:       a.state.Camera.ViewMatrix(),
		Projection: a.settings.Camera.Projection(aspect),
		Marker:     marker.Transform(a.state.Marker, a.config.Marker.Scale),
	}
}

func (a *App) screenshot() {
	pixels, width, height := a.renderer.ReadPixels()
	if _, err := a.shots.CaptureFromPixels(pixels, width, height); err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
	}
}

// Close releases GPU, window and asset resources.
func (a *App) Close() {
	a.log.Info("closing viewer")

	if a.renderer != nil {
		a.renderer.Close()
		a.renderer = nil
	}
	if a.window != nil {
		a.window.Close()
		a.window = nil
	}
	if a.assets != nil {
		a.assets.Close()
	}
}
