package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"runtime"

	"github.com/Carmen-Shannon/oxy-mapview/engine"
	"github.com/Carmen-Shannon/oxy-mapview/engine/camera"
	"github.com/Carmen-Shannon/oxy-mapview/engine/config"
	"github.com/Carmen-Shannon/oxy-mapview/engine/controls"
	"github.com/Carmen-Shannon/oxy-mapview/engine/profiler"
	"github.com/Carmen-Shannon/oxy-mapview/engine/window"
)

// zoomStep is the distance factor applied per scroll notch.
const zoomStep = 1.15

func init() {
	// GLFW must be driven from the main OS thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (built-in defaults when empty)")
	flag.Parse()

	logger := log.New(os.Stderr, "", log.LstdFlags)

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	if err := run(cfg, logger); err != nil {
		logger.Fatal(err)
	}
}

func run(cfg *config.Config, logger *log.Logger) error {
	title := cfg.Window.Title
	if title == "" {
		title = "oxy-mapview"
	}
	win, err := window.NewWindow(
		window.WithTitle(title),
		window.WithSize(cfg.Window.Width, cfg.Window.Height),
	)
	if err != nil {
		return err
	}
	defer win.Close()

	cam := camera.NewCamera(
		camera.WithDistanceBounds(cfg.Camera.MinDistance, cfg.Camera.MaxDistance),
		camera.WithDistance(cfg.Camera.Distance),
		camera.WithAngleDegrees(cfg.Camera.AngleDegrees),
	)

	pitch, err := cfg.NewAngleController(logger, controls.WithAngleLimit(camera.MaxAngleForDistance))
	if err != nil {
		return fmt.Errorf("creating pitch controls: %w", err)
	}
	pitch.Start(controls.NewSession(cam, win.Input()))
	defer pitch.Stop()

	win.SetScrollCallback(func(delta float64) {
		cam.SetDistance(cam.Distance() * math.Pow(zoomStep, -delta))
	})

	prof := profiler.NewProfiler(
		profiler.WithLogger(logger),
		profiler.WithStatus(func() string {
			return fmt.Sprintf("Pitch: %.1f° (limit %.1f°) | Distance: %.0f",
				camera.Degrees(cam.Angle()), camera.Degrees(camera.MaxAngleForDistance(cam.Distance())), cam.Distance())
		}),
	)

	eng := engine.NewEngine(win,
		engine.WithProfiling(cfg.Engine.Profiling),
		engine.WithProfiler(prof),
		engine.WithFrameLimit(cfg.Engine.FrameLimit),
		engine.WithTickCallback(func(dt float64) {
			pitch.Update(dt, cam)
		}),
	)
	eng.Run()
	return nil
}
