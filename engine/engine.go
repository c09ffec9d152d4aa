package engine

import (
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-mapview/engine/profiler"
	"github.com/Carmen-Shannon/oxy-mapview/engine/window"
)

// engine implements the Engine interface.
// Frames are driven from the window's message loop so input callbacks and
// per-frame updates run on one thread without locking.
type engine struct {
	window window.Window

	quitOnce sync.Once

	profiler         *profiler.Profiler
	profilingEnabled bool

	tickCallback func(deltaTime float64)

	frameLimit   time.Duration // minimum frame duration; 0 = uncapped
	maxDeltaTime time.Duration // upper bound on the delta passed to callbacks; 0 = unbounded

	lastFrame time.Time
	now       func() time.Time
	sleep     func(time.Duration)
}

// Engine drives per-frame updates for a window.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickCallback registers the function called once per frame, after input events
	// for that frame have been delivered.
	//
	// Parameters:
	//   - callback: function receiving the elapsed time since the previous frame in seconds
	SetTickCallback(callback func(deltaTime float64))

	// SetFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the loop.
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetFrameLimit(fps float64)

	// Run starts the frame loop on the calling goroutine (blocks until the window closes).
	Run()

	// Quit asks the frame loop to stop after the current frame.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine for the given window.
//
// Parameters:
//   - w: the window whose message loop drives frames
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(w window.Window, options ...EngineBuilderOption) Engine {
	e := &engine{
		window:       w,
		maxDeltaTime: 250 * time.Millisecond,
		now:          time.Now,
		sleep:        time.Sleep,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.profiler == nil {
		e.profiler = profiler.NewProfiler()
	}
	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Run() {
	e.lastFrame = e.now()
	e.window.SetUpdateCallback(e.frame)
	e.window.ProcessMessages()
	e.window.SetUpdateCallback(nil)
}

func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		e.window.RequestClose()
	})
}

// frame runs one iteration: measure the delta, tick, profile, then sleep off any frame budget left.
func (e *engine) frame() {
	start := e.now()
	dt := start.Sub(e.lastFrame)
	e.lastFrame = start
	if dt < 0 {
		dt = 0
	}
	if e.maxDeltaTime > 0 && dt > e.maxDeltaTime {
		dt = e.maxDeltaTime
	}

	if e.tickCallback != nil {
		e.tickCallback(dt.Seconds())
	}

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick()
	}

	if e.frameLimit > 0 {
		if remaining := e.frameLimit - e.now().Sub(start); remaining > 0 {
			e.sleep(remaining)
		}
	}
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) SetTickCallback(callback func(deltaTime float64)) {
	e.tickCallback = callback
}

func (e *engine) SetFrameLimit(fps float64) {
	e.frameLimit = frameDuration(fps)
}

func frameDuration(fps float64) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}
