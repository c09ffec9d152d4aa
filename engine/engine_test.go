package engine

import (
	"math"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-mapview/engine/input"
	"github.com/Carmen-Shannon/oxy-mapview/engine/window"
)

// fakeWindow runs a fixed number of loop iterations, advancing a fake clock before each.
type fakeWindow struct {
	frames   int
	step     time.Duration
	clock    *time.Time
	events   *input.Dispatcher
	onUpdate func()
	closed   bool
	ran      int
}

var _ window.Window = &fakeWindow{}

func (f *fakeWindow) SetUpdateCallback(callback func())                  { f.onUpdate = callback }
func (f *fakeWindow) SetResizeCallback(callback func(width, height int)) {}
func (f *fakeWindow) SetScrollCallback(callback func(delta float64))     {}
func (f *fakeWindow) Input() input.Source                                { return f.events }
func (f *fakeWindow) IsRunning() bool                                    { return !f.closed }
func (f *fakeWindow) RequestClose()                                      { f.closed = true }
func (f *fakeWindow) Close() error                                       { return nil }
func (f *fakeWindow) Width() int                                         { return 800 }
func (f *fakeWindow) Height() int                                        { return 600 }

func (f *fakeWindow) ProcessMessages() {
	for i := 0; i < f.frames && f.IsRunning(); i++ {
		*f.clock = f.clock.Add(f.step)
		if f.onUpdate != nil {
			f.onUpdate()
		}
		f.ran++
	}
}

func newTestEngine(w *fakeWindow, options ...EngineBuilderOption) (*engine, *[]time.Duration) {
	e := NewEngine(w, options...).(*engine)
	e.now = func() time.Time { return *w.clock }
	var slept []time.Duration
	e.sleep = func(d time.Duration) { slept = append(slept, d) }
	return e, &slept
}

func TestRunDeliversElapsedSeconds(t *testing.T) {
	clock := time.Unix(100, 0)
	w := &fakeWindow{frames: 5, step: 20 * time.Millisecond, clock: &clock, events: input.NewDispatcher()}

	var deltas []float64
	e, _ := newTestEngine(w, WithTickCallback(func(dt float64) { deltas = append(deltas, dt) }))
	e.Run()

	if len(deltas) != 5 {
		t.Fatalf("tick count = %d, want 5", len(deltas))
	}
	for i, dt := range deltas {
		if math.Abs(dt-0.02) > 1e-9 {
			t.Errorf("delta[%d] = %v, want 0.02", i, dt)
		}
	}
	if w.onUpdate != nil {
		t.Error("Run should clear the update callback when the loop ends")
	}
}

func TestMaxDeltaTimeBoundsStalls(t *testing.T) {
	clock := time.Unix(100, 0)
	w := &fakeWindow{frames: 1, step: 3 * time.Second, clock: &clock, events: input.NewDispatcher()}

	var got float64
	e, _ := newTestEngine(w, WithMaxDeltaTime(100*time.Millisecond))
	e.SetTickCallback(func(dt float64) { got = dt })
	e.Run()

	if math.Abs(got-0.1) > 1e-9 {
		t.Errorf("delta = %v, want 0.1", got)
	}
}

func TestFrameLimitSleepsRemainder(t *testing.T) {
	clock := time.Unix(100, 0)
	w := &fakeWindow{frames: 2, step: 5 * time.Millisecond, clock: &clock, events: input.NewDispatcher()}

	e, slept := newTestEngine(w, WithFrameLimit(50))
	e.Run()

	if len(*slept) != 2 {
		t.Fatalf("sleep count = %d, want 2", len(*slept))
	}
	for _, d := range *slept {
		if d != 20*time.Millisecond {
			t.Errorf("slept %v, want 20ms", d)
		}
	}

	e.SetFrameLimit(0)
	if e.frameLimit != 0 {
		t.Errorf("frameLimit = %v after SetFrameLimit(0), want 0", e.frameLimit)
	}
}

func TestQuitStopsLoopOnce(t *testing.T) {
	clock := time.Unix(100, 0)
	w := &fakeWindow{frames: 100, step: time.Millisecond, clock: &clock, events: input.NewDispatcher()}

	var e Engine
	ticks := 0
	e, _ = newTestEngine(w, WithTickCallback(func(float64) {
		ticks++
		if ticks == 3 {
			e.Quit()
			e.Quit()
		}
	}))
	e.Run()

	if ticks != 3 || w.ran != 3 {
		t.Errorf("ticks = %d, loop iterations = %d, want 3 and 3", ticks, w.ran)
	}
}
