package profiler

import (
	"bytes"
	"log"
	"strings"
	"testing"
	"time"
)

func TestTickLogsAfterInterval(t *testing.T) {
	var buf bytes.Buffer
	clock := time.Unix(0, 0)
	p := NewProfiler(
		WithInterval(time.Second),
		WithLogger(log.New(&buf, "", 0)),
		WithStatus(func() string { return "pitch 12.0°" }),
	)
	p.now = func() time.Time { return clock }
	p.lastTime = clock

	for i := 0; i < 49; i++ {
		clock = clock.Add(20 * time.Millisecond)
		if p.Tick() {
			t.Fatalf("Tick %d logged before the interval elapsed", i)
		}
	}
	clock = clock.Add(20 * time.Millisecond)
	if !p.Tick() {
		t.Fatal("Tick should log once the interval elapsed")
	}

	out := buf.String()
	if !strings.HasPrefix(out, "[Profiler] FPS: 50.00") {
		t.Errorf("log line = %q, want FPS 50.00", out)
	}
	if !strings.Contains(out, "pitch 12.0°") {
		t.Errorf("log line = %q, want status suffix", out)
	}
}
