package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/oxy-mapview/engine/controls"
	"github.com/Carmen-Shannon/oxy-mapview/engine/input"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() error: %v", err)
	}

	bindings, err := cfg.Bindings()
	if err != nil {
		t.Fatalf("Bindings() error: %v", err)
	}
	want := controls.DefaultBindings()
	if len(bindings.Raise) != len(want.Raise) || len(bindings.Lower) != len(want.Lower) {
		t.Fatalf("Bindings() = %+v, want %+v", bindings, want)
	}
	for i := range want.Raise {
		if bindings.Raise[i] != want.Raise[i] {
			t.Errorf("Raise[%d] = %v, want %v", i, bindings.Raise[i], want.Raise[i])
		}
	}
	for i := range want.Lower {
		if bindings.Lower[i] != want.Lower[i] {
			t.Errorf("Lower[%d] = %v, want %v", i, bindings.Lower[i], want.Lower[i])
		}
	}
}

func TestParseOverlaysDefaults(t *testing.T) {
	doc := []byte(`
controls:
  speed: 0.5
  bindings:
    raise: ["ctrl+KeyR"]
camera:
  distance: 42
window:
  title: test
`)
	cfg, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if cfg.Controls.Speed != 0.5 {
		t.Errorf("Speed = %v, want 0.5", cfg.Controls.Speed)
	}
	if cfg.Controls.Responsiveness != Default().Controls.Responsiveness {
		t.Errorf("Responsiveness = %v, want default %v", cfg.Controls.Responsiveness, Default().Controls.Responsiveness)
	}
	if cfg.Camera.Distance != 42 || cfg.Window.Title != "test" || cfg.Window.Width != 1280 {
		t.Errorf("unexpected merge result: %+v", cfg)
	}

	bindings, err := cfg.Bindings()
	if err != nil {
		t.Fatalf("Bindings() error: %v", err)
	}
	if len(bindings.Raise) != 1 || bindings.Raise[0] != input.NewKeyCombination("KeyR", input.ModCtrl) {
		t.Errorf("Raise = %v, want [Ctrl+KeyR]", bindings.Raise)
	}
	if len(bindings.Lower) != 3 {
		t.Errorf("Lower = %v, want the three defaults", bindings.Lower)
	}
}

func TestParseEmptyDocument(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) error: %v", err)
	}
	if cfg.Controls.Speed != Default().Controls.Speed {
		t.Errorf("Speed = %v, want default", cfg.Controls.Speed)
	}
}

func TestParseRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{"negative speed", "controls: {speed: -1}", ErrInvalidConfig},
		{"responsiveness above one", "controls: {responsiveness: 1.5}", ErrInvalidConfig},
		{"softness too large", "controls: {softness: 1}", ErrInvalidConfig},
		{"empty raise list", "controls: {bindings: {raise: []}}", ErrInvalidConfig},
		{"unknown modifier", `controls: {bindings: {lower: ["hyper+KeyS"]}}`, input.ErrInvalidCombination},
		{"missing key code", `controls: {bindings: {raise: ["Alt+"]}}`, input.ErrInvalidCombination},
		{"inverted distance bounds", "camera: {min_distance: 50, max_distance: 10}", ErrInvalidConfig},
		{"zero window width", "window: {width: 0}", ErrInvalidConfig},
		{"negative frame limit", "engine: {frame_limit: -5}", ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.doc, err, tt.wantErr)
			}
		})
	}
}

func TestParseMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("controls: [unclosed")); err == nil {
		t.Error("Parse of malformed YAML should fail")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mapview.yaml")
	if err := os.WriteFile(path, []byte("engine: {profiling: true, frame_limit: 0}\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !cfg.Engine.Profiling || cfg.Engine.FrameLimit != 0 {
		t.Errorf("Engine = %+v, want profiling on and no frame limit", cfg.Engine)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want os.ErrNotExist", err)
	}
}

func TestNewAngleControllerFromConfig(t *testing.T) {
	cfg := Default()
	cfg.Controls.Bindings.Raise = []string{"KeyQ"}

	ac, err := cfg.NewAngleController(nil)
	if err != nil {
		t.Fatalf("NewAngleController error: %v", err)
	}
	if ac.Speed() != cfg.Controls.Speed || ac.Responsiveness() != cfg.Controls.Responsiveness {
		t.Errorf("controller speed/responsiveness = %v/%v, want %v/%v",
			ac.Speed(), ac.Responsiveness(), cfg.Controls.Speed, cfg.Controls.Responsiveness)
	}

	d := input.NewDispatcher()
	ac.Start(controls.NewSession(nil, d))
	d.DispatchKeyDown(input.NewEvent("KeyQ", input.ModNone))
	if up, _ := ac.Holding(); !up {
		t.Error("configured raise binding KeyQ did not register")
	}
}
