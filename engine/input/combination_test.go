package input

import (
	"errors"
	"testing"
)

func TestKeyCombinationMatches(t *testing.T) {
	tests := []struct {
		name  string
		combo KeyCombination
		code  string
		mods  Modifier
		want  bool
	}{
		{"plain key no modifiers", NewKeyCombination("PageUp"), "PageUp", ModNone, true},
		{"plain key ignores held modifiers", NewKeyCombination("PageUp"), "PageUp", ModAlt | ModShift, true},
		{"required modifier held", NewKeyCombination("KeyW", ModAlt), "KeyW", ModAlt, true},
		{"required modifier plus extra", NewKeyCombination("KeyW", ModAlt), "KeyW", ModAlt | ModCtrl, true},
		{"required modifier missing", NewKeyCombination("KeyW", ModAlt), "KeyW", ModNone, false},
		{"wrong modifier held", NewKeyCombination("KeyW", ModAlt), "KeyW", ModCtrl, false},
		{"all of multiple modifiers required", NewKeyCombination("KeyS", ModCtrl, ModShift), "KeyS", ModCtrl, false},
		{"different key", NewKeyCombination("PageUp"), "PageDown", ModNone, false},
		{"unknown key code", NewKeyCombination("PageUp"), "NoSuchKey", ModNone, false},
		{"empty code never matches", KeyCombination{}, "", ModNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.combo.Matches(NewEvent(tt.code, tt.mods)); got != tt.want {
				t.Errorf("%v.Matches(%q, %v) = %v, want %v", tt.combo, tt.code, tt.mods, got, tt.want)
			}
		})
	}
}

func TestKeyCombinationMatchesNilEvent(t *testing.T) {
	if NewKeyCombination("PageUp").Matches(nil) {
		t.Error("Matches(nil) should be false")
	}
}

func TestOneDownOneUp(t *testing.T) {
	combos := []KeyCombination{
		NewKeyCombination("ArrowUp", ModAlt),
		NewKeyCombination("KeyW", ModAlt),
		NewKeyCombination("PageUp"),
	}

	tests := []struct {
		code string
		mods Modifier
		want bool
	}{
		{"PageUp", ModNone, true},
		{"KeyW", ModAlt, true},
		{"ArrowUp", ModAlt, true},
		{"KeyW", ModNone, false},
		{"ArrowUp", ModNone, false},
		{"Enter", ModAlt, false},
	}

	for _, tt := range tests {
		evt := NewEvent(tt.code, tt.mods)
		if got := OneDown(evt, combos...); got != tt.want {
			t.Errorf("OneDown(%q, %v) = %v, want %v", tt.code, tt.mods, got, tt.want)
		}
		if got := OneUp(evt, combos...); got != tt.want {
			t.Errorf("OneUp(%q, %v) = %v, want %v", tt.code, tt.mods, got, tt.want)
		}
	}

	if OneDown(NewEvent("PageUp", ModNone)) {
		t.Error("OneDown with no combinations should be false")
	}
}

func TestParseCombination(t *testing.T) {
	tests := []struct {
		in   string
		want KeyCombination
	}{
		{"PageUp", NewKeyCombination("PageUp")},
		{"Alt+ArrowUp", NewKeyCombination("ArrowUp", ModAlt)},
		{"alt+KeyW", NewKeyCombination("KeyW", ModAlt)},
		{"ctrl+shift+KeyS", NewKeyCombination("KeyS", ModCtrl, ModShift)},
		{" Cmd + KeyQ ", NewKeyCombination("KeyQ", ModMeta)},
	}

	for _, tt := range tests {
		got, err := ParseCombination(tt.in)
		if err != nil {
			t.Errorf("ParseCombination(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCombination(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseCombinationErrors(t *testing.T) {
	for _, in := range []string{"", "   ", "Alt+", "Hyper+KeyW", "Alt++KeyW"} {
		if _, err := ParseCombination(in); !errors.Is(err, ErrInvalidCombination) {
			t.Errorf("ParseCombination(%q) error = %v, want ErrInvalidCombination", in, err)
		}
	}
}

func TestKeyCombinationStringRoundTrip(t *testing.T) {
	for _, kc := range []KeyCombination{
		NewKeyCombination("PageDown"),
		NewKeyCombination("ArrowDown", ModAlt),
		NewKeyCombination("KeyS", ModCtrl, ModAlt, ModShift, ModMeta),
	} {
		parsed, err := ParseCombination(kc.String())
		if err != nil {
			t.Fatalf("ParseCombination(%q) error: %v", kc.String(), err)
		}
		if parsed != kc {
			t.Errorf("round trip of %q = %+v, want %+v", kc.String(), parsed, kc)
		}
	}
}

func TestModifierHas(t *testing.T) {
	tests := []struct {
		mod    Modifier
		check  Modifier
		expect bool
	}{
		{ModNone, ModNone, true},
		{ModAlt, ModNone, true},
		{ModNone, ModCtrl, false},
		{ModCtrl | ModAlt, ModAlt, true},
		{ModCtrl | ModAlt, ModCtrl | ModAlt, true},
		{ModCtrl, ModCtrl | ModAlt, false},
	}

	for _, tt := range tests {
		if got := tt.mod.Has(tt.check); got != tt.expect {
			t.Errorf("Modifier(%d).Has(%d) = %v, want %v", tt.mod, tt.check, got, tt.expect)
		}
	}
}
