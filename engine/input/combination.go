package input

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCombination is returned when a key combination string cannot be parsed.
var ErrInvalidCombination = errors.New("invalid key combination")

// KeyCombination is a physical key code plus an optional required modifier set.
// Values are immutable and compare structurally with ==.
type KeyCombination struct {
	// Code is the physical key code, e.g. "ArrowUp" or "KeyW".
	Code string

	// Modifier is the set of modifiers that must be held. ModNone places no requirement.
	Modifier Modifier
}

// NewKeyCombination creates a KeyCombination for the given code and required modifiers.
//
// Parameters:
//   - code: the physical key code
//   - mods: modifiers that must all be held for the combination to match
//
// Returns:
//   - KeyCombination: the combination value
func NewKeyCombination(code string, mods ...Modifier) KeyCombination {
	var m Modifier
	for _, mod := range mods {
		m = m.With(mod)
	}
	return KeyCombination{Code: code, Modifier: m}
}

// Matches reports whether the event's key code equals the combination's code and
// every required modifier is held. Extra held modifiers do not prevent a match.
func (kc KeyCombination) Matches(evt *Event) bool {
	if evt == nil || kc.Code == "" {
		return false
	}
	return evt.Code == kc.Code && evt.Modifiers.Has(kc.Modifier)
}

// String renders the combination as "Alt+KeyW", or just the code when no modifier is required.
func (kc KeyCombination) String() string {
	if kc.Modifier == ModNone {
		return kc.Code
	}
	return kc.Modifier.String() + "+" + kc.Code
}

// ParseCombination parses notation like "Alt+ArrowUp", "ctrl+shift+KeyS" or "PageUp".
// The last "+"-separated part is the key code; all preceding parts must be modifier names.
//
// Parameters:
//   - s: the combination string
//
// Returns:
//   - KeyCombination: the parsed combination
//   - error: wraps ErrInvalidCombination if the string is empty or names an unknown modifier
func ParseCombination(s string) (KeyCombination, error) {
	parts := strings.Split(strings.TrimSpace(s), "+")
	code := strings.TrimSpace(parts[len(parts)-1])
	if code == "" {
		return KeyCombination{}, fmt.Errorf("%w: %q has no key code", ErrInvalidCombination, s)
	}

	var mods Modifier
	for _, part := range parts[:len(parts)-1] {
		mod, ok := ModifierFromName(part)
		if !ok {
			return KeyCombination{}, fmt.Errorf("%w: unknown modifier %q in %q", ErrInvalidCombination, part, s)
		}
		mods = mods.With(mod)
	}
	return KeyCombination{Code: code, Modifier: mods}, nil
}

// OneDown reports whether a key-down event matches any of the combinations.
//
// Parameters:
//   - evt: the key-down event
//   - combos: alternative combinations, any one of which suffices
//
// Returns:
//   - bool: true if at least one combination matches
func OneDown(evt *Event, combos ...KeyCombination) bool {
	return oneMatches(evt, combos)
}

// OneUp reports whether a key-up event matches any of the combinations.
// The matching rule is the same as OneDown; only the event stream differs.
//
// Parameters:
//   - evt: the key-up event
//   - combos: alternative combinations, any one of which suffices
//
// Returns:
//   - bool: true if at least one combination matches
func OneUp(evt *Event, combos ...KeyCombination) bool {
	return oneMatches(evt, combos)
}

func oneMatches(evt *Event, combos []KeyCombination) bool {
	for _, kc := range combos {
		if kc.Matches(evt) {
			return true
		}
	}
	return false
}
