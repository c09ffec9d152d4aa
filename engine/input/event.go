package input

// Event is a single keyboard notification delivered by a Source.
// Handlers receive a pointer so they can suppress the event's default action.
type Event struct {
	// Code is the physical key code, e.g. "PageUp".
	Code string

	// Modifiers is the set of modifier keys held when the event fired.
	Modifiers Modifier

	defaultPrevented bool
}

// NewEvent creates an Event for the given key code and held modifiers.
//
// Parameters:
//   - code: physical key code
//   - mods: modifier keys currently held
//
// Returns:
//   - *Event: the new event
func NewEvent(code string, mods Modifier) *Event {
	return &Event{Code: code, Modifiers: mods}
}

// PreventDefault marks the event as consumed so the source skips its default action.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether any handler called PreventDefault.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}
