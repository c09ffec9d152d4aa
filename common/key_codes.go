package common

// Physical key codes for cross-platform input handling.
// Codes name the physical key position rather than the produced character,
// matching the KeyboardEvent.code identifiers used by browsers so that
// bindings written for a web viewer carry over unchanged.
// Reference: https://www.w3.org/TR/uievents-code/
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyPageUp     = "PageUp"
	KeyPageDown   = "PageDown"
	KeyHome       = "Home"
	KeyEnd        = "End"
	KeySpace      = "Space"
	KeyEscape     = "Escape"
	KeyEnter      = "Enter"
	KeyTab        = "Tab"
	KeyBackspace  = "Backspace"

	KeyW = "KeyW"
	KeyA = "KeyA"
	KeyS = "KeyS"
	KeyD = "KeyD"
	KeyQ = "KeyQ"
	KeyE = "KeyE"
)

// Modifier key codes. These only identify the modifier keys themselves;
// whether a modifier is held is carried separately on each input event.
const (
	KeyAltLeft      = "AltLeft"
	KeyAltRight     = "AltRight"
	KeyControlLeft  = "ControlLeft"
	KeyControlRight = "ControlRight"
	KeyShiftLeft    = "ShiftLeft"
	KeyShiftRight   = "ShiftRight"
	KeyMetaLeft     = "MetaLeft"
	KeyMetaRight    = "MetaRight"
)
