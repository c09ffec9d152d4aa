package window

import (
	"strconv"

	"github.com/Carmen-Shannon/oxy-mapview/common"
	"github.com/Carmen-Shannon/oxy-mapview/engine/input"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// glfwKeyCodes maps GLFW key tokens to physical key codes.
// Keys that no binding can reference are left out and arrive as unknown.
var glfwKeyCodes = map[glfw.Key]string{
	glfw.KeyUp:           common.KeyArrowUp,
	glfw.KeyDown:         common.KeyArrowDown,
	glfw.KeyLeft:         common.KeyArrowLeft,
	glfw.KeyRight:        common.KeyArrowRight,
	glfw.KeyPageUp:       common.KeyPageUp,
	glfw.KeyPageDown:     common.KeyPageDown,
	glfw.KeyHome:         common.KeyHome,
	glfw.KeyEnd:          common.KeyEnd,
	glfw.KeySpace:        common.KeySpace,
	glfw.KeyEscape:       common.KeyEscape,
	glfw.KeyEnter:        common.KeyEnter,
	glfw.KeyTab:          common.KeyTab,
	glfw.KeyBackspace:    common.KeyBackspace,
	glfw.KeyLeftAlt:      common.KeyAltLeft,
	glfw.KeyRightAlt:     common.KeyAltRight,
	glfw.KeyLeftControl:  common.KeyControlLeft,
	glfw.KeyRightControl: common.KeyControlRight,
	glfw.KeyLeftShift:    common.KeyShiftLeft,
	glfw.KeyRightShift:   common.KeyShiftRight,
	glfw.KeyLeftSuper:    common.KeyMetaLeft,
	glfw.KeyRightSuper:   common.KeyMetaRight,
}

// keyCode returns the physical key code for a GLFW key, or "" if it has none.
// Letters map to "KeyA".."KeyZ" and digits to "Digit0".."Digit9".
func keyCode(key glfw.Key) string {
	switch {
	case key >= glfw.KeyA && key <= glfw.KeyZ:
		return "Key" + string(rune('A'+(key-glfw.KeyA)))
	case key >= glfw.Key0 && key <= glfw.Key9:
		return "Digit" + string(rune('0'+(key-glfw.Key0)))
	case key >= glfw.KeyF1 && key <= glfw.KeyF25:
		return "F" + strconv.Itoa(int(key-glfw.KeyF1)+1)
	}
	return glfwKeyCodes[key]
}

// modifiers converts GLFW modifier bits to input modifiers. Lock keys are ignored.
func modifiers(mods glfw.ModifierKey) input.Modifier {
	var m input.Modifier
	if mods&glfw.ModShift != 0 {
		m = m.With(input.ModShift)
	}
	if mods&glfw.ModControl != 0 {
		m = m.With(input.ModCtrl)
	}
	if mods&glfw.ModAlt != 0 {
		m = m.With(input.ModAlt)
	}
	if mods&glfw.ModSuper != 0 {
		m = m.With(input.ModMeta)
	}
	return m
}
