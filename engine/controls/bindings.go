package controls

import (
	"github.com/Carmen-Shannon/oxy-mapview/common"
	"github.com/Carmen-Shannon/oxy-mapview/engine/input"
)

// Bindings maps the two pitch actions to their alternative key combinations.
// Any one combination of an action is enough to trigger it.
type Bindings struct {
	// Raise tilts the camera toward a top-down view (decreases the angle).
	Raise []input.KeyCombination

	// Lower tilts the camera toward the horizon (increases the angle).
	Lower []input.KeyCombination
}

// DefaultBindings returns the stock pitch bindings: Alt+ArrowUp, Alt+KeyW and PageUp
// raise; Alt+ArrowDown, Alt+KeyS and PageDown lower. The Alt requirement on the
// arrow and letter keys leaves the bare keys free for panning.
// Each call returns fresh slices so callers cannot mutate the shared table.
//
// Returns:
//   - Bindings: the default binding table
func DefaultBindings() Bindings {
	return Bindings{
		Raise: []input.KeyCombination{
			input.NewKeyCombination(common.KeyArrowUp, input.ModAlt),
			input.NewKeyCombination(common.KeyW, input.ModAlt),
			input.NewKeyCombination(common.KeyPageUp),
		},
		Lower: []input.KeyCombination{
			input.NewKeyCombination(common.KeyArrowDown, input.ModAlt),
			input.NewKeyCombination(common.KeyS, input.ModAlt),
			input.NewKeyCombination(common.KeyPageDown),
		},
	}
}

func (b Bindings) clone() Bindings {
	return Bindings{
		Raise: append([]input.KeyCombination(nil), b.Raise...),
		Lower: append([]input.KeyCombination(nil), b.Lower...),
	}
}
