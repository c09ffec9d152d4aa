package controls

import "log"

// AngleControllerOption is a functional option for configuring an AngleController.
type AngleControllerOption func(*angleControllerImpl)

// WithBindings replaces the default raise/lower key bindings.
//
// Parameters:
//   - bindings: the binding table to use (copied)
//
// Returns:
//   - AngleControllerOption: functional option to set the bindings
func WithBindings(bindings Bindings) AngleControllerOption {
	return func(ac *angleControllerImpl) {
		ac.bindings = bindings.clone()
	}
}

// WithAngleLimit sets the function that derives the pitch ceiling from the target's distance.
// A nil function is ignored.
//
// Parameters:
//   - limit: distance to maximum pitch mapping
//
// Returns:
//   - AngleControllerOption: functional option to set the limit function
func WithAngleLimit(limit AngleLimitFunc) AngleControllerOption {
	return func(ac *angleControllerImpl) {
		if limit != nil {
			ac.limit = limit
		}
	}
}

// WithSoftness sets how far past the limit the pitch may overshoot, as a fraction of the limit.
// Values are clamped to [0, MaxSoftness]; 0 gives a hard clamp.
//
// Parameters:
//   - softness: overshoot fraction
//
// Returns:
//   - AngleControllerOption: functional option to set the softness
func WithSoftness(softness float64) AngleControllerOption {
	return func(ac *angleControllerImpl) {
		ac.softness = softness
	}
}

// WithMinHeadroom sets the smallest overshoot allowed past the limit while softness is
// non-zero, in angle units. Negative values disable the floor.
//
// Parameters:
//   - headroom: minimum overshoot
//
// Returns:
//   - AngleControllerOption: functional option to set the minimum headroom
func WithMinHeadroom(headroom float64) AngleControllerOption {
	return func(ac *angleControllerImpl) {
		ac.minHeadroom = headroom
	}
}

// WithLogger sets the logger used for start/stop transitions. Nil disables logging.
//
// Parameters:
//   - logger: destination logger
//
// Returns:
//   - AngleControllerOption: functional option to set the logger
func WithLogger(logger *log.Logger) AngleControllerOption {
	return func(ac *angleControllerImpl) {
		ac.logger = logger
	}
}
