package controls

import "github.com/Carmen-Shannon/oxy-mapview/engine/input"

// Target is the steerable view state: a mutable pitch angle and the current
// distance from the viewed subject. Units are the caller's choice but must be
// consistent with the AngleLimitFunc in use.
type Target interface {
	// Angle returns the current pitch angle.
	Angle() float64

	// SetAngle replaces the current pitch angle.
	SetAngle(angle float64)

	// Distance returns the current distance from the viewed subject.
	Distance() float64
}

// Session is the control context a controller is started against. It supplies
// the input source the controller listens to for the duration of Start/Stop.
type Session interface {
	Target

	// Input returns the event source for this session.
	Input() input.Source
}

// AngleLimitFunc maps a distance to the largest allowed pitch angle.
type AngleLimitFunc func(distance float64) float64

type session struct {
	Target
	source input.Source
}

// NewSession pairs a target with the input source that drives it.
//
// Parameters:
//   - target: the view state to steer
//   - source: the input event source
//
// Returns:
//   - Session: the combined session
func NewSession(target Target, source input.Source) Session {
	return &session{Target: target, source: source}
}

func (s *session) Input() input.Source {
	return s.source
}
