package controls

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/Carmen-Shannon/oxy-mapview/common"
	"github.com/Carmen-Shannon/oxy-mapview/engine/camera"
	"github.com/Carmen-Shannon/oxy-mapview/engine/input"
)

const (
	// ReferenceFrameDuration is the nominal frame length in seconds (60 updates per second)
	// that responsiveness is expressed against. A responsiveness of 1 consumes all pending
	// input in one reference frame.
	ReferenceFrameDuration = 1.0 / 60.0

	// AngleScale converts speed * elapsed seconds into angle units: at speed 1, one unit of
	// fully consumed intent moves the angle by one unit per reference frame.
	AngleScale = 60.0

	// PendingDeltaEpsilon is the magnitude below which pending input snaps to exactly zero.
	PendingDeltaEpsilon = 1e-4

	// DefaultSoftness lets the pitch overshoot its limit by 5% before the soft clamp flattens out.
	DefaultSoftness = 0.05

	// MaxSoftness is the largest accepted softness.
	MaxSoftness = 0.99

	// DefaultMinHeadroom is the smallest overshoot allowed past the limit while softness is
	// non-zero, so a limit of 0 (far zoom) still gives soft resistance instead of a wall.
	DefaultMinHeadroom = 0.005
)

var (
	// ErrInvalidSpeed is returned when the speed is negative or not finite.
	ErrInvalidSpeed = errors.New("speed must be a finite, non-negative number")

	// ErrInvalidResponsiveness is returned when the responsiveness is outside [0, 1] or not finite.
	ErrInvalidResponsiveness = errors.New("responsiveness must be a finite number in [0, 1]")
)

// AngleController converts held pitch keys into smooth, eased changes of a target's pitch angle.
// Input handlers set hold flags; Update integrates them once per frame into a pending delta that
// is consumed gradually, producing inertia after release. The resulting angle is softly bounded
// by a distance-dependent limit.
//
// All methods must be called from the input/frame thread.
type AngleController interface {
	// Start subscribes to key-down, key-up and blur events of the session's input source.
	// Calling Start on a started controller does nothing.
	//
	// Parameters:
	//   - session: the control session providing the input source
	Start(session Session)

	// Stop removes the three event subscriptions and discards hold state and pending input,
	// since releases that happen while stopped are never observed. Safe to call when not started.
	Stop()

	// Update advances the target's angle by one frame.
	// Non-positive or non-finite elapsed time produces no motion.
	//
	// Parameters:
	//   - elapsedSeconds: time since the previous frame in seconds
	//   - target: the view state to steer (nil only accumulates hold state)
	Update(elapsedSeconds float64, target Target)

	// Active reports whether the controller is currently started.
	//
	// Returns:
	//   - bool: true between Start and Stop
	Active() bool

	// Holding reports the current hold state of the raise and lower actions.
	//
	// Returns:
	//   - up: true while a raise combination is held
	//   - down: true while a lower combination is held
	Holding() (up, down bool)

	// PendingDelta returns the accumulated input intent not yet applied to the angle.
	//
	// Returns:
	//   - float64: negative while raising, positive while lowering, 0 at rest
	PendingDelta() float64

	// Speed returns the configured angular speed multiplier.
	//
	// Returns:
	//   - float64: speed
	Speed() float64

	// Responsiveness returns how quickly pending input turns into motion (0 never, 1 instantly).
	//
	// Returns:
	//   - float64: responsiveness in [0, 1]
	Responsiveness() float64
}

type angleControllerImpl struct {
	speed          float64
	responsiveness float64
	softness       float64
	minHeadroom    float64

	bindings Bindings
	limit    AngleLimitFunc
	logger   *log.Logger

	session    Session
	keyDownSub input.Subscription
	keyUpSub   input.Subscription
	blurSub    input.Subscription
	subscribed bool

	heldUp       bool
	heldDown     bool
	pendingDelta float64
}

var _ AngleController = &angleControllerImpl{}

// NewAngleController creates a stopped pitch controller.
// The default angle limit is camera.MaxAngleForDistance, the default bindings are
// DefaultBindings and the default softness is DefaultSoftness.
//
// Parameters:
//   - speed: angular speed multiplier, finite and >= 0
//   - responsiveness: fraction of pending input consumed per reference frame, in [0, 1]
//   - options: functional options to configure the controller
//
// Returns:
//   - AngleController: the new controller
//   - error: wraps ErrInvalidSpeed or ErrInvalidResponsiveness on bad arguments
func NewAngleController(speed, responsiveness float64, options ...AngleControllerOption) (AngleController, error) {
	if math.IsNaN(speed) || math.IsInf(speed, 0) || speed < 0 {
		return nil, fmt.Errorf("new angle controller: %w (got %v)", ErrInvalidSpeed, speed)
	}
	if math.IsNaN(responsiveness) || responsiveness < 0 || responsiveness > 1 {
		return nil, fmt.Errorf("new angle controller: %w (got %v)", ErrInvalidResponsiveness, responsiveness)
	}

	ac := &angleControllerImpl{
		speed:          speed,
		responsiveness: responsiveness,
		softness:       DefaultSoftness,
		minHeadroom:    DefaultMinHeadroom,
		bindings:       DefaultBindings(),
		limit:          camera.MaxAngleForDistance,
	}

	for _, option := range options {
		option(ac)
	}

	if math.IsNaN(ac.softness) {
		ac.softness = DefaultSoftness
	}
	ac.softness = common.Clamp(ac.softness, 0, MaxSoftness)
	if !(ac.minHeadroom >= 0) || math.IsInf(ac.minHeadroom, 1) {
		ac.minHeadroom = 0
	}
	return ac, nil
}

func (ac *angleControllerImpl) Start(session Session) {
	if ac.subscribed || session == nil {
		return
	}
	src := session.Input()
	if src == nil {
		return
	}

	ac.session = session
	ac.keyDownSub = src.OnKeyDown(ac.onKeyDown)
	ac.keyUpSub = src.OnKeyUp(ac.onKeyUp)
	ac.blurSub = src.OnBlur(ac.onBlur)
	ac.subscribed = true
	ac.logf("started (speed %.3f, responsiveness %.3f)", ac.speed, ac.responsiveness)
}

func (ac *angleControllerImpl) Stop() {
	if !ac.subscribed {
		return
	}

	src := ac.session.Input()
	if src != nil {
		src.Unsubscribe(ac.keyDownSub)
		src.Unsubscribe(ac.keyUpSub)
		src.Unsubscribe(ac.blurSub)
	}
	ac.keyDownSub, ac.keyUpSub, ac.blurSub = 0, 0, 0
	ac.session = nil
	ac.subscribed = false
	ac.heldUp, ac.heldDown = false, false
	ac.pendingDelta = 0
	ac.logf("stopped")
}

func (ac *angleControllerImpl) Update(elapsedSeconds float64, target Target) {
	if ac.heldUp {
		ac.pendingDelta--
	}
	if ac.heldDown {
		ac.pendingDelta++
	}

	if ac.pendingDelta == 0 {
		return
	}

	if !(elapsedSeconds > 0) || math.IsInf(elapsedSeconds, 1) {
		elapsedSeconds = 0
	}

	smoothing := common.Clamp(ac.responsiveness*elapsedSeconds/ReferenceFrameDuration, 0, 1)

	// Re-clamping an angle that already sits in the soft zone moves it, so a zero step must not write.
	if step := ac.pendingDelta * smoothing * ac.speed * elapsedSeconds * AngleScale; target != nil && step != 0 {
		angle := target.Angle() + step
		if limit := ac.limit(target.Distance()); !math.IsNaN(limit) {
			angle = common.SoftClampHeadroom(angle, limit, ac.headroom(limit))
		}
		target.SetAngle(angle)
	}

	ac.pendingDelta *= 1 - smoothing
	if math.Abs(ac.pendingDelta) < PendingDeltaEpsilon {
		ac.pendingDelta = 0
	}
}

func (ac *angleControllerImpl) Active() bool {
	return ac.subscribed
}

func (ac *angleControllerImpl) Holding() (up, down bool) {
	return ac.heldUp, ac.heldDown
}

func (ac *angleControllerImpl) PendingDelta() float64 {
	return ac.pendingDelta
}

func (ac *angleControllerImpl) Speed() float64 {
	return ac.speed
}

func (ac *angleControllerImpl) Responsiveness() float64 {
	return ac.responsiveness
}

// onKeyDown checks raise before lower and suppresses the default action of matched keys.
func (ac *angleControllerImpl) onKeyDown(evt *input.Event) {
	if input.OneDown(evt, ac.bindings.Raise...) {
		ac.heldUp = true
		evt.PreventDefault()
	}
	if input.OneDown(evt, ac.bindings.Lower...) {
		ac.heldDown = true
		evt.PreventDefault()
	}
}

func (ac *angleControllerImpl) onKeyUp(evt *input.Event) {
	if input.OneUp(evt, ac.bindings.Raise...) {
		ac.heldUp = false
	}
	if input.OneUp(evt, ac.bindings.Lower...) {
		ac.heldDown = false
	}
}

// onBlur drops both hold flags; no key-up is guaranteed to arrive after focus moves away.
func (ac *angleControllerImpl) onBlur() {
	ac.heldUp = false
	ac.heldDown = false
}

// headroom is the overshoot allowed past limit: softness scaled by the limit, floored at
// minHeadroom unless softness is 0.
func (ac *angleControllerImpl) headroom(limit float64) float64 {
	if ac.softness == 0 {
		return 0
	}
	return math.Max(ac.softness*math.Abs(limit), ac.minHeadroom)
}

func (ac *angleControllerImpl) logf(format string, args ...any) {
	if ac.logger != nil {
		ac.logger.Printf("[AngleController] "+format, args...)
	}
}
