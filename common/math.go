package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Clamp restricts v to the closed range [low, high].
// NaN inputs are mapped to low so a corrupted value never propagates.
//
// Parameters:
//   - v: the value to clamp
//   - low: lower bound (inclusive)
//   - high: upper bound (inclusive)
//
// Returns:
//   - float64: v limited to [low, high]
func Clamp(v, low, high float64) float64 {
	if math.IsNaN(v) {
		return low
	}
	return mgl64.Clamp(v, low, high)
}

// SoftMax bounds v from above without a hard wall.
// Values at or below limit are returned unchanged. Above limit the result eases
// exponentially toward limit + headroom, where headroom = softness * |limit|:
//
//	limit + headroom * (1 - exp(-(v - limit) / headroom))
//
// The curve is continuous with slope 1 at limit, strictly increasing, and never
// reaches limit + headroom. A softness of 0 degrades to a hard clamp.
//
// Parameters:
//   - v: the raw value
//   - limit: the nominal upper limit
//   - softness: fraction of |limit| allowed as overshoot, expected in [0, 1)
//
// Returns:
//   - float64: the softly bounded value
func SoftMax(v, limit, softness float64) float64 {
	return softMaxHeadroom(v, limit, softness*math.Abs(limit))
}

func softMaxHeadroom(v, limit, headroom float64) float64 {
	if v <= limit {
		return v
	}
	if !(headroom > 0) {
		return limit
	}
	return limit + headroom*(1-math.Exp(-(v-limit)/headroom))
}

// SoftMin is the mirror of SoftMax: it bounds v from below, easing toward
// limit - softness*|limit| for values under limit.
//
// Parameters:
//   - v: the raw value
//   - limit: the nominal lower limit
//   - softness: fraction of |limit| allowed as overshoot, expected in [0, 1)
//
// Returns:
//   - float64: the softly bounded value
func SoftMin(v, limit, softness float64) float64 {
	return -SoftMax(-v, -limit, softness)
}

// SoftClamp softly keeps v within [-limit, limit] using SoftMax and SoftMin.
// A negative limit is treated as zero.
//
// Parameters:
//   - v: the raw value
//   - limit: the symmetric magnitude limit
//   - softness: fraction of limit allowed as overshoot on either side
//
// Returns:
//   - float64: the softly bounded value
func SoftClamp(v, limit, softness float64) float64 {
	if limit < 0 {
		limit = 0
	}
	return SoftClampHeadroom(v, limit, softness*limit)
}

// SoftClampHeadroom is SoftClamp with the overshoot given as an absolute amount
// rather than a fraction of limit, so it stays soft when limit is 0.
// A negative limit is treated as zero; headroom <= 0 gives a hard clamp.
//
// Parameters:
//   - v: the raw value
//   - limit: the symmetric magnitude limit
//   - headroom: largest overshoot on either side
//
// Returns:
//   - float64: the softly bounded value
func SoftClampHeadroom(v, limit, headroom float64) float64 {
	if limit < 0 {
		limit = 0
	}
	v = softMaxHeadroom(v, limit, headroom)
	return -softMaxHeadroom(-v, limit, headroom)
}
