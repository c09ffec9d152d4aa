package camera

import "github.com/go-gl/mathgl/mgl64"

// CameraBuilderOption is a functional option for configuring a Camera.
type CameraBuilderOption func(*cameraImpl)

// WithAngle sets the initial pitch angle.
//
// Parameters:
//   - angle: pitch angle in radians (0 = top-down)
//
// Returns:
//   - CameraBuilderOption: functional option to set the angle
func WithAngle(angle float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.angle = angle
	}
}

// WithAngleDegrees sets the initial pitch angle in degrees.
//
// Parameters:
//   - degrees: pitch angle in degrees
//
// Returns:
//   - CameraBuilderOption: functional option to set the angle
func WithAngleDegrees(degrees float64) CameraBuilderOption {
	return WithAngle(mgl64.DegToRad(degrees))
}

// WithDistance sets the initial distance from the viewed point.
//
// Parameters:
//   - distance: distance in world units
//
// Returns:
//   - CameraBuilderOption: functional option to set the distance
func WithDistance(distance float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.distance = distance
	}
}

// WithDistanceBounds sets the minimum and maximum distance.
//
// Parameters:
//   - min: closest allowed distance
//   - max: farthest allowed distance
//
// Returns:
//   - CameraBuilderOption: functional option to set distance bounds
func WithDistanceBounds(min, max float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.minDistance = min
		c.maxDistance = max
	}
}
