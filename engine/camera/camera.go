package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-mapview/common"
	"github.com/go-gl/mathgl/mgl64"
)

// Camera holds the map view state steered by the controls: the pitch angle
// (radians, 0 = looking straight down) and the distance from the viewed point.
// Projection and rendering are handled elsewhere; the camera only owns the numbers.
type Camera interface {
	// Angle returns the current pitch angle in radians.
	//
	// Returns:
	//   - float64: pitch angle in radians
	Angle() float64

	// SetAngle sets the pitch angle in radians. Limits are applied by the controls, not here.
	//
	// Parameters:
	//   - angle: new pitch angle in radians
	SetAngle(angle float64)

	// Distance returns the current distance from the viewed point.
	//
	// Returns:
	//   - float64: distance in world units
	Distance() float64

	// SetDistance sets the distance, clamped to [MinDistance, MaxDistance].
	//
	// Parameters:
	//   - distance: new distance in world units
	SetDistance(distance float64)

	// MinDistance returns the smallest allowed distance.
	//
	// Returns:
	//   - float64: minimum distance
	MinDistance() float64

	// MaxDistance returns the largest allowed distance.
	//
	// Returns:
	//   - float64: maximum distance
	MaxDistance() float64

	// ViewDirection returns the unit vector from the camera toward the viewed point,
	// in a Y-up frame where angle 0 looks along -Y.
	//
	// Returns:
	//   - mgl64.Vec3: normalized view direction
	ViewDirection() mgl64.Vec3
}

type cameraImpl struct {
	mu *sync.Mutex

	angle    float64
	distance float64

	minDistance float64
	maxDistance float64
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new map camera looking straight down from a default distance.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:          &sync.Mutex{},
		angle:       0,
		distance:    500,
		minDistance: 5,
		maxDistance: 10000,
	}
	for _, option := range options {
		option(c)
	}
	if c.minDistance > c.maxDistance {
		c.minDistance, c.maxDistance = c.maxDistance, c.minDistance
	}
	c.distance = common.Clamp(c.distance, c.minDistance, c.maxDistance)
	return c
}

func (c *cameraImpl) Angle() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.angle
}

func (c *cameraImpl) SetAngle(angle float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.angle = angle
}

func (c *cameraImpl) Distance() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.distance
}

func (c *cameraImpl) SetDistance(distance float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.distance = common.Clamp(distance, c.minDistance, c.maxDistance)
}

func (c *cameraImpl) MinDistance() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.minDistance
}

func (c *cameraImpl) MaxDistance() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.maxDistance
}

func (c *cameraImpl) ViewDirection() mgl64.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	// Tilting rotates the straight-down view about the X axis toward -Z.
	return mgl64.Rotate3DX(c.angle).Mul3x1(mgl64.Vec3{0, -1, 0}).Normalize()
}

// MaxAngleForDistance is the default pitch ceiling: close to the ground the camera may tilt
// up to the horizon (π/2), and the allowed tilt shrinks with distance until the view is
// forced top-down at about 505 units.
//
// Parameters:
//   - distance: distance from the viewed point
//
// Returns:
//   - float64: maximum pitch angle in radians, in [0, π/2]
func MaxAngleForDistance(distance float64) float64 {
	halfPi := math.Pi / 2
	return common.Clamp((1-math.Sqrt(math.Max(distance-5, 0.001)/500))*halfPi, 0, halfPi)
}

// Degrees converts a pitch angle from radians to degrees.
//
// Parameters:
//   - angle: angle in radians
//
// Returns:
//   - float64: angle in degrees
func Degrees(angle float64) float64 {
	return mgl64.RadToDeg(angle)
}
