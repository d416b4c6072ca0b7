package tracking

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"vrhal/internal/runtime"
	"vrhal/pkg/types"
)

// ResolvePose converts one raw snapshot sample into a structured pose.
// Translation is the last column of the 3x4 device-to-world transform;
// orientation comes from the rotation block. Valid requires the device to
// report both connected and pose-valid.
func ResolvePose(sample runtime.DevicePose) types.TrackerPose {
	m := sample.DeviceToAbsolute
	return types.TrackerPose{
		Position:        mgl32.Vec3{m[0][3], m[1][3], m[2][3]},
		Rotation:        QuatFromRotation(m),
		Velocity:        mgl32.Vec3{sample.Velocity[0], sample.Velocity[1], sample.Velocity[2]},
		AngularVelocity: mgl32.Vec3{sample.AngularVelocity[0], sample.AngularVelocity[1], sample.AngularVelocity[2]},
		Valid:           sample.Connected && sample.PoseValid,
	}
}

// QuatFromRotation extracts a unit quaternion from the rotation block of a
// row-major 3x4 transform. Each component magnitude is computed from its own
// diagonal combination (clamped at zero), which always reads the largest
// component from a well-conditioned expression instead of dividing by a
// possibly tiny trace. The signs of x, y, z are then recovered from the
// antisymmetric off-diagonal differences.
func QuatFromRotation(m [3][4]float32) mgl32.Quat {
	w := halfSqrt(1 + m[0][0] + m[1][1] + m[2][2])
	x := halfSqrt(1 + m[0][0] - m[1][1] - m[2][2])
	y := halfSqrt(1 - m[0][0] + m[1][1] - m[2][2])
	z := halfSqrt(1 - m[0][0] - m[1][1] + m[2][2])

	x = copysign(x, m[2][1]-m[1][2])
	y = copysign(y, m[0][2]-m[2][0])
	z = copysign(z, m[1][0]-m[0][1])

	return mgl32.Quat{W: w, V: mgl32.Vec3{x, y, z}}
}

func halfSqrt(v float32) float32 {
	if v < 0 {
		v = 0
	}
	return float32(math.Sqrt(float64(v))) / 2
}

// copysign returns a with the sign of b, treating zero (including negative
// zero) as positive. A symmetric rotation block must not zero out a component
// that the magnitude computation found to be nonzero.
func copysign(a, b float32) float32 {
	a = float32(math.Abs(float64(a)))
	if b < 0 {
		return -a
	}
	return a
}
