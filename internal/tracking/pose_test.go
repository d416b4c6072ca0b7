package tracking

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"vrhal/internal/runtime"
)

// helper: row-major 3x4 view of a column-major mgl32 transform
func rowMajor34(t *testing.T, m mgl32.Mat4) [3][4]float32 {
	t.Helper()
	var out [3][4]float32
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			out[r][c] = m.At(r, c)
		}
	}
	return out
}

func TestQuatIdentity(t *testing.T) {
	q := QuatFromRotation(rowMajor34(t, mgl32.Ident4()))
	if math.Abs(float64(q.W-1)) > 1e-6 || q.V.Len() > 1e-6 {
		t.Fatalf("expected identity quaternion, got w=%v v=%v", q.W, q.V)
	}
}

func TestQuatRoundTrip(t *testing.T) {
	cases := []struct {
		angle float32
		axis  mgl32.Vec3
	}{
		{0.3, mgl32.Vec3{1, 0, 0}},
		{1.1, mgl32.Vec3{0, 1, 0}},
		{-2.4, mgl32.Vec3{0, 0, 1}},
		{math.Pi, mgl32.Vec3{0, 1, 0}},          // trace -1: w vanishes
		{math.Pi, mgl32.Vec3{1, 1, 0}.Normalize()},
		{2.9, mgl32.Vec3{0.3, -0.8, 0.5}.Normalize()},
		{-0.05, mgl32.Vec3{-1, 2, -3}.Normalize()},
	}
	for _, tc := range cases {
		src := mgl32.HomogRotate3D(tc.angle, tc.axis)
		q := QuatFromRotation(rowMajor34(t, src))

		if n := math.Abs(float64(q.Len() - 1)); n > 1e-4 {
			t.Fatalf("angle=%v axis=%v: quaternion not unit length (off by %v)", tc.angle, tc.axis, n)
		}

		// q and -q encode the same rotation; compare reconstructed matrices.
		back := q.Mat4()
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				if d := math.Abs(float64(back.At(r, c) - src.At(r, c))); d > 1e-4 {
					t.Fatalf("angle=%v axis=%v: m[%d][%d] differs by %v", tc.angle, tc.axis, r, c, d)
				}
			}
		}
	}
}

func TestCopysignTreatsZeroAsPositive(t *testing.T) {
	negZero := float32(math.Copysign(0, -1))
	if got := copysign(0.5, 0); got != 0.5 {
		t.Fatalf("copysign(0.5, 0) = %v, want 0.5", got)
	}
	if got := copysign(0.5, negZero); got != 0.5 {
		t.Fatalf("copysign(0.5, -0) = %v, want 0.5", got)
	}
	if got := copysign(-0.5, 2); got != 0.5 {
		t.Fatalf("copysign(-0.5, 2) = %v, want 0.5", got)
	}
	if got := copysign(0.5, -3); got != -0.5 {
		t.Fatalf("copysign(0.5, -3) = %v, want -0.5", got)
	}
}

func TestResolvePoseFields(t *testing.T) {
	sample := runtime.DevicePose{
		DeviceToAbsolute: [3][4]float32{
			{1, 0, 0, 1.5},
			{0, 1, 0, -0.25},
			{0, 0, 1, 3},
		},
		Velocity:        [3]float32{0.1, 0.2, 0.3},
		AngularVelocity: [3]float32{-1, 0, 1},
		Connected:       true,
		PoseValid:       true,
	}
	pose := ResolvePose(sample)

	if pose.Position != (mgl32.Vec3{1.5, -0.25, 3}) {
		t.Fatalf("position = %v", pose.Position)
	}
	if pose.Velocity != (mgl32.Vec3{0.1, 0.2, 0.3}) {
		t.Fatalf("velocity = %v", pose.Velocity)
	}
	if pose.AngularVelocity != (mgl32.Vec3{-1, 0, 1}) {
		t.Fatalf("angular velocity = %v", pose.AngularVelocity)
	}
	if !pose.Valid {
		t.Fatalf("expected valid pose")
	}
}

func TestResolvePoseValidityRequiresBothFlags(t *testing.T) {
	sample := runtime.DevicePose{Connected: true, PoseValid: false}
	if ResolvePose(sample).Valid {
		t.Fatalf("connected without pose-valid must not be valid")
	}
	sample = runtime.DevicePose{Connected: false, PoseValid: true}
	if ResolvePose(sample).Valid {
		t.Fatalf("pose-valid without connected must not be valid")
	}
}
