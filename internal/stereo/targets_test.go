package stereo

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"vrhal/internal/runtime"
	"vrhal/pkg/types"
)

// fakeDisplay offsets each eye by ±ipd/2 along x and hands out a recognizable
// asymmetric projection so transposition mistakes are caught.
type fakeDisplay struct {
	ipd float32
}

func (f *fakeDisplay) PollNextEvent() (runtime.Event, bool) { return runtime.Event{}, false }

func (f *fakeDisplay) RenderModelName(uint32) (string, bool) { return "", false }

func (f *fakeDisplay) DeviceClass(uint32) runtime.DeviceClass { return runtime.DeviceClassInvalid }

func (f *fakeDisplay) EyeToHeadTransform(eye types.Eye) [3][4]float32 {
	x := f.ipd / 2
	if eye == types.EyeLeft {
		x = -x
	}
	return [3][4]float32{
		{1, 0, 0, x},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
	}
}

func (f *fakeDisplay) ProjectionMatrix(eye types.Eye, near, far float32) [4][4]float32 {
	// row-major, deliberately asymmetric
	return [4][4]float32{
		{near, 0, 0.1, 0},
		{0, near, 0.2, 0},
		{0, 0, -(far + near) / (far - near), -2 * far * near / (far - near)},
		{0, 0, -1, 0},
	}
}

func (f *fakeDisplay) RecommendedRenderTargetSize() (uint32, uint32) { return 1512, 1680 }

func TestTargetInfoLeftEyeFirstSharedSize(t *testing.T) {
	c := New(&fakeDisplay{ipd: 0.064})
	targets := c.TargetInfo(0.1, 100)

	for i, tg := range targets {
		if tg.Width != 1512 || tg.Height != 1680 {
			t.Fatalf("eye %d: expected shared 1512x1680, got %dx%d", i, tg.Width, tg.Height)
		}
	}

	// view offset is head-to-eye: the left eye sits at -x, so the offset
	// translates by +x
	left := targets[0].ViewOffset
	if d := math.Abs(float64(left.At(0, 3) - 0.032)); d > 1e-6 {
		t.Fatalf("left view offset x = %v, want 0.032", left.At(0, 3))
	}
	right := targets[1].ViewOffset
	if d := math.Abs(float64(right.At(0, 3) + 0.032)); d > 1e-6 {
		t.Fatalf("right view offset x = %v, want -0.032", right.At(0, 3))
	}
}

func TestViewOffsetInvertsEyeToHead(t *testing.T) {
	disp := &fakeDisplay{ipd: 0.064}
	c := New(disp)
	targets := c.TargetInfo(0.1, 100)

	for i, eye := range [2]types.Eye{types.EyeLeft, types.EyeRight} {
		eyeToHead := mat4FromRows34(disp.EyeToHeadTransform(eye))
		product := targets[i].ViewOffset.Mul4(eyeToHead)
		if !product.ApproxEqualThreshold(mgl32.Ident4(), 1e-5) {
			t.Fatalf("eye %v: viewOffset * eyeToHead != identity:\n%v", eye, product)
		}
	}
}

func TestProjectionTransposedToColumnMajor(t *testing.T) {
	disp := &fakeDisplay{}
	c := New(disp)
	targets := c.TargetInfo(0.1, 100)

	src := disp.ProjectionMatrix(types.EyeLeft, 0.1, 100)
	proj := targets[0].Projection
	for r := 0; r < 4; r++ {
		for col := 0; col < 4; col++ {
			if proj.At(r, col) != src[r][col] {
				t.Fatalf("proj.At(%d,%d) = %v, want %v", r, col, proj.At(r, col), src[r][col])
			}
		}
	}
	// column-major storage: element [col*4+row]
	if proj[8] != 0.1 { // storage index for row 0, col 2
		t.Fatalf("expected column-major storage, proj[8] = %v", proj[8])
	}
}

func TestHomogeneousExtension(t *testing.T) {
	m := mat4FromRows34([3][4]float32{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
	})
	if m.At(3, 0) != 0 || m.At(3, 1) != 0 || m.At(3, 2) != 0 || m.At(3, 3) != 1 {
		t.Fatalf("bottom row must be (0,0,0,1), got %v %v %v %v",
			m.At(3, 0), m.At(3, 1), m.At(3, 2), m.At(3, 3))
	}
	if m.At(1, 2) != 7 || m.At(2, 3) != 12 {
		t.Fatalf("element mapping wrong: At(1,2)=%v At(2,3)=%v", m.At(1, 2), m.At(2, 3))
	}
}
