// Package stereo computes per-eye render-target parameters: recommended pixel
// size, head-to-eye view offsets and projection matrices for submission-ready
// stereo rendering.
package stereo

import (
	"github.com/go-gl/mathgl/mgl32"

	"vrhal/internal/runtime"
	"vrhal/pkg/types"
)

// Calculator derives stereo target info from the runtime's display geometry.
type Calculator struct {
	system runtime.System
}

// New builds a calculator over the runtime's system subsystem.
func New(system runtime.System) *Calculator {
	return &Calculator{system: system}
}

// TargetInfo returns both eyes' target parameters, left eye first. The view
// offset is the inverted eye-to-head transform (head-to-eye). The recommended
// target size is queried once and shared by both eyes.
//
// The runtime hands out row-major rows while mgl32 stores column-major, so
// both matrices are transposed on ingest.
func (c *Calculator) TargetInfo(near, far float32) [2]types.StereoTarget {
	width, height := c.system.RecommendedRenderTargetSize()

	var out [2]types.StereoTarget
	for i, eye := range [2]types.Eye{types.EyeLeft, types.EyeRight} {
		eyeToHead := mat4FromRows34(c.system.EyeToHeadTransform(eye))
		out[i] = types.StereoTarget{
			Width:      width,
			Height:     height,
			ViewOffset: eyeToHead.Inv(),
			Projection: mat4FromRows44(c.system.ProjectionMatrix(eye, near, far)),
		}
	}
	return out
}

// mat4FromRows34 extends a row-major 3x4 transform to homogeneous form in
// column-major storage.
func mat4FromRows34(m [3][4]float32) mgl32.Mat4 {
	var out mgl32.Mat4
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			out[c*4+r] = m[r][c]
		}
	}
	out[15] = 1
	return out
}

// mat4FromRows44 converts row-major rows to column-major storage.
func mat4FromRows44(m [4][4]float32) mgl32.Mat4 {
	var out mgl32.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[c*4+r] = m[r][c]
		}
	}
	return out
}
