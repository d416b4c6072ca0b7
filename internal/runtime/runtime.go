// Package runtime defines the narrow facade over a native VR runtime that the
// backend is built against. A concrete binding (cgo glue over the vendor SDK)
// implements these interfaces and registers a Driver; tests and the -simulate
// daemon mode use the sim package instead.
package runtime

import "vrhal/pkg/types"

// MaxTrackedDevices is the fixed capacity of the device table. Slot indices are
// stable across frames, which is what makes snapshot diffing possible.
const MaxTrackedDevices = 16

// DeviceClass is the native runtime's coarse device category.
type DeviceClass int32

const (
	DeviceClassInvalid DeviceClass = iota
	DeviceClassHMD
	DeviceClassController
	DeviceClassGenericTracker
	DeviceClassTrackingReference
)

// DevicePose is one raw per-slot sample from a pose snapshot.
// DeviceToAbsolute is the row-major 3x4 device-to-world transform.
type DevicePose struct {
	DeviceToAbsolute [3][4]float32
	Velocity         [3]float32
	AngularVelocity  [3]float32
	Connected        bool
	PoseValid        bool
}

// PoseSnapshot is one frame's worth of samples for every slot. It is replaced
// wholesale on each successful wait, never merged with a prior snapshot.
type PoseSnapshot [MaxTrackedDevices]DevicePose

// Event is a native runtime event. The backend drains these every frame but
// tracker lifecycle is derived from snapshot diffing, not from events.
type Event struct {
	Type uint32
	Slot uint32
}

// System exposes per-device properties and display geometry.
type System interface {
	// PollNextEvent returns the next queued runtime event, if any.
	PollNextEvent() (Event, bool)
	// RenderModelName returns the device's render-model name property.
	// ok is false when the device exposes no such property.
	RenderModelName(slot uint32) (name string, ok bool)
	// DeviceClass returns the device category for a slot.
	DeviceClass(slot uint32) DeviceClass
	// EyeToHeadTransform returns the row-major 3x4 transform from head origin
	// to the given eye's origin.
	EyeToHeadTransform(eye types.Eye) [3][4]float32
	// ProjectionMatrix returns the row-major 4x4 projection for the eye and
	// the given clip planes.
	ProjectionMatrix(eye types.Eye, near, far float32) [4][4]float32
	// RecommendedRenderTargetSize returns the per-eye target size in pixels.
	RecommendedRenderTargetSize() (width, height uint32)
}

// Compositor owns frame pacing and submission.
type Compositor interface {
	// WaitGetPoses blocks until the runtime delivers the next pose snapshot.
	WaitGetPoses() (PoseSnapshot, error)
	// Submit hands a rendered GL texture to the compositor for one eye.
	Submit(eye types.Eye, texture uint32) error
}

// RenderModel is raw model geometry as the native asset cache stores it.
// DiffuseTextureID is negative when the model carries no diffuse texture.
type RenderModel struct {
	Vertices         []RawVertex
	Indices          []uint16
	DiffuseTextureID int32
}

// RawVertex is the native vertex layout: no tangent, V grows downward.
type RawVertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Texture is raw RGBA texture data from the native asset cache.
type Texture struct {
	Width  uint16
	Height uint16
	Data   []byte
}

// RenderModels is the native asynchronous asset cache. Load methods return
// (nil, nil) while an asset is still loading; callers poll across frames.
type RenderModels interface {
	// ComponentCount returns how many named components the model declares.
	// Zero means the model is monolithic.
	ComponentCount(model string) uint32
	// ComponentName enumerates declared component names by index.
	ComponentName(model string, index uint32) (string, bool)
	// LoadRenderModel requests a whole-device model by name.
	LoadRenderModel(name string) (*RenderModel, error)
	// LoadComponentModel requests one named component of a model.
	LoadComponentModel(model, component string) (*RenderModel, error)
	// LoadTexture requests a texture by the id a RenderModel referenced.
	LoadTexture(id int32) (*Texture, error)
}

// Runtime is an initialized native runtime session. Subsystem acquisition can
// fail independently of session creation, so each accessor returns an error.
type Runtime interface {
	System() (System, error)
	Compositor() (Compositor, error)
	RenderModels() (RenderModels, error)
	Shutdown()
}

// Driver creates runtime sessions. The concrete native binding registers one
// at program startup; HMDPresent must be callable before any session exists.
type Driver interface {
	HMDPresent() bool
	Init(kind types.ApplicationKind) (Runtime, error)
}
