package types

import "github.com/go-gl/mathgl/mgl32"

// ApplicationKind tells the native runtime what kind of application is attaching.
type ApplicationKind int

const (
	// ApplicationScene is a full 3D application that renders the whole view.
	ApplicationScene ApplicationKind = iota
	// ApplicationOverlay draws on top of another scene application.
	ApplicationOverlay
	// ApplicationBackground attaches without rendering (tooling, monitors).
	ApplicationBackground
)

func (k ApplicationKind) String() string {
	switch k {
	case ApplicationScene:
		return "scene"
	case ApplicationOverlay:
		return "overlay"
	case ApplicationBackground:
		return "background"
	default:
		return "unknown"
	}
}

// Eye selects one side of a stereo pair.
type Eye int

const (
	EyeLeft  Eye = 0
	EyeRight Eye = 1
)

func (e Eye) String() string {
	switch e {
	case EyeLeft:
		return "left"
	case EyeRight:
		return "right"
	default:
		return "invalid"
	}
}

// TrackerPose is the resolved pose of one tracked device slot, derived from the
// last captured snapshot. Before any snapshot exists every field is zero and
// Valid is false; the zero quaternion is deliberately non-unit so consumers
// cannot mistake it for a real orientation.
type TrackerPose struct {
	Position        mgl32.Vec3
	Rotation        mgl32.Quat
	Velocity        mgl32.Vec3
	AngularVelocity mgl32.Vec3
	Valid           bool
}

// TrackerCapabilities describes what a tracked device slot offers.
// RenderModelComponents is 0 when the device has no render model, 1 for a
// monolithic model, and the declared count for multi-part models.
type TrackerCapabilities struct {
	RenderModelComponents uint32
	IsCamera              bool
}

// NewTracker pairs a newly detected slot with its capabilities.
type NewTracker struct {
	Slot         uint32
	Capabilities TrackerCapabilities
}

// Vertex is one converted render-model vertex. The tangent is synthesized from
// the normal (the native format does not carry one) and the V coordinate is
// already flipped to the target image convention.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	Tangent  mgl32.Vec3
	TexCoord mgl32.Vec2
}

// TextureData holds raw RGBA texture bytes plus dimensions for an external
// asset loader to consume.
type TextureData struct {
	Data   []byte
	Width  uint16
	Height uint16
}

// ComponentModel is one renderable part of a device model. Name is empty for a
// monolithic (whole-device) model. Texture is nil when the part has no diffuse
// texture; geometry is still published in that case.
type ComponentModel struct {
	Name     string
	Vertices []Vertex
	Indices  []uint16
	Texture  *TextureData
}

// LoadState is the lifecycle state of a slot's render-model load attempt.
type LoadState uint8

const (
	// LoadPending means the load is still in flight; retry on a later frame.
	LoadPending LoadState = iota
	// LoadUnavailable means the device has no model or the load failed hard.
	LoadUnavailable
	// LoadAvailable means every part finished loading.
	LoadAvailable
)

func (s LoadState) String() string {
	switch s {
	case LoadPending:
		return "pending"
	case LoadUnavailable:
		return "unavailable"
	case LoadAvailable:
		return "available"
	default:
		return "unknown"
	}
}

// ModelStatus is the result of one render-model query. Components are only
// carried in the Available state, so a partially loaded model can never be
// published: callers either get the full ordered list or none.
type ModelStatus struct {
	state      LoadState
	components []ComponentModel
}

// PendingStatus reports a load still in flight.
func PendingStatus() ModelStatus { return ModelStatus{state: LoadPending} }

// UnavailableStatus reports a device with no model or a hard load failure.
func UnavailableStatus() ModelStatus { return ModelStatus{state: LoadUnavailable} }

// AvailableStatus publishes the full component list, in enumeration order.
func AvailableStatus(parts []ComponentModel) ModelStatus {
	return ModelStatus{state: LoadAvailable, components: parts}
}

// State returns the load state tag.
func (s ModelStatus) State() LoadState { return s.state }

// Terminal reports whether repeated queries can be skipped: Available and
// Unavailable are both terminal for a given device configuration.
func (s ModelStatus) Terminal() bool { return s.state != LoadPending }

// Components returns the loaded parts. It is nil unless State is LoadAvailable.
func (s ModelStatus) Components() []ComponentModel { return s.components }

// StereoTarget describes one eye's render target: recommended pixel size, the
// head-to-eye view offset, and the projection for the requested clip planes.
// Matrices are column-major (mgl32 convention).
type StereoTarget struct {
	Width      uint32
	Height     uint32
	ViewOffset mgl32.Mat4
	Projection mgl32.Mat4
}
