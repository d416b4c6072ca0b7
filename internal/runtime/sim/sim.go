// Package sim is a deterministic simulated VR runtime: one HMD and two
// controllers orbiting the origin, with render models that finish loading
// after a fixed number of polls. It backs the daemon's -simulate mode and the
// test suite, exercising the same pending/available paths a native runtime
// produces asynchronously.
package sim

import (
	"math"
	"time"

	"vrhal/internal/runtime"
	"vrhal/pkg/types"
)

const (
	slotHMD             = 0
	slotLeftController  = 1
	slotRightController = 2

	hmdModel        = "sim_hmd"
	controllerModel = "sim_controller"
)

// Driver is the simulated native binding.
type Driver struct {
	// LoadDelay is how many polls a model or texture stays in flight before
	// becoming resident. Defaults to 2 so pending paths are always exercised.
	LoadDelay int
	// FrameInterval is slept in WaitGetPoses to emulate compositor pacing.
	// Zero (the default) keeps tests fast.
	FrameInterval time.Duration
	// Dropout periodically disconnects the right controller so consumers see
	// removal events.
	Dropout bool
}

func (d Driver) HMDPresent() bool { return true }

func (d Driver) Init(types.ApplicationKind) (runtime.Runtime, error) {
	delay := d.LoadDelay
	if delay <= 0 {
		delay = 2
	}
	rt := &simRuntime{
		system: &simSystem{
			events: []runtime.Event{
				{Type: eventDeviceActivated, Slot: slotHMD},
				{Type: eventDeviceActivated, Slot: slotLeftController},
				{Type: eventDeviceActivated, Slot: slotRightController},
			},
		},
		models: &simModels{delay: delay, polls: map[string]int{}, texPolls: map[int32]int{}},
	}
	rt.compositor = &simCompositor{interval: d.FrameInterval, dropout: d.Dropout}
	return rt, nil
}

const eventDeviceActivated = 100

type simRuntime struct {
	system     *simSystem
	compositor *simCompositor
	models     *simModels
}

func (r *simRuntime) System() (runtime.System, error)             { return r.system, nil }
func (r *simRuntime) Compositor() (runtime.Compositor, error)     { return r.compositor, nil }
func (r *simRuntime) RenderModels() (runtime.RenderModels, error) { return r.models, nil }
func (r *simRuntime) Shutdown()                                   {}

type simSystem struct {
	events []runtime.Event
}

func (s *simSystem) PollNextEvent() (runtime.Event, bool) {
	if len(s.events) == 0 {
		return runtime.Event{}, false
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev, true
}

func (s *simSystem) RenderModelName(slot uint32) (string, bool) {
	switch slot {
	case slotHMD:
		return hmdModel, true
	case slotLeftController, slotRightController:
		return controllerModel, true
	default:
		return "", false
	}
}

func (s *simSystem) DeviceClass(slot uint32) runtime.DeviceClass {
	switch slot {
	case slotHMD:
		return runtime.DeviceClassHMD
	case slotLeftController, slotRightController:
		return runtime.DeviceClassController
	default:
		return runtime.DeviceClassInvalid
	}
}

func (s *simSystem) EyeToHeadTransform(eye types.Eye) [3][4]float32 {
	x := float32(0.032)
	if eye == types.EyeLeft {
		x = -x
	}
	return [3][4]float32{
		{1, 0, 0, x},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
	}
}

func (s *simSystem) ProjectionMatrix(_ types.Eye, near, far float32) [4][4]float32 {
	// symmetric 90 degree frustum
	return [4][4]float32{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, -(far + near) / (far - near), -2 * far * near / (far - near)},
		{0, 0, -1, 0},
	}
}

func (s *simSystem) RecommendedRenderTargetSize() (uint32, uint32) { return 1512, 1680 }

type simCompositor struct {
	interval time.Duration
	dropout  bool
	frame    uint64
	submits  uint64
}

// WaitGetPoses advances the simulation one frame: a bobbing HMD at head height
// and two controllers orbiting the origin at nominal 1 rad/s.
func (c *simCompositor) WaitGetPoses() (runtime.PoseSnapshot, error) {
	if c.interval > 0 {
		time.Sleep(c.interval)
	}
	c.frame++
	t := float32(c.frame) / 90 // nominal 90 Hz

	var snap runtime.PoseSnapshot
	snap[slotHMD] = headPose(t)
	snap[slotLeftController] = orbitPose(t, 0)
	if !c.dropout || (c.frame/240)%2 == 0 {
		snap[slotRightController] = orbitPose(t, math.Pi)
	}
	return snap, nil
}

func (c *simCompositor) Submit(eye types.Eye, texture uint32) error {
	if eye != types.EyeLeft && eye != types.EyeRight {
		// mirror the native compositor, which rejects bad indices
		return errInvalidEye
	}
	c.submits++
	return nil
}

var errInvalidEye = simError("invalid eye index")

type simError string

func (e simError) Error() string { return string(e) }

func headPose(t float32) runtime.DevicePose {
	bob := 0.01 * float32(math.Sin(float64(t*2)))
	return runtime.DevicePose{
		DeviceToAbsolute: [3][4]float32{
			{1, 0, 0, 0},
			{0, 1, 0, 1.7 + bob},
			{0, 0, 1, 0},
		},
		Velocity:  [3]float32{0, 0.02 * float32(math.Cos(float64(t*2))), 0},
		Connected: true,
		PoseValid: true,
	}
}

// orbitPose places a controller on a 0.5 m circle around the origin, facing
// along its direction of travel (yaw about +Y).
func orbitPose(t, phase float32) runtime.DevicePose {
	const radius = 0.5
	a := float64(t) + float64(phase)
	sin, cos := float32(math.Sin(a)), float32(math.Cos(a))
	return runtime.DevicePose{
		DeviceToAbsolute: [3][4]float32{
			{cos, 0, sin, radius * cos},
			{0, 1, 0, 1.2},
			{-sin, 0, cos, radius * sin},
		},
		Velocity:        [3]float32{-radius * sin, 0, radius * cos},
		AngularVelocity: [3]float32{0, 1, 0},
		Connected:       true,
		PoseValid:       true,
	}
}

type simModels struct {
	delay    int
	polls    map[string]int
	texPolls map[int32]int
}

func (m *simModels) ComponentCount(model string) uint32 {
	if model == controllerModel {
		return 2
	}
	return 0
}

func (m *simModels) ComponentName(model string, index uint32) (string, bool) {
	if model != controllerModel {
		return "", false
	}
	names := []string{"body", "trigger"}
	if int(index) >= len(names) {
		return "", false
	}
	return names[index], true
}

func (m *simModels) LoadRenderModel(name string) (*runtime.RenderModel, error) {
	if name != hmdModel {
		return nil, simError("unknown model: " + name)
	}
	return m.loadKeyed(name, 0)
}

func (m *simModels) LoadComponentModel(model, component string) (*runtime.RenderModel, error) {
	if model != controllerModel {
		return nil, simError("unknown model: " + model)
	}
	if component != "body" && component != "trigger" {
		return nil, simError("unknown component: " + component)
	}
	id := int32(1)
	if component == "trigger" {
		id = -1 // the trigger ships geometry-only
	}
	return m.loadKeyed(model+"/"+component, id)
}

// loadKeyed emulates the native asynchronous cache: the first delay polls for
// a key report in-flight, after which the asset is resident.
func (m *simModels) loadKeyed(key string, textureID int32) (*runtime.RenderModel, error) {
	m.polls[key]++
	if m.polls[key] <= m.delay {
		return nil, nil
	}
	return &runtime.RenderModel{
		Vertices: []runtime.RawVertex{
			{Position: [3]float32{-0.05, 0, -0.05}, Normal: [3]float32{0, 1, 0}, TexCoord: [2]float32{0, 0}},
			{Position: [3]float32{0.05, 0, -0.05}, Normal: [3]float32{0, 1, 0}, TexCoord: [2]float32{1, 0}},
			{Position: [3]float32{0.05, 0, 0.05}, Normal: [3]float32{0, 1, 0}, TexCoord: [2]float32{1, 1}},
			{Position: [3]float32{-0.05, 0, 0.05}, Normal: [3]float32{0, 1, 0}, TexCoord: [2]float32{0, 1}},
		},
		Indices:          []uint16{0, 1, 2, 0, 2, 3},
		DiffuseTextureID: textureID,
	}, nil
}

func (m *simModels) LoadTexture(id int32) (*runtime.Texture, error) {
	if id < 0 {
		return nil, simError("invalid texture id")
	}
	m.texPolls[id]++
	if m.texPolls[id] <= m.delay {
		return nil, nil
	}
	// 2x2 opaque white RGBA
	data := make([]byte, 16)
	for i := range data {
		data[i] = 0xff
	}
	return &runtime.Texture{Width: 2, Height: 2, Data: data}, nil
}
