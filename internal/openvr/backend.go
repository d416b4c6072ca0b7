package openvr

import (
	"github.com/rs/zerolog"

	"vrhal/internal/rendermodel"
	"vrhal/internal/runtime"
	"vrhal/internal/stereo"
	"vrhal/internal/tracking"
	"vrhal/pkg/types"
	"vrhal/pkg/xr"
)

// Backend is the concrete xr.Backend over one native runtime session.
type Backend struct {
	rt         runtime.Runtime
	system     runtime.System
	compositor runtime.Compositor
	models     *rendermodel.Resolver
	stereo     *stereo.Calculator

	registry tracking.Registry
	last     *runtime.PoseSnapshot

	waitFailures uint64

	log zerolog.Logger
}

var _ xr.Backend = (*Backend)(nil)

func newBackend(rt runtime.Runtime, system runtime.System, compositor runtime.Compositor,
	models runtime.RenderModels, log zerolog.Logger) *Backend {
	return &Backend{
		rt:         rt,
		system:     system,
		compositor: compositor,
		models:     rendermodel.New(system, models),
		stereo:     stereo.New(system),
		log:        log.With().Str("component", "backend").Logger(),
	}
}

// Wait drains queued runtime events and blocks on the compositor for the next
// pose snapshot. Tracker lifecycle never depends on the event stream; events
// are only logged. A wait failure keeps the previous snapshot in place.
func (b *Backend) Wait() {
	for {
		ev, ok := b.system.PollNextEvent()
		if !ok {
			break
		}
		b.log.Debug().Uint32("type", ev.Type).Uint32("slot", ev.Slot).Msg("runtime event")
	}

	snap, err := b.compositor.WaitGetPoses()
	if err != nil {
		b.waitFailures++
		b.log.Warn().Err(err).Msg("compositor wait failed, keeping previous snapshot")
		return
	}
	b.last = &snap
}

// WaitFailures reports how many waits were recovered by reusing the previous
// snapshot. Diagnostic only; read from the owning frame-loop thread.
func (b *Backend) WaitFailures() uint64 { return b.waitFailures }

// NewTrackers reports newly connected slots with their capabilities, in
// ascending slot order. See tracking.Registry for the diffing rules.
func (b *Backend) NewTrackers() []types.NewTracker {
	slots := b.registry.Added(b.last)
	if slots == nil {
		return nil
	}
	out := make([]types.NewTracker, len(slots))
	for i, s := range slots {
		out[i] = types.NewTracker{Slot: s, Capabilities: b.models.Capabilities(s)}
	}
	return out
}

// RemovedTrackers reports slots whose connectivity dropped since the last call.
func (b *Backend) RemovedTrackers() []uint32 {
	return b.registry.Removed(b.last)
}

// TrackerPose resolves the slot's pose from the last snapshot. Before any
// snapshot has been captured it returns the zero pose without touching the
// runtime.
func (b *Backend) TrackerPose(slot uint32) types.TrackerPose {
	if b.last == nil || slot >= runtime.MaxTrackedDevices {
		return types.TrackerPose{}
	}
	return tracking.ResolvePose(b.last[slot])
}

// TrackerCapabilities recomputes the slot's capabilities on every query.
func (b *Backend) TrackerCapabilities(slot uint32) types.TrackerCapabilities {
	return b.models.Capabilities(slot)
}

// TrackerModels polls the slot's render-model load status.
func (b *Backend) TrackerModels(slot uint32) types.ModelStatus {
	return b.models.Status(slot)
}

// TargetInfo computes per-eye target parameters for the given clip planes.
func (b *Backend) TargetInfo(near, far float32) [2]types.StereoTarget {
	return b.stereo.TargetInfo(near, far)
}

// SubmitTarget hands a rendered GL texture to the compositor for one eye.
// An out-of-range eye index is a caller contract violation: logged, no-op.
// A compositor failure is logged and swallowed; one eye's dropped frame is
// recoverable, a crashed frame loop is not.
func (b *Backend) SubmitTarget(eye types.Eye, texture uint32) {
	if eye != types.EyeLeft && eye != types.EyeRight {
		b.log.Error().Int("eye", int(eye)).Msg("invalid eye index on submit")
		return
	}
	if err := b.compositor.Submit(eye, texture); err != nil {
		b.log.Warn().Err(err).Stringer("eye", eye).Msg("compositor submit failed")
	}
}

// Close releases the underlying runtime session.
func (b *Backend) Close() {
	b.rt.Shutdown()
}
