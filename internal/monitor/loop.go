// Package monitor drives a backend's frame loop the way an engine would:
// wait, diff trackers, resolve poses, poll render models to a terminal state.
// It publishes read-only status snapshots for the diagnostics API; the HTTP
// layer never touches the backend directly, so the backend stays owned by a
// single thread.
package monitor

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"vrhal/internal/runtime"
	"vrhal/pkg/types"
	"vrhal/pkg/xr"
)

// trackerState is the loop's bookkeeping for one registered slot.
type trackerState struct {
	caps  types.TrackerCapabilities
	pose  types.TrackerPose
	model types.ModelStatus
}

// Loop owns a backend and pumps it until the context ends.
type Loop struct {
	backend xr.Backend
	near    float32
	far     float32
	log     zerolog.Logger

	trackers [runtime.MaxTrackedDevices]*trackerState
	frames   uint64
	lastWF   uint64
	start    time.Time

	mu     sync.RWMutex
	status types.StatusResponse
}

// New builds a loop over an exclusively owned backend.
func New(backend xr.Backend, near, far float32, log zerolog.Logger) *Loop {
	l := &Loop{
		backend: backend,
		near:    near,
		far:     far,
		log:     log.With().Str("component", "monitor").Logger(),
		start:   time.Now(),
	}
	l.status = types.StatusResponse{State: "waiting", Trackers: []types.TrackerStatus{}}
	return l
}

// Run pumps frames until ctx is done. It must be the only goroutine touching
// the backend.
func (l *Loop) Run(ctx context.Context) {
	targets := l.backend.TargetInfo(l.near, l.far)
	l.log.Info().
		Uint32("width", targets[0].Width).
		Uint32("height", targets[0].Height).
		Msg("recommended render target size")

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		l.step(targets)
	}
}

// step advances one frame: the control flow an engine consumer follows.
func (l *Loop) step(targets [2]types.StereoTarget) {
	waitStart := time.Now()
	l.backend.Wait()
	frameWaitDuration.Observe(time.Since(waitStart).Seconds())
	l.frames++
	framesTotal.Inc()

	if wc, ok := l.backend.(interface{ WaitFailures() uint64 }); ok {
		if wf := wc.WaitFailures(); wf > l.lastWF {
			waitFailuresTotal.Add(float64(wf - l.lastWF))
			l.lastWF = wf
		}
	}

	for _, nt := range l.backend.NewTrackers() {
		l.log.Info().
			Uint32("slot", nt.Slot).
			Uint32("components", nt.Capabilities.RenderModelComponents).
			Bool("is_camera", nt.Capabilities.IsCamera).
			Msg("tracker added")
		model := types.PendingStatus()
		if nt.Capabilities.RenderModelComponents == 0 {
			model = types.UnavailableStatus()
		}
		l.trackers[nt.Slot] = &trackerState{caps: nt.Capabilities, model: model}
		trackersActive.Inc()
	}
	for _, slot := range l.backend.RemovedTrackers() {
		l.log.Info().Uint32("slot", slot).Msg("tracker removed")
		l.trackers[slot] = nil
		trackersActive.Dec()
	}

	for slot, ts := range l.trackers {
		if ts == nil {
			continue
		}
		ts.pose = l.backend.TrackerPose(uint32(slot))
		if !ts.model.Terminal() {
			ts.model = l.backend.TrackerModels(uint32(slot))
			if ts.model.Terminal() {
				modelResolutionsTotal.WithLabelValues(ts.model.State().String()).Inc()
				l.log.Info().
					Int("slot", slot).
					Stringer("state", ts.model.State()).
					Int("parts", len(ts.model.Components())).
					Msg("render model resolved")
			}
		}
	}

	l.publish(targets)
}

// publish replaces the shared status snapshot.
func (l *Loop) publish(targets [2]types.StereoTarget) {
	resp := types.StatusResponse{
		State:        "running",
		Frames:       l.frames,
		WaitFailures: l.lastWF,
		TargetWidth:  targets[0].Width,
		TargetHeight: targets[0].Height,
		Trackers:     make([]types.TrackerStatus, 0, len(l.trackers)),
	}
	for slot, ts := range l.trackers {
		if ts == nil {
			continue
		}
		resp.Trackers = append(resp.Trackers, types.TrackerStatus{
			Slot:  uint32(slot),
			Valid: ts.pose.Valid,
			Position: [3]float32{
				ts.pose.Position.X(), ts.pose.Position.Y(), ts.pose.Position.Z(),
			},
			Rotation: [4]float32{
				ts.pose.Rotation.W, ts.pose.Rotation.X(), ts.pose.Rotation.Y(), ts.pose.Rotation.Z(),
			},
			Components: ts.caps.RenderModelComponents,
			IsCamera:   ts.caps.IsCamera,
			ModelState: ts.model.State().String(),
		})
	}

	l.mu.Lock()
	l.status = resp
	l.mu.Unlock()
}

// Status returns the latest published snapshot with fresh time fields.
func (l *Loop) Status() types.StatusResponse {
	l.mu.RLock()
	resp := l.status
	resp.Trackers = append([]types.TrackerStatus(nil), l.status.Trackers...)
	l.mu.RUnlock()
	resp.UptimeSeconds = int64(time.Since(l.start).Seconds())
	resp.ServerTimeUnix = time.Now().Unix()
	return resp
}

// Trackers returns the latest published tracker list.
func (l *Loop) Trackers() []types.TrackerStatus {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]types.TrackerStatus(nil), l.status.Trackers...)
}

// Ready reports whether at least one frame has been pumped.
func (l *Loop) Ready() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.status.State == "running"
}
