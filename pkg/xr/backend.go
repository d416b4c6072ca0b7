// Package xr defines the engine-facing capability interface of the hardware
// abstraction layer. Engines program against Backend and never see a concrete
// runtime's types, so runtimes can be swapped without touching engine code.
package xr

import "vrhal/pkg/types"

// Backend is the per-frame contract between an engine and a VR runtime.
//
// A Backend instance is exclusively owned and driven by one frame-loop thread:
// one Wait per frame, then registry and pose queries against the captured
// snapshot. None of the query methods block; model resolution returns a
// pending status that the caller re-queries on a later frame.
type Backend interface {
	// Wait advances one frame. It blocks until the runtime delivers fresh pose
	// data; on failure the previous snapshot is retained and a warning logged.
	Wait()

	// NewTrackers reports slots whose connectivity flipped to connected since
	// the last call, with their capabilities, in ascending slot order. The
	// first call after a snapshot exists reports every connected slot. Returns
	// nil when nothing changed or no snapshot has been captured yet.
	NewTrackers() []types.NewTracker

	// RemovedTrackers reports slots whose connectivity dropped, ascending.
	// A slot is only ever reported removed after having been reported new.
	RemovedTrackers() []uint32

	// TrackerPose resolves the slot's pose from the last snapshot. Before any
	// snapshot exists it returns the zero pose with Valid=false.
	TrackerPose(slot uint32) types.TrackerPose

	// TrackerCapabilities recomputes the slot's capabilities from its current
	// device properties; results are not cached.
	TrackerCapabilities(slot uint32) types.TrackerCapabilities

	// TrackerModels polls the slot's render-model load. Callers re-query while
	// the status is pending; available and unavailable are terminal.
	TrackerModels(slot uint32) types.ModelStatus

	// TargetInfo computes per-eye target size, view offset and projection for
	// the given clip planes. Index 0 is the left eye, index 1 the right.
	TargetInfo(near, far float32) [2]types.StereoTarget

	// SubmitTarget hands a rendered GL texture to the compositor for one eye.
	// An invalid eye or a compositor failure is logged and swallowed; one
	// dropped eye never aborts the frame loop.
	SubmitTarget(eye types.Eye, texture uint32)

	// Close releases the underlying runtime session.
	Close()
}
