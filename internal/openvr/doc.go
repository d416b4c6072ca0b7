// Package openvr implements the engine-facing xr.Backend over a native VR
// runtime session. It is structured into small files by concern:
//
//   - backend.go: Backend type, per-frame operations, submission.
//   - driver.go: driver registration and the Available/Init entry points.
//   - errors.go: typed construction errors (IsRuntimeUnavailable, IsSubsystemUnavailable).
//
// A Backend owns the registered-set and the last pose snapshot; both live and
// die with the instance. It is driven by exactly one frame-loop thread, so no
// locking happens here. Construction is the only fatal path: every per-frame
// operation degrades to a sentinel value (zero pose, pending/unavailable
// status, skipped submission) instead of aborting.
package openvr
