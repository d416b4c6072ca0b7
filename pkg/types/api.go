package types

// TrackerStatus summarizes one active tracker for GET /trackers.
type TrackerStatus struct {
	// Device slot index (0..15).
	// example: 0
	Slot uint32 `json:"slot" example:"0"`
	// Whether the last resolved pose was valid.
	// example: true
	Valid bool `json:"valid" example:"true"`
	// World-space position (x, y, z) in meters.
	Position [3]float32 `json:"position"`
	// Orientation quaternion (w, x, y, z).
	Rotation [4]float32 `json:"rotation"`
	// Declared render-model component count (0 = no model, 1 = monolithic).
	// example: 1
	Components uint32 `json:"components" example:"1"`
	// Whether the device is the head-mounted display.
	// example: true
	IsCamera bool `json:"is_camera" example:"true"`
	// Render-model load state: pending, unavailable or available.
	// example: available
	ModelState string `json:"model_state" example:"available"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	// Frame-loop state (waiting, running).
	// example: running
	State string `json:"state" example:"running"`
	// Frames pumped since startup.
	// example: 5400
	Frames uint64 `json:"frames" example:"5400"`
	// Compositor wait failures recovered by reusing the previous snapshot.
	// example: 0
	WaitFailures uint64 `json:"wait_failures" example:"0"`
	// Recommended render-target width in pixels (shared by both eyes).
	// example: 1512
	TargetWidth uint32 `json:"target_width" example:"1512"`
	// Recommended render-target height in pixels.
	// example: 1680
	TargetHeight uint32 `json:"target_height" example:"1680"`
	// Currently registered trackers.
	Trackers []TrackerStatus `json:"trackers"`
	// Uptime of the daemon in seconds.
	// example: 3600
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
	// Server time in unix seconds.
	// example: 1700000000
	ServerTimeUnix int64 `json:"server_time_unix" example:"1700000000"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: unknown tracker slot
	Error string `json:"error" example:"unknown tracker slot"`
	// HTTP status code.
	// example: 404
	Code int `json:"code" example:"404"`
}
