package openvr

import (
	"github.com/rs/zerolog"

	"vrhal/internal/runtime"
	"vrhal/pkg/types"
)

// driver is the registered native binding. The cgo glue package (an external
// collaborator of this module) registers it from an init function; the sim
// driver is passed explicitly through InitWith instead.
var driver runtime.Driver

// RegisterDriver installs the concrete native binding used by Available and
// Init. Calling it twice replaces the previous driver.
func RegisterDriver(d runtime.Driver) { driver = d }

// Available reports whether a head-mounted display is present. It is a static
// probe, callable before any backend instance exists.
func Available() bool { return driver != nil && driver.HMDPresent() }

// Init starts a session through the registered driver and acquires every
// required subsystem. It fails as a whole if any of them is missing; a
// half-initialized backend is never returned.
func Init(kind types.ApplicationKind, log zerolog.Logger) (*Backend, error) {
	if driver == nil {
		return nil, ErrRuntimeUnavailable("no VR driver registered")
	}
	return InitWith(driver, kind, log)
}

// InitWith starts a session through an explicit driver. Tests and the
// simulated runtime use this entry point.
func InitWith(d runtime.Driver, kind types.ApplicationKind, log zerolog.Logger) (*Backend, error) {
	rt, err := d.Init(kind)
	if err != nil {
		return nil, ErrRuntimeUnavailable("runtime init: " + err.Error())
	}
	system, err := rt.System()
	if err != nil {
		rt.Shutdown()
		return nil, ErrSubsystem("system", err)
	}
	compositor, err := rt.Compositor()
	if err != nil {
		rt.Shutdown()
		return nil, ErrSubsystem("compositor", err)
	}
	models, err := rt.RenderModels()
	if err != nil {
		rt.Shutdown()
		return nil, ErrSubsystem("render models", err)
	}
	return newBackend(rt, system, compositor, models, log), nil
}
