package openvr

// runtimeUnavailableError signals that the native runtime is absent or could
// not start a session.
type runtimeUnavailableError struct{ msg string }

func (e runtimeUnavailableError) Error() string { return e.msg }

// ErrRuntimeUnavailable constructs a runtimeUnavailableError.
func ErrRuntimeUnavailable(msg string) error { return runtimeUnavailableError{msg: msg} }

// IsRuntimeUnavailable reports whether err indicates a missing native runtime.
func IsRuntimeUnavailable(err error) bool {
	_, ok := err.(runtimeUnavailableError)
	return ok
}

// subsystemError signals that a required runtime subsystem (device tracking,
// compositor, render-model cache) could not be acquired during init.
type subsystemError struct {
	name string
	err  error
}

func (e subsystemError) Error() string { return "acquire " + e.name + ": " + e.err.Error() }

func (e subsystemError) Unwrap() error { return e.err }

// ErrSubsystem constructs a subsystemError for the named subsystem.
func ErrSubsystem(name string, err error) error { return subsystemError{name: name, err: err} }

// IsSubsystemUnavailable reports whether err indicates a subsystem acquisition failure.
func IsSubsystemUnavailable(err error) bool {
	_, ok := err.(subsystemError)
	return ok
}
