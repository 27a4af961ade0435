package session

import "fmt"

// ValidationError marks input rejected before any state change. The HTTP
// layer maps it to a 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationErrf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// Sentinel state-machine failures. All are ValidationErrors so callers
// can match the class with errors.As and the specific failure with
// errors.Is.
var (
	// ErrNoActiveSession is returned by operations that require an
	// active session when the manager is idle.
	ErrNoActiveSession = &ValidationError{Msg: "no active workout session"}

	// ErrSessionActive is returned by start/continue when a session is
	// already active; finish or abandon it first.
	ErrSessionActive = &ValidationError{Msg: "a workout session is already active"}

	// ErrUnknownExercise is returned when a referenced exercise id does
	// not resolve.
	ErrUnknownExercise = &ValidationError{Msg: "unknown exercise"}
)
