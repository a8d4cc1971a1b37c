package event

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument reports a nil or otherwise unusable argument to a bus
// operation. It is returned synchronously, never deferred.
var ErrInvalidArgument = errors.New("event: invalid argument")

// ErrInvalidHandler reports a handler function whose shape does not satisfy
// the registration contract: exactly one parameter of a bound event type and
// no return values.
var ErrInvalidHandler = errors.New("event: invalid handler")

// HandlerInvocationError wraps a failure raised by a handler during
// dispatch. Dispatch halts on the first failing handler; remaining slots do
// not run.
type HandlerInvocationError struct {
	Kind  *Kind
	cause error
}

// Error implements the error interface.
func (e *HandlerInvocationError) Error() string {
	return fmt.Sprintf("event: handler for kind %q failed: %v", e.Kind, e.cause)
}

// Unwrap returns the underlying cause.
func (e *HandlerInvocationError) Unwrap() error {
	return e.cause
}
