package dispatch

import "errors"

var (
	// ErrDuplicateHandler is returned by Build when more than one handler is registered for a request type.
	ErrDuplicateHandler = errors.New("duplicate handler for request type")

	// ErrEmptyRequestType is returned by Build when a request type tag is empty.
	ErrEmptyRequestType = errors.New("request type must not be empty")

	// ErrInvalidRequestType is returned by Build when the type tag cannot be read from a request's zero value.
	ErrInvalidRequestType = errors.New("request type cannot be determined from the zero value")

	// ErrNilHandler is returned when a nil handler or handler factory is registered or resolved.
	ErrNilHandler = errors.New("handler must not be nil")

	// ErrNilBehavior is returned by Build when a nil behavior is registered.
	ErrNilBehavior = errors.New("behavior must not be nil")

	// ErrNilModule is returned by Build when a nil module is passed.
	ErrNilModule = errors.New("module must not be nil")

	// ErrBehaviorMismatch is returned by Build when a typed behavior's outcome type does not
	// match the handler registered for its request type.
	ErrBehaviorMismatch = errors.New("behavior does not match the registered handler")

	// ErrNilRegistry is returned when a bus is created without a registry.
	ErrNilRegistry = errors.New("registry must not be nil")

	// ErrHandlerPanicked wraps the value recovered from a panicking handler or behavior.
	ErrHandlerPanicked = errors.New("handler or behavior panicked")
)
