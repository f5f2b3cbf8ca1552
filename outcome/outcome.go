package outcome

import (
	"errors"
	"slices"
	"strings"
)

const (
	// MessageSeparator joins multiple error messages in Summary.
	MessageSeparator = "; "

	msgNotConstructed = "outcome was not constructed"
)

var (
	// ErrNoFailureMessages is returned when a failure is constructed without any error message.
	ErrNoFailureMessages = errors.New("failure outcome requires at least one error message")

	// ErrSuccessWithMessages is returned when a success is constructed together with error messages.
	ErrSuccessWithMessages = errors.New("success outcome must not carry error messages")

	// ErrMissingValue is returned when a value-carrying success is constructed without a value.
	ErrMissingValue = errors.New("success outcome requires a present value")

	// ErrValueOfFailure is returned when the value of a failure outcome is accessed.
	ErrValueOfFailure = errors.New("value accessed on a failure outcome")
)

// Carrier is implemented by every outcome shape.
// It allows code that does not care about the carried value (pipeline behaviors, observability)
// to inspect any outcome uniformly.
type Carrier interface {
	IsSuccess() bool
	IsFailure() bool
	Errors() []string
	Bare() Outcome
}

// Outcome is a value-less success or failure.
// The zero value is a success.
type Outcome struct {
	errs []string
}

// Success creates a successful Outcome.
func Success() Outcome {
	return Outcome{}
}

// Failure creates a failed Outcome with at least one error message.
func Failure(message string, more ...string) Outcome {
	errs := make([]string, 0, 1+len(more))
	errs = append(errs, message)
	errs = append(errs, more...)

	return Outcome{errs: errs}
}

// FailureFrom creates a failed Outcome from a list of error messages.
// It returns ErrNoFailureMessages if the list is empty.
func FailureFrom(messages []string) (Outcome, error) {
	if len(messages) == 0 {
		return Outcome{}, ErrNoFailureMessages
	}

	return Outcome{errs: slices.Clone(messages)}, nil
}

// New creates an Outcome from an explicit success flag and error list,
// validating that the two agree.
func New(success bool, messages []string) (Outcome, error) {
	if success {
		if len(messages) > 0 {
			return Outcome{}, ErrSuccessWithMessages
		}

		return Success(), nil
	}

	return FailureFrom(messages)
}

// IsSuccess reports whether the Outcome is a success.
func (o Outcome) IsSuccess() bool {
	return len(o.errs) == 0
}

// IsFailure reports whether the Outcome is a failure. It is always the negation of IsSuccess.
func (o Outcome) IsFailure() bool {
	return !o.IsSuccess()
}

// Errors returns a copy of the ordered error messages. It is empty for a success.
func (o Outcome) Errors() []string {
	return slices.Clone(o.errs)
}

// Summary joins all error messages into one string. It is empty for a success.
func (o Outcome) Summary() string {
	return strings.Join(o.errs, MessageSeparator)
}

// Bare returns the Outcome itself, so that Outcome satisfies Carrier.
func (o Outcome) Bare() Outcome {
	return o
}

// Equal reports structural equality: same success flag and the same ordered error messages.
func (o Outcome) Equal(other Outcome) bool {
	return slices.Equal(o.errs, other.errs)
}

// Then runs fn only if the Outcome is a success, otherwise it returns the failure unchanged.
func (o Outcome) Then(fn func() Outcome) Outcome {
	if o.IsFailure() {
		return o
	}

	return fn()
}

var _ Carrier = Outcome{}
