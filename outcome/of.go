package outcome

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// Of is a success carrying a value of type T, or a failure.
//
// The zero value is neither a valid success nor a constructed failure; it reports
// itself as a failure with a single "outcome was not constructed" message.
// Handlers returning an error alongside the zero value rely on this.
type Of[T any] struct {
	value T
	errs  []string
	ok    bool
}

// SuccessOf creates a successful Of[T] carrying value.
// It returns ErrMissingValue if the value is absent: a nil pointer, interface, map, slice,
// func or channel, or an empty string. Numeric zero values, false, and empty but non-nil
// collections are present values.
//
// The signature allows handlers to `return outcome.SuccessOf(v)` directly.
func SuccessOf[T any](value T) (Of[T], error) {
	if isAbsent(value) {
		return Of[T]{}, fmt.Errorf("%w: got absent %T", ErrMissingValue, value)
	}

	return Of[T]{value: value, ok: true}, nil
}

// MustSuccessOf is like SuccessOf but panics on a construction error.
func MustSuccessOf[T any](value T) Of[T] {
	o, err := SuccessOf(value)
	if err != nil {
		panic(err)
	}

	return o
}

// FailureOf creates a failed Of[T] with at least one error message.
func FailureOf[T any](message string, more ...string) Of[T] {
	return Of[T]{errs: Failure(message, more...).errs}
}

// FailureOfOutcome converts a failed value-less Outcome into a failed Of[T].
// A successful input has no value to carry and yields ErrMissingValue.
func FailureOfOutcome[T any](o Outcome) (Of[T], error) {
	if o.IsSuccess() {
		return Of[T]{}, ErrMissingValue
	}

	return Of[T]{errs: o.Errors()}, nil
}

// IsSuccess reports whether the outcome is a success.
func (o Of[T]) IsSuccess() bool {
	return o.ok && len(o.errs) == 0
}

// IsFailure reports whether the outcome is a failure. It is always the negation of IsSuccess.
func (o Of[T]) IsFailure() bool {
	return !o.IsSuccess()
}

// Errors returns a copy of the ordered error messages. It is empty for a success.
func (o Of[T]) Errors() []string {
	if o.IsSuccess() {
		return nil
	}

	if len(o.errs) == 0 {
		return []string{msgNotConstructed}
	}

	return slices.Clone(o.errs)
}

// Summary joins all error messages into one string. It is empty for a success.
func (o Of[T]) Summary() string {
	return strings.Join(o.Errors(), MessageSeparator)
}

// Value returns the carried value of a success.
// For a failure it returns ErrValueOfFailure and never a silent default.
func (o Of[T]) Value() (T, error) {
	if o.IsFailure() {
		var zero T
		return zero, ErrValueOfFailure
	}

	return o.value, nil
}

// MustValue returns the carried value and panics with ErrValueOfFailure on a failure.
func (o Of[T]) MustValue() T {
	value, err := o.Value()
	if err != nil {
		panic(err)
	}

	return value
}

// Bare drops the carried value and returns the value-less view of the outcome.
func (o Of[T]) Bare() Outcome {
	if o.IsSuccess() {
		return Success()
	}

	return Outcome{errs: o.Errors()}
}

// Equal reports structural equality: same success flag, same ordered error messages,
// and deeply equal values for successes.
func (o Of[T]) Equal(other Of[T]) bool {
	if o.IsSuccess() != other.IsSuccess() {
		return false
	}

	if o.IsFailure() {
		return slices.Equal(o.Errors(), other.Errors())
	}

	return reflect.DeepEqual(o.value, other.value)
}

func isAbsent[T any](value T) bool {
	v := reflect.ValueOf(any(value))
	if !v.IsValid() {
		return true
	}

	switch v.Kind() { //nolint:exhaustive
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	case reflect.String:
		return v.Len() == 0
	default:
		return false
	}
}

var _ Carrier = Of[int]{}
