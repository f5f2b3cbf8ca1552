package validation

import (
	"slices"

	"github.com/AntonStoeckl/game-platform-go/outcome"
)

// Error describes one violated rule.
type Error struct {
	Field   string
	Message string
	Code    string
}

// Result aggregates zero or more validation errors. It is valid iff the error list is empty.
type Result struct {
	errs []Error
}

// Valid returns a Result without errors.
func Valid() Result {
	return Result{}
}

// Invalid returns a Result with the given errors.
func Invalid(errs ...Error) Result {
	return Result{errs: slices.Clone(errs)}
}

// IsValid reports whether no rule was violated.
func (r Result) IsValid() bool {
	return len(r.errs) == 0
}

// Errors returns a copy of the collected errors in rule-declaration order.
func (r Result) Errors() []Error {
	return slices.Clone(r.errs)
}

// Messages returns the message of every collected error in rule-declaration order.
func (r Result) Messages() []string {
	messages := make([]string, 0, len(r.errs))
	for _, e := range r.errs {
		messages = append(messages, e.Message)
	}

	return messages
}

// Merge concatenates the errors of r and other.
func (r Result) Merge(other Result) Result {
	if other.IsValid() {
		return r
	}

	merged := make([]Error, 0, len(r.errs)+len(other.errs))
	merged = append(merged, r.errs...)
	merged = append(merged, other.errs...)

	return Result{errs: merged}
}

// Outcome translates the Result into an outcome: a success if valid, otherwise a failure
// carrying one message per error.
func (r Result) Outcome() outcome.Outcome {
	if r.IsValid() {
		return outcome.Success()
	}

	failure, _ := outcome.FailureFrom(r.Messages()) // never empty here

	return failure
}
