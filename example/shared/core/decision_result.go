package core

// DecisionResult represents the outcome of a business decision in a Decide function.
// Change carries the entity state (or states) that must be saved for a success decision.
//
// IMPORTANT: DecisionResult should only be constructed using the provided factory methods:
// IdempotentDecision(), SuccessDecision(change), or FailureDecision(reason).
type DecisionResult[T any] struct {
	Outcome string // "idempotent", "success", or "failure"
	Change  T      // zero for idempotent and failure decisions
	Reason  string // business reason for failure decisions
}

const (
	idempotentOutcome = "idempotent"
	successOutcome    = "success"
	failureOutcome    = "failure"
)

// IdempotentDecision creates a DecisionResult indicating no state change is needed.
func IdempotentDecision[T any]() DecisionResult[T] {
	return DecisionResult[T]{Outcome: idempotentOutcome}
}

// SuccessDecision creates a DecisionResult with a state change to save.
func SuccessDecision[T any](change T) DecisionResult[T] {
	return DecisionResult[T]{Outcome: successOutcome, Change: change}
}

// FailureDecision creates a DecisionResult indicating a business rule violation.
func FailureDecision[T any](reason string) DecisionResult[T] {
	return DecisionResult[T]{Outcome: failureOutcome, Reason: reason}
}

// HasChangeToSave returns true if there is a state change to save.
func (r DecisionResult[T]) HasChangeToSave() bool {
	return r.Outcome == successOutcome
}

// IsFailure returns true if a business rule was violated.
func (r DecisionResult[T]) IsFailure() bool {
	return r.Outcome == failureOutcome
}
