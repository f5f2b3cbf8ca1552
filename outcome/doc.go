// Package outcome provides the success/failure return shape used by every dispatched request.
//
// Two shapes exist:
//   - Outcome: a value-less success or failure (commands without a declared result)
//   - Of[T]: a success carrying a value of type T, or a failure
//
// Both keep the same invariant: a success has no error messages, a failure has at least one.
// A successful Of[T] always carries a present value; constructing one without a value
// is reported as a construction error, never represented as a valid state.
//
// Outcomes are immutable values. They are built once (by a handler, a short-circuiting
// pipeline behavior, or the bus while normalizing a failure) and passed upwards by value.
//
// Typical usage in a handler:
//
//	func (h CommandHandler) Handle(ctx context.Context, command Command) (outcome.Of[uuid.UUID], error) {
//		if exists {
//			return outcome.FailureOf[uuid.UUID]("username already exists"), nil
//		}
//
//		return outcome.SuccessOf(accountID)
//	}
//
// Accessing the value of a failure returns ErrValueOfFailure instead of a zero value:
//
//	id, err := result.Value()
//	if err != nil {
//		// result is a failure, inspect result.Errors()
//	}
package outcome
