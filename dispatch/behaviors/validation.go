package behaviors

import (
	"context"
	"fmt"

	"github.com/AntonStoeckl/game-platform-go/dispatch"
	"github.com/AntonStoeckl/game-platform-go/outcome"
	"github.com/AntonStoeckl/game-platform-go/validation"
)

// ValidateCommand returns a typed behavior that validates commands without a declared result.
// An invalid command short-circuits with one failure message per violated rule, in rule order.
func ValidateCommand[C dispatch.Command](validator validation.Validator[C]) dispatch.Behavior[C, outcome.Outcome] {
	return func(ctx context.Context, command C, next dispatch.Next[outcome.Outcome]) (outcome.Outcome, error) {
		result, err := validator.ValidateContext(ctx, command)
		if err != nil {
			return outcome.Outcome{}, fmt.Errorf("validate %s: %w", command.CommandType(), err)
		}

		if !result.IsValid() {
			return result.Outcome(), nil
		}

		return next(ctx)
	}
}

// ValidateRequest returns a typed behavior that validates commands with a result of type R, or
// queries answered with R. An invalid request short-circuits with one failure message per
// violated rule, in rule order.
func ValidateRequest[Req any, R any](validator validation.Validator[Req]) dispatch.Behavior[Req, outcome.Of[R]] {
	return func(ctx context.Context, request Req, next dispatch.Next[outcome.Of[R]]) (outcome.Of[R], error) {
		result, err := validator.ValidateContext(ctx, request)
		if err != nil {
			return outcome.Of[R]{}, fmt.Errorf("validate %T: %w", request, err)
		}

		if !result.IsValid() {
			return outcome.FailureOfOutcome[R](result.Outcome())
		}

		return next(ctx)
	}
}

// SelfValidation is an open behavior for requests implementing validation.SelfValidating.
// Other requests pass through untouched.
type SelfValidation struct{}

// NewSelfValidation creates a SelfValidation behavior.
func NewSelfValidation() SelfValidation {
	return SelfValidation{}
}

// Handle implements dispatch.OpenBehavior.
func (SelfValidation) Handle(
	ctx context.Context,
	info dispatch.RequestInfo,
	request any,
	next dispatch.Next[outcome.Outcome],
) (outcome.Outcome, error) {
	validatable, ok := request.(validation.SelfValidating)
	if !ok {
		return next(ctx)
	}

	result, err := validatable.Validate(ctx)
	if err != nil {
		return outcome.Outcome{}, fmt.Errorf("validate %s: %w", info.Type, err)
	}

	if !result.IsValid() {
		return result.Outcome(), nil
	}

	return next(ctx)
}
