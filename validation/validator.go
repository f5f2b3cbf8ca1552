package validation

import (
	"context"
	"fmt"
	"slices"
)

// Validator validates instances of T.
type Validator[T any] interface {
	// Validate runs the synchronous rules and collects every violation.
	Validate(instance T) Result

	// ValidateContext runs all rules, including async ones, and collects every violation.
	// An error is returned only if a rule could not be evaluated.
	ValidateContext(ctx context.Context, instance T) (Result, error)
}

// SelfValidating is implemented by requests that carry their own validation.
type SelfValidating interface {
	Validate(ctx context.Context) (Result, error)
}

// RuleSet is a Validator backed by a fixed, ordered list of rules.
type RuleSet[T any] struct {
	rules                []Rule[T]
	firstFailurePerField bool
}

// New creates a RuleSet from rules. Rules are evaluated in the given order.
func New[T any](rules ...Rule[T]) *RuleSet[T] {
	return &RuleSet[T]{rules: slices.Clone(rules)}
}

// With returns a new RuleSet with additional rules appended. The receiver is not modified.
func (s *RuleSet[T]) With(rules ...Rule[T]) *RuleSet[T] {
	combined := make([]Rule[T], 0, len(s.rules)+len(rules))
	combined = append(combined, s.rules...)
	combined = append(combined, rules...)

	return &RuleSet[T]{rules: combined, firstFailurePerField: s.firstFailurePerField}
}

// FirstFailurePerField returns a new RuleSet that reports at most one violation per field:
// once a rule for a field is violated, the remaining rules for that field are skipped.
// Rules for other fields still run. The receiver is not modified.
func (s *RuleSet[T]) FirstFailurePerField() *RuleSet[T] {
	return &RuleSet[T]{rules: slices.Clone(s.rules), firstFailurePerField: true}
}

// Validate runs the synchronous rules. Async rules are skipped.
func (s *RuleSet[T]) Validate(instance T) Result {
	var errs []Error

	for _, rule := range s.rules {
		if rule.async || s.skips(rule, errs) {
			continue
		}

		ok, _ := rule.check(context.Background(), instance) // synchronous checks never fail
		if !ok {
			errs = append(errs, rule.violation())
		}
	}

	return Result{errs: errs}
}

// ValidateContext runs all rules in declaration order.
// It stops early only when ctx is done or a rule fails to evaluate.
func (s *RuleSet[T]) ValidateContext(ctx context.Context, instance T) (Result, error) {
	var errs []Error

	for _, rule := range s.rules {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		if s.skips(rule, errs) {
			continue
		}

		ok, err := rule.check(ctx, instance)
		if err != nil {
			return Result{}, fmt.Errorf("evaluate rule for %s: %w", rule.field, err)
		}

		if !ok {
			errs = append(errs, rule.violation())
		}
	}

	return Result{errs: errs}, nil
}

func (s *RuleSet[T]) skips(rule Rule[T], violations []Error) bool {
	return s.firstFailurePerField && slices.ContainsFunc(violations, func(e Error) bool {
		return e.Field == rule.field
	})
}

// Len returns the number of rules.
func (s *RuleSet[T]) Len() int {
	return len(s.rules)
}

type composite[T any] struct {
	validators []Validator[T]
}

// Composite combines validators, e.g. structural rules and business rules.
// All validators run; their errors are concatenated in argument order.
func Composite[T any](validators ...Validator[T]) Validator[T] {
	return composite[T]{validators: slices.Clone(validators)}
}

func (c composite[T]) Validate(instance T) Result {
	result := Valid()
	for _, v := range c.validators {
		result = result.Merge(v.Validate(instance))
	}

	return result
}

func (c composite[T]) ValidateContext(ctx context.Context, instance T) (Result, error) {
	result := Valid()
	for _, v := range c.validators {
		r, err := v.ValidateContext(ctx, instance)
		if err != nil {
			return Result{}, err
		}

		result = result.Merge(r)
	}

	return result, nil
}

var _ Validator[struct{}] = (*RuleSet[struct{}])(nil)
var _ Validator[struct{}] = composite[struct{}]{}
