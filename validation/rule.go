package validation

import (
	"context"
	"strings"
	"unicode/utf8"
)

const (
	// CodeNotEmpty is the default code of NotEmpty rules.
	CodeNotEmpty = "not_empty"

	// CodeLength is the default code of LengthBetween rules.
	CodeLength = "length"

	// CodeInvalid is the default code of Matches rules.
	CodeInvalid = "invalid"

	// CodeRule is the default code of Must and MustAsync rules.
	CodeRule = "rule"
)

// Rule is a single predicate over an instance of T plus the error it reports when violated.
type Rule[T any] struct {
	field   string
	message string
	code    string
	async   bool
	check   func(ctx context.Context, instance T) (bool, error)
}

// RuleOption customizes a Rule.
type RuleOption func(*ruleOptions)

type ruleOptions struct {
	code string
}

// WithCode overrides the error code reported by a rule.
func WithCode(code string) RuleOption {
	return func(o *ruleOptions) {
		o.code = code
	}
}

// NotEmpty requires the accessed string field to contain non-whitespace characters.
func NotEmpty[T any](field string, get func(T) string, message string, opts ...RuleOption) Rule[T] {
	return newRule(field, message, CodeNotEmpty, opts, func(instance T) bool {
		return strings.TrimSpace(get(instance)) != ""
	})
}

// LengthBetween requires the accessed string field to have between minLen and maxLen runes, inclusive.
func LengthBetween[T any](field string, get func(T) string, minLen, maxLen int, message string, opts ...RuleOption) Rule[T] {
	return newRule(field, message, CodeLength, opts, func(instance T) bool {
		length := utf8.RuneCountInString(get(instance))
		return length >= minLen && length <= maxLen
	})
}

// Matches requires the accessed field to satisfy predicate.
func Matches[T, F any](field string, get func(T) F, predicate func(F) bool, message string, opts ...RuleOption) Rule[T] {
	return newRule(field, message, CodeInvalid, opts, func(instance T) bool {
		return predicate(get(instance))
	})
}

// Must requires the whole instance to satisfy predicate. It suits cross-field rules.
func Must[T any](field string, predicate func(T) bool, message string, opts ...RuleOption) Rule[T] {
	return newRule(field, message, CodeRule, opts, predicate)
}

// MustAsync requires the instance to satisfy a context-aware predicate, typically one doing I/O.
// A predicate error aborts validation; it is not reported as a violated rule.
// Async rules only run in ValidateContext.
func MustAsync[T any](
	field string,
	predicate func(ctx context.Context, instance T) (bool, error),
	message string,
	opts ...RuleOption,
) Rule[T] {
	return Rule[T]{
		field:   field,
		message: message,
		code:    resolveCode(CodeRule, opts),
		async:   true,
		check:   predicate,
	}
}

func newRule[T any](field, message, defaultCode string, opts []RuleOption, predicate func(T) bool) Rule[T] {
	return Rule[T]{
		field:   field,
		message: message,
		code:    resolveCode(defaultCode, opts),
		check: func(_ context.Context, instance T) (bool, error) {
			return predicate(instance), nil
		},
	}
}

func resolveCode(defaultCode string, opts []RuleOption) string {
	o := ruleOptions{code: defaultCode}
	for _, opt := range opts {
		opt(&o)
	}

	return o.code
}

func (r Rule[T]) violation() Error {
	return Error{Field: r.field, Message: r.message, Code: r.code}
}
