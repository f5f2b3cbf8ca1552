package validation

import (
	"cmp"
	"regexp"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
)

const minPasswordLength = 8

var (
	emailPattern    = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_\-]+$`)
)

// IsEmail reports whether s has the shape of an e-mail address.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsUsername reports whether s only contains letters, digits, underscores and hyphens.
func IsUsername(s string) bool {
	return usernamePattern.MatchString(s)
}

// IsStrongPassword reports whether s has at least 8 characters including an upper-case letter,
// a lower-case letter and a digit.
func IsStrongPassword(s string) bool {
	if utf8.RuneCountInString(s) < minPasswordLength {
		return false
	}

	var upper, lower, digit bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}

	return upper && lower && digit
}

// InRange returns a predicate accepting values between lo and hi, inclusive.
func InRange[N cmp.Ordered](lo, hi N) func(N) bool {
	return func(v N) bool {
		return v >= lo && v <= hi
	}
}

// IsOptionalUUID reports whether s is empty or a valid UUID.
func IsOptionalUUID(s string) bool {
	if s == "" {
		return true
	}

	_, err := uuid.Parse(s)

	return err == nil
}

// OneOf returns a predicate accepting only the given values.
func OneOf[V comparable](allowed ...V) func(V) bool {
	set := make(map[V]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}

	return func(v V) bool {
		_, ok := set[v]
		return ok
	}
}
