package registeraccount

import (
	"context"
	"errors"
	"strings"

	"github.com/AntonStoeckl/game-platform-go/example/shared/core"
	"github.com/AntonStoeckl/game-platform-go/validation"
)

const (
	fieldUsername = "username"
	fieldEmail    = "email"
	fieldPassword = "password"
)

// NewValidator declares the input rules for Command. Each field reports only its first violated rule.
func NewValidator() *validation.RuleSet[Command] {
	username := func(c Command) string { return c.Username }
	email := func(c Command) string { return c.Email }
	password := func(c Command) string { return c.Password }

	return validation.New(
		validation.NotEmpty(fieldUsername, username, "username is required"),
		validation.LengthBetween(fieldUsername, username, 3, 32, "username must be 3 to 32 characters"),
		validation.Matches(fieldUsername, username, validation.IsUsername,
			"username may only contain letters, digits, underscores and dashes"),
		validation.NotEmpty(fieldEmail, email, "email is required"),
		validation.Matches(fieldEmail, email, validation.IsEmail, "email must be a valid address"),
		validation.Matches(fieldPassword, password, validation.IsStrongPassword,
			"password must have at least 8 characters with upper case, lower case and a digit",
			validation.WithCode("weak_password")),
	).FirstFailurePerField()
}

// NewAvailabilityValidator declares the rules that need the account store.
// An empty username is left to the input rules.
func NewAvailabilityValidator(store AccountStore) *validation.RuleSet[Command] {
	return validation.New(
		validation.MustAsync(fieldUsername, func(ctx context.Context, c Command) (bool, error) {
			if strings.TrimSpace(c.Username) == "" {
				return true, nil
			}

			_, err := store.AccountByUsername(ctx, c.Username)
			if errors.Is(err, core.ErrNotFound) {
				return true, nil
			}

			return false, err
		}, failureReasonUsernameTaken, validation.WithCode("username_taken")),
	)
}

// NewCommandValidator combines the input rules with the availability rules.
func NewCommandValidator(store AccountStore) validation.Validator[Command] {
	return validation.Composite[Command](NewValidator(), NewAvailabilityValidator(store))
}
