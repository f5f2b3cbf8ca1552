package validation_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/game-platform-go/validation"
)

type signup struct {
	Username string
	Email    string
	Password string
	Age      int
}

func username(s signup) string { return s.Username }
func email(s signup) string    { return s.Email }

func newSignupValidator() *validation.RuleSet[signup] {
	return validation.New(
		validation.NotEmpty("Username", username, "username must not be empty"),
		validation.Matches("Email", email, validation.IsEmail, "email must be valid"),
		validation.Matches("Age", func(s signup) int { return s.Age }, validation.InRange(13, 120),
			"age must be between 13 and 120", validation.WithCode("age_range")),
	)
}

func Test_RuleSet_Validate_ValidInstance(t *testing.T) {
	// arrange
	validator := newSignupValidator()

	// act
	result := validator.Validate(signup{Username: "ayla", Email: "ayla@example.com", Age: 30})

	// assert
	assert.True(t, result.IsValid())
	assert.Empty(t, result.Errors())
	assert.True(t, result.Outcome().IsSuccess())
}

func Test_RuleSet_Validate_CollectsEveryViolationInOrder(t *testing.T) {
	// arrange
	validator := newSignupValidator()

	// act
	result := validator.Validate(signup{Username: "  ", Email: "not-an-email", Age: 7})

	// assert
	assert.False(t, result.IsValid())
	assert.Equal(t, []string{
		"username must not be empty",
		"email must be valid",
		"age must be between 13 and 120",
	}, result.Messages())
	assert.Equal(t, validation.Error{Field: "Username", Message: "username must not be empty", Code: validation.CodeNotEmpty},
		result.Errors()[0])
	assert.Equal(t, "age_range", result.Errors()[2].Code, "WithCode should override the default code")
	assert.Equal(t, result.Messages(), result.Outcome().Errors(), "Outcome should carry one message per error")
}

func Test_RuleSet_LengthBetween_CountsRunes(t *testing.T) {
	// arrange
	validator := validation.New(
		validation.LengthBetween("Username", username, 3, 5, "username must be 3 to 5 characters"),
	)

	// assert
	assert.True(t, validator.Validate(signup{Username: "äöü"}).IsValid())
	assert.False(t, validator.Validate(signup{Username: "ab"}).IsValid())
	assert.False(t, validator.Validate(signup{Username: "abcdef"}).IsValid())
}

func Test_RuleSet_Validate_SkipsAsyncRules(t *testing.T) {
	// arrange
	called := false
	validator := validation.New(
		validation.MustAsync("Username", func(context.Context, signup) (bool, error) {
			called = true
			return false, nil
		}, "username already taken"),
	)

	// act
	result := validator.Validate(signup{Username: "ayla"})

	// assert
	assert.True(t, result.IsValid())
	assert.False(t, called, "Async rules must only run in ValidateContext")
}

func Test_RuleSet_ValidateContext_RunsAsyncRules(t *testing.T) {
	// arrange
	validator := newSignupValidator().With(
		validation.MustAsync("Username", func(_ context.Context, s signup) (bool, error) {
			return s.Username != "taken", nil
		}, "username already taken"),
	)

	// act
	result, err := validator.ValidateContext(context.Background(), signup{Username: "taken", Email: "x", Age: 20})

	// assert
	require.NoError(t, err)
	assert.Equal(t, []string{"email must be valid", "username already taken"}, result.Messages())
	assert.Equal(t, 3, newSignupValidator().Len(), "With must not modify the receiver")
}

func Test_RuleSet_ValidateContext_RuleErrorAborts(t *testing.T) {
	// arrange
	storeDown := errors.New("store down")
	validator := validation.New(
		validation.MustAsync("Username", func(context.Context, signup) (bool, error) {
			return false, storeDown
		}, "username already taken"),
	)

	// act
	_, err := validator.ValidateContext(context.Background(), signup{})

	// assert
	assert.ErrorIs(t, err, storeDown)
}

func Test_RuleSet_ValidateContext_CanceledContext(t *testing.T) {
	// arrange
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// act
	_, err := newSignupValidator().ValidateContext(ctx, signup{})

	// assert
	assert.ErrorIs(t, err, context.Canceled)
}

func Test_Composite_ConcatenatesResults(t *testing.T) {
	// arrange
	structural := validation.New(validation.NotEmpty("Username", username, "username must not be empty"))
	business := validation.New(validation.Must("Password", func(s signup) bool {
		return s.Password != s.Username
	}, "password must differ from username"))

	validator := validation.Composite[signup](structural, business)

	// act
	result := validator.Validate(signup{})
	contextResult, err := validator.ValidateContext(context.Background(), signup{})

	// assert
	require.NoError(t, err)
	assert.Equal(t, []string{"username must not be empty", "password must differ from username"}, result.Messages())
	assert.Equal(t, result, contextResult)
}

func newChainedUsernameRules() *validation.RuleSet[signup] {
	return validation.New(
		validation.NotEmpty("Username", username, "username must not be empty"),
		validation.LengthBetween("Username", username, 3, 32, "username must be 3 to 32 characters"),
		validation.Matches("Username", username, validation.IsUsername, "username has invalid characters"),
		validation.Matches("Email", email, validation.IsEmail, "email must be valid"),
	)
}

func Test_RuleSet_FirstFailurePerField_ReportsOneViolationPerField(t *testing.T) {
	// arrange
	validator := newChainedUsernameRules().FirstFailurePerField()

	// act
	empty := validator.Validate(signup{Username: "", Email: "not-an-email"})
	short := validator.Validate(signup{Username: "a!", Email: "ayla@example.com"})

	// assert
	assert.Equal(t, []string{"username must not be empty", "email must be valid"}, empty.Messages())
	assert.Equal(t, []string{"username must be 3 to 32 characters"}, short.Messages())
}

func Test_RuleSet_FirstFailurePerField_LeavesReceiverUnchanged(t *testing.T) {
	// arrange
	all := newChainedUsernameRules()

	// act
	first := all.FirstFailurePerField().With(
		validation.Must("Username", func(signup) bool { return false }, "username is reserved"))

	// assert
	assert.Len(t, all.Validate(signup{Email: "ayla@example.com"}).Messages(), 3)
	assert.Equal(t, []string{"username must not be empty"}, first.Validate(signup{Email: "ayla@example.com"}).Messages())
	assert.Equal(t, 5, first.Len())
}

func Test_RuleSet_FirstFailurePerField_SkipsAsyncRulesOfFailedFields(t *testing.T) {
	// arrange
	lookups := 0
	validator := validation.New(
		validation.NotEmpty("Username", username, "username must not be empty"),
		validation.MustAsync("Username", func(context.Context, signup) (bool, error) {
			lookups++
			return false, nil
		}, "username already exists"),
	).FirstFailurePerField()

	// act
	empty, emptyErr := validator.ValidateContext(context.Background(), signup{})
	taken, takenErr := validator.ValidateContext(context.Background(), signup{Username: "ayla"})

	// assert
	require.NoError(t, emptyErr)
	require.NoError(t, takenErr)
	assert.Equal(t, []string{"username must not be empty"}, empty.Messages())
	assert.Equal(t, []string{"username already exists"}, taken.Messages())
	assert.Equal(t, 1, lookups)
}
