package outcome_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/game-platform-go/outcome"
)

func Test_Outcome_Success_HasNoErrors(t *testing.T) {
	// act
	o := outcome.Success()

	// assert
	assert.True(t, o.IsSuccess(), "Success should report IsSuccess")
	assert.False(t, o.IsFailure(), "Success should not report IsFailure")
	assert.Empty(t, o.Errors(), "Success should carry no errors")
	assert.Empty(t, o.Summary(), "Success should have an empty summary")
}

func Test_Outcome_Failure_KeepsMessageOrder(t *testing.T) {
	// act
	o := outcome.Failure("first", "second", "third")

	// assert
	assert.True(t, o.IsFailure(), "Failure should report IsFailure")
	assert.False(t, o.IsSuccess(), "Failure should not report IsSuccess")
	assert.Equal(t, []string{"first", "second", "third"}, o.Errors(), "Errors should keep order")
	assert.Equal(t, "first; second; third", o.Summary())
}

func Test_Outcome_FailureFrom_RejectsEmptyList(t *testing.T) {
	// act
	_, errNil := outcome.FailureFrom(nil)
	_, errEmpty := outcome.FailureFrom([]string{})

	// assert
	assert.ErrorIs(t, errNil, outcome.ErrNoFailureMessages)
	assert.ErrorIs(t, errEmpty, outcome.ErrNoFailureMessages)
}

func Test_Outcome_FailureFrom_CopiesInput(t *testing.T) {
	// arrange
	messages := []string{"a", "b"}

	// act
	o, err := outcome.FailureFrom(messages)
	messages[0] = "mutated"

	// assert
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, o.Errors(), "Outcome must not share the caller's slice")
}

func Test_Outcome_New_ValidatesInvariant(t *testing.T) {
	// act
	_, successWithErrors := outcome.New(true, []string{"boom"})
	_, failureWithoutErrors := outcome.New(false, nil)
	success, successErr := outcome.New(true, nil)
	failure, failureErr := outcome.New(false, []string{"boom"})

	// assert
	assert.ErrorIs(t, successWithErrors, outcome.ErrSuccessWithMessages)
	assert.ErrorIs(t, failureWithoutErrors, outcome.ErrNoFailureMessages)
	require.NoError(t, successErr)
	require.NoError(t, failureErr)
	assert.True(t, success.IsSuccess())
	assert.Equal(t, []string{"boom"}, failure.Errors())
}

func Test_Outcome_Errors_ReturnsDefensiveCopy(t *testing.T) {
	// arrange
	o := outcome.Failure("original")

	// act
	errs := o.Errors()
	errs[0] = "mutated"

	// assert
	assert.Equal(t, []string{"original"}, o.Errors(), "Outcome must not be mutated through Errors()")
}

func Test_Outcome_Inspection_IsIdempotent(t *testing.T) {
	// arrange
	o := outcome.Failure("x", "y")

	// act + assert
	for i := 0; i < 3; i++ {
		assert.True(t, o.IsFailure())
		assert.Equal(t, []string{"x", "y"}, o.Errors())
	}
}

func Test_Outcome_Equal_IsStructural(t *testing.T) {
	assert.True(t, outcome.Failure("a", "b").Equal(outcome.Failure("a", "b")))
	assert.False(t, outcome.Failure("a", "b").Equal(outcome.Failure("b", "a")), "Order matters")
	assert.True(t, outcome.Success().Equal(outcome.Success()))
	assert.False(t, outcome.Success().Equal(outcome.Failure("a")))
	assert.Equal(t, outcome.Failure("a"), outcome.Failure("a"), "testify equality should hold too")
}

func Test_Outcome_Then_StopsAtFailure(t *testing.T) {
	// arrange
	called := false

	// act
	result := outcome.Failure("stop").Then(func() outcome.Outcome {
		called = true
		return outcome.Success()
	})

	// assert
	assert.False(t, called, "Then must not run after a failure")
	assert.Equal(t, []string{"stop"}, result.Errors())
}

func Test_Outcome_Then_ContinuesAfterSuccess(t *testing.T) {
	// act
	result := outcome.Success().Then(func() outcome.Outcome {
		return outcome.Failure("next")
	})

	// assert
	assert.Equal(t, []string{"next"}, result.Errors())
}
