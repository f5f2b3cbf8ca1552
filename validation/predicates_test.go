package validation_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/game-platform-go/validation"
)

func Test_IsEmail(t *testing.T) {
	assert.True(t, validation.IsEmail("ayla@example.com"))
	assert.True(t, validation.IsEmail("first.last+tag@sub.example.org"))
	assert.False(t, validation.IsEmail("ayla@"))
	assert.False(t, validation.IsEmail("ayla.example.com"))
	assert.False(t, validation.IsEmail(""))
}

func Test_IsUsername(t *testing.T) {
	assert.True(t, validation.IsUsername("dark_knight-42"))
	assert.False(t, validation.IsUsername("dark knight"))
	assert.False(t, validation.IsUsername("ayla!"))
	assert.False(t, validation.IsUsername(""))
}

func Test_IsStrongPassword(t *testing.T) {
	assert.True(t, validation.IsStrongPassword("Sw0rdfish"))
	assert.False(t, validation.IsStrongPassword("Sw0rd"), "too short")
	assert.False(t, validation.IsStrongPassword("swordfish1"), "no upper-case letter")
	assert.False(t, validation.IsStrongPassword("SWORDFISH1"), "no lower-case letter")
	assert.False(t, validation.IsStrongPassword("Swordfish"), "no digit")
}

func Test_InRange(t *testing.T) {
	inRange := validation.InRange(1, 99)

	assert.True(t, inRange(1))
	assert.True(t, inRange(99))
	assert.False(t, inRange(0))
	assert.False(t, inRange(100))
}

func Test_IsOptionalUUID(t *testing.T) {
	assert.True(t, validation.IsOptionalUUID(""))
	assert.True(t, validation.IsOptionalUUID(uuid.NewString()))
	assert.False(t, validation.IsOptionalUUID("not-a-uuid"))
}

func Test_OneOf(t *testing.T) {
	isClass := validation.OneOf("warrior", "mage")

	assert.True(t, isClass("mage"))
	assert.False(t, isClass("bard"))
}
