package createcharacter

import (
	"strings"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/game-platform-go/example/shared/core"
	"github.com/AntonStoeckl/game-platform-go/validation"
)

// NewValidator declares the input rules for Command. Each field reports only its first violated rule.
func NewValidator() *validation.RuleSet[Command] {
	name := func(c Command) string { return c.Name }
	class := func(c Command) string { return c.Class }

	return validation.New(
		validation.Must("accountId", func(c Command) bool { return c.AccountID != uuid.Nil }, "account id is required"),
		validation.NotEmpty("name", name, "name is required"),
		validation.LengthBetween("name", name, 3, 20, "name must be 3 to 20 characters"),
		validation.Matches("name", name, validation.IsUsername,
			"name may only contain letters, digits, underscores and dashes"),
		validation.Matches("class", class, validation.OneOf(core.CharacterClasses...),
			"class must be one of "+strings.Join(core.CharacterClasses, ", ")),
	).FirstFailurePerField()
}
