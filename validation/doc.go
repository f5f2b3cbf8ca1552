// Package validation provides rule-based validators that collect every violation of a request
// in one pass.
//
// A Validator is assembled from declarative rules. Each rule has a field name, a failure message
// and an optional error code:
//
//	validator := validation.New(
//		validation.NotEmpty("Username", func(c Command) string { return c.Username }, "username must not be empty"),
//		validation.LengthBetween("Username", func(c Command) string { return c.Username }, 3, 32,
//			"username must be between 3 and 32 characters"),
//		validation.Matches("Email", func(c Command) string { return c.Email }, validation.IsEmail,
//			"email must be a valid e-mail address"),
//	)
//
//	result := validator.Validate(command)
//	if !result.IsValid() {
//		// result.Messages() holds one message per violated rule, in declaration order
//	}
//
// Rules that need I/O (uniqueness checks against a store, for example) are declared with MustAsync
// and only run by ValidateContext.
//
// Validators are plugged into the dispatch pipeline by the behaviors package, ahead of the handler.
package validation
