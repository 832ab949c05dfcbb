package validator

import (
	"fmt"
	"slices"
	"strings"
)

// OneOf validates that a string is a member of a closed vocabulary.
func OneOf(field, value string, allowed []string) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(allowed, value)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
		},
	}
}

// OneOfWithMessage is OneOf with a caller-supplied message, for closed sets
// whose members should not be echoed back to the user.
func OneOfWithMessage(field, value string, allowed []string, message string) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(allowed, value)
		},
		Error: ValidationError{
			Field:   field,
			Message: message,
		},
	}
}
