// Package validator provides small declarative validation rules for string
// input. Every exported helper constructs a Rule value pairing a boolean Check
// with the field-level error to report when the check fails; rules carry no
// hidden state, so the package is stateless and goroutine-safe.
//
// Two evaluation helpers cover the common policies:
//
//   - Apply runs every rule and aggregates all failures into a
//     ValidationErrors slice that satisfies the error interface.
//   - First runs rules in declaration order and stops at the first failure,
//     for callers whose check order is part of their contract.
//
// Usage:
//
//	err := validator.Apply(
//	    validator.Required("name", name),
//	    validator.MaxRunes("name", name, 100),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // inspect field-level messages
//	}
//
// String lengths are measured in Unicode code points, not bytes, so multibyte
// input is constrained by what the user typed rather than its encoding.
package validator
