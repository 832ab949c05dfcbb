package validator

import "regexp"

// FullMatch validates that the pattern matches the entire value, not just a
// substring. The pattern is taken pre-compiled so rule tables can share one
// compiled expression across calls.
func FullMatch(field, value string, pattern *regexp.Regexp, message string) Rule {
	return Rule{
		Check: func() bool {
			loc := pattern.FindStringIndex(value)
			return loc != nil && loc[0] == 0 && loc[1] == len(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: message,
		},
	}
}

// NotMatching validates that the pattern matches nowhere in the value.
func NotMatching(field, value string, pattern *regexp.Regexp, message string) Rule {
	return Rule{
		Check: func() bool {
			return !pattern.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: message,
		},
	}
}
