package contactform

import (
	"errors"
	"fmt"
	"strings"

	"github.com/summitair/website/pkg/validator"
)

// ErrUnknownField reports a single-field lookup for a name outside the rule
// table. It is a configuration-class signal, not a validation failure: the
// result returned alongside it is valid and holds the trimmed raw value,
// since real forms may carry auxiliary fields this engine does not govern.
var ErrUnknownField = errors.New("contactform: unknown field")

// FieldResult is the outcome of evaluating one field.
// Error is non-empty exactly when Valid is false.
type FieldResult struct {
	Valid     bool
	Error     string
	Sanitized string
}

// FormResult is the outcome of evaluating a whole submission. SanitizedData
// holds an entry for every field in the rule table regardless of validity;
// Errors holds exactly the invalid fields.
type FormResult struct {
	Valid         bool
	Errors        map[string]string
	SanitizedData map[string]string
}

// FirstInvalid returns the first invalid field in evaluation order, or ""
// when the form is valid. Callers use it to decide where to place focus.
func (fr FormResult) FirstInvalid() string {
	for _, r := range rules {
		if _, ok := fr.Errors[r.Field]; ok {
			return r.Field
		}
	}
	return ""
}

// Evaluate sanitises and validates a single field value.
func Evaluate(field, raw string) (FieldResult, error) {
	rule, ok := ruleIndex[field]
	if !ok {
		return FieldResult{Valid: true, Sanitized: strings.TrimSpace(raw)},
			fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return evalRule(rule, raw), nil
}

// EvaluateForm sanitises and validates a full submission record. Keys absent
// from the record evaluate as empty; keys outside the rule table are ignored.
func EvaluateForm(record map[string]string) FormResult {
	result := FormResult{
		Valid:         true,
		Errors:        make(map[string]string),
		SanitizedData: make(map[string]string, len(rules)),
	}

	for _, rule := range rules {
		fr := evalRule(rule, record[rule.Field])
		result.SanitizedData[rule.Field] = fr.Sanitized
		if !fr.Valid {
			result.Valid = false
			result.Errors[rule.Field] = fr.Error
		}
	}

	return result
}

// evalRule runs the fixed check order against one rule, stopping at the first
// failure. The custom check runs last: it is the most expensive step and must
// not see values that already failed a cheaper constraint.
func evalRule(r FieldRule, raw string) FieldResult {
	sanitize := r.Sanitize
	if sanitize == nil {
		sanitize = strings.TrimSpace
	}
	value := sanitize(raw)

	if value == "" {
		if r.Required {
			return FieldResult{Error: r.Label + " is required", Sanitized: value}
		}
		// Optional and absent is always valid; no further checks.
		return FieldResult{Valid: true, Sanitized: value}
	}

	checks := make([]validator.Rule, 0, 4)
	if r.MinLen > 0 {
		checks = append(checks, validator.MinRunes(r.Field, value, r.MinLen))
	}
	if r.MaxLen > 0 {
		checks = append(checks, validator.MaxRunes(r.Field, value, r.MaxLen))
	}
	if r.Pattern != nil {
		checks = append(checks, validator.FullMatch(r.Field, value, r.Pattern, r.Message))
	}
	if len(r.Allowed) > 0 {
		checks = append(checks, validator.OneOf(r.Field, value, r.Allowed))
	}

	if verr := validator.First(checks...); verr != nil {
		return FieldResult{Error: verr.Message, Sanitized: value}
	}

	if r.Check != nil {
		if msg := r.Check(value); msg != "" {
			return FieldResult{Error: msg, Sanitized: value}
		}
	}

	return FieldResult{Valid: true, Sanitized: value}
}
