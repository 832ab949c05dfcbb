package contactform

import (
	"fmt"
	"regexp"

	"github.com/summitair/website/pkg/catalog"
	"github.com/summitair/website/pkg/sanitizer"
)

// Recognised form field names. The set is fixed: fields are never added or
// removed at runtime.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldService = "service"
	FieldMessage = "message"
)

// FieldRule declares the constraints and sanitisation for one form field.
// Zero MinLen/MaxLen mean "no bound"; lengths are measured in code points.
// Pattern must match the entire sanitised value. Sanitize must be idempotent
// so re-validating already sanitised data never changes it.
type FieldRule struct {
	Field    string
	Label    string
	Required bool
	MinLen   int
	MaxLen   int
	Pattern  *regexp.Regexp
	Allowed  []string
	Sanitize func(string) string
	Check    func(string) string
	// Message is reported when Pattern does not match. Checks that need a
	// more specific message belong in Check, which reports its own text.
	Message string
}

var (
	namePattern  = regexp.MustCompile(`[\p{L} '\-]+`)
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phonePattern = regexp.MustCompile(`[0-9 ()+\-]+`)
)

// rules is the table driving Evaluate and EvaluateForm. Slice order is the
// evaluation order, which callers rely on to pick the first invalid field.
var rules = mustRules([]FieldRule{
	{
		Field:    FieldName,
		Label:    "Name",
		Required: true,
		MinLen:   2,
		MaxLen:   100,
		Pattern:  namePattern,
		Sanitize: sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.CollapseWhitespace),
		Message:  "Name may contain only letters, spaces, hyphens and apostrophes",
	},
	{
		Field:    FieldEmail,
		Label:    "Email",
		Required: true,
		MaxLen:   254,
		Pattern:  emailPattern,
		Sanitize: sanitizer.TrimToLower,
		Check:    checkEmailStructure,
		Message:  "Please enter a valid email address",
	},
	{
		Field:    FieldPhone,
		Label:    "Phone",
		Required: true,
		MinLen:   10,
		MaxLen:   20,
		Pattern:  phonePattern,
		Sanitize: sanitizer.CollapseWhitespace,
		Check:    checkPhoneDigits,
		Message:  "Phone may contain only digits, spaces, hyphens, parentheses and plus signs",
	},
	{
		Field:    FieldService,
		Label:    "Service",
		Required: true,
		Allowed:  catalog.IDs(),
		Sanitize: sanitizer.TrimToLower,
	},
	{
		Field:    FieldMessage,
		Label:    "Message",
		MaxLen:   1000,
		Sanitize: sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.Trim),
		Check:    checkMessageContent,
	},
})

// ruleIndex resolves field names to table entries for single-field lookups.
var ruleIndex = func() map[string]FieldRule {
	idx := make(map[string]FieldRule, len(rules))
	for _, r := range rules {
		idx[r.Field] = r
	}
	return idx
}()

// Fields returns the recognised field names in evaluation order.
func Fields() []string {
	fields := make([]string, len(rules))
	for i, r := range rules {
		fields[i] = r.Field
	}
	return fields
}

// RuleFor returns the table entry for a field name. The second return is
// false for names outside the table.
func RuleFor(field string) (FieldRule, bool) {
	r, ok := ruleIndex[field]
	return r, ok
}

// mustRules verifies the rule table at init. A broken table is a programming
// error, so it panics rather than surfacing per-call failures later.
func mustRules(table []FieldRule) []FieldRule {
	seen := make(map[string]bool, len(table))
	for _, r := range table {
		if r.Field == "" || r.Label == "" {
			panic(fmt.Errorf("contactform: rule %+v is missing field or label", r))
		}
		if seen[r.Field] {
			panic(fmt.Errorf("contactform: duplicate rule for field %q", r.Field))
		}
		seen[r.Field] = true
		if r.MinLen < 0 || r.MaxLen < 0 {
			panic(fmt.Errorf("contactform: field %q has a negative length bound", r.Field))
		}
		if r.MaxLen > 0 && r.MinLen > r.MaxLen {
			panic(fmt.Errorf("contactform: field %q has min length %d > max length %d", r.Field, r.MinLen, r.MaxLen))
		}
		if r.Pattern != nil && r.Message == "" {
			panic(fmt.Errorf("contactform: field %q has a pattern but no message", r.Field))
		}
	}
	return table
}
