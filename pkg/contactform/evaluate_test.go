package contactform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/summitair/website/pkg/contactform"
)

func TestEvaluate_Name(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		valid     bool
		sanitized string
	}{
		{name: "plain name", raw: "Jo", valid: true, sanitized: "Jo"},
		{name: "collapses internal whitespace", raw: "  John   van  Dyke ", valid: true, sanitized: "John van Dyke"},
		{name: "hyphen and apostrophe", raw: "Mary-Jane O'Neil", valid: true, sanitized: "Mary-Jane O'Neil"},
		{name: "unicode letters", raw: "Søren Ångström", valid: true, sanitized: "Søren Ångström"},
		{name: "empty fails required", raw: "", valid: false},
		{name: "whitespace-only fails required", raw: "   ", valid: false},
		{name: "single character too short", raw: "J", valid: false},
		{name: "digits rejected", raw: "Jo3", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := contactform.Evaluate(contactform.FieldName, tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.valid, result.Valid)
			if tt.valid {
				assert.Equal(t, tt.sanitized, result.Sanitized)
				assert.Empty(t, result.Error)
			} else {
				assert.NotEmpty(t, result.Error)
			}
		})
	}

	t.Run("required message names the field label", func(t *testing.T) {
		result, err := contactform.Evaluate(contactform.FieldName, "")
		require.NoError(t, err)
		assert.Equal(t, "Name is required", result.Error)
	})
}

func TestEvaluate_Email(t *testing.T) {
	t.Run("trims and lowercases before validating", func(t *testing.T) {
		result, err := contactform.Evaluate(contactform.FieldEmail, "  USER@Example.com ")
		require.NoError(t, err)
		assert.True(t, result.Valid)
		assert.Equal(t, "user@example.com", result.Sanitized)
	})

	t.Run("consecutive dots get a tailored message", func(t *testing.T) {
		result, err := contactform.Evaluate(contactform.FieldEmail, "a..b@example.com")
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Contains(t, result.Error, "consecutive dots")
	})

	t.Run("shape failures report the pattern message", func(t *testing.T) {
		for _, raw := range []string{"bad", "no-at-sign.com", "user@", "@example.com", "user@nodot"} {
			result, err := contactform.Evaluate(contactform.FieldEmail, raw)
			require.NoError(t, err)
			assert.False(t, result.Valid, "raw=%q", raw)
			assert.Equal(t, "Please enter a valid email address", result.Error, "raw=%q", raw)
		}
	})

	t.Run("local part longer than 64 rejected", func(t *testing.T) {
		local := make([]byte, 65)
		for i := range local {
			local[i] = 'a'
		}
		result, err := contactform.Evaluate(contactform.FieldEmail, string(local)+"@example.com")
		require.NoError(t, err)
		assert.False(t, result.Valid)
	})

	t.Run("address longer than 254 rejected", func(t *testing.T) {
		domain := make([]byte, 250)
		for i := range domain {
			domain[i] = 'd'
		}
		result, err := contactform.Evaluate(contactform.FieldEmail, "a@"+string(domain)+".com")
		require.NoError(t, err)
		assert.False(t, result.Valid)
	})
}

func TestEvaluate_Phone(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		valid bool
	}{
		{name: "dashed US number", raw: "555-123-4567", valid: true},
		{name: "parenthesised with country code", raw: "+1 (555) 123-4567", valid: true},
		{name: "too few digits", raw: "123", valid: false},
		{name: "ten characters but nine digits", raw: "555-123-45", valid: false},
		{name: "letters rejected", raw: "555-CALL-NOW", valid: false},
		{name: "too many digits", raw: "12345678901234567890", valid: false},
		{name: "empty fails required", raw: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := contactform.Evaluate(contactform.FieldPhone, tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.valid, result.Valid, "error=%q", result.Error)
		})
	}

	t.Run("digit count is checked on the sanitised value", func(t *testing.T) {
		result, err := contactform.Evaluate(contactform.FieldPhone, " 555 123  4567 ")
		require.NoError(t, err)
		assert.True(t, result.Valid)
		assert.Equal(t, "555 123 4567", result.Sanitized)
	})
}

func TestEvaluate_Service(t *testing.T) {
	t.Run("catalog member passes", func(t *testing.T) {
		result, err := contactform.Evaluate(contactform.FieldService, "ac-repair")
		require.NoError(t, err)
		assert.True(t, result.Valid)
	})

	t.Run("case differences are sanitised away", func(t *testing.T) {
		result, err := contactform.Evaluate(contactform.FieldService, " AC-Repair ")
		require.NoError(t, err)
		assert.True(t, result.Valid)
		assert.Equal(t, "ac-repair", result.Sanitized)
	})

	t.Run("non-member rejected", func(t *testing.T) {
		result, err := contactform.Evaluate(contactform.FieldService, "laundry")
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.NotEmpty(t, result.Error)
	})
}

func TestEvaluate_Message(t *testing.T) {
	t.Run("empty optional field is valid with no checks run", func(t *testing.T) {
		result, err := contactform.Evaluate(contactform.FieldMessage, "   ")
		require.NoError(t, err)
		assert.True(t, result.Valid)
		assert.Empty(t, result.Error)
		assert.Equal(t, "", result.Sanitized)
	})

	t.Run("ordinary message passes", func(t *testing.T) {
		result, err := contactform.Evaluate(contactform.FieldMessage, "My AC stopped cooling yesterday evening.")
		require.NoError(t, err)
		assert.True(t, result.Valid)
	})

	t.Run("over 1000 characters rejected", func(t *testing.T) {
		long := make([]byte, 1001)
		for i := range long {
			long[i] = 'x'
		}
		result, err := contactform.Evaluate(contactform.FieldMessage, string(long))
		require.NoError(t, err)
		assert.False(t, result.Valid)
	})
}

func TestEvaluate_UnknownField(t *testing.T) {
	result, err := contactform.Evaluate("newsletter_opt_in", "  yes ")
	require.ErrorIs(t, err, contactform.ErrUnknownField)

	// Unknown fields are tolerated: the result is valid and trimmed.
	assert.True(t, result.Valid)
	assert.Empty(t, result.Error)
	assert.Equal(t, "yes", result.Sanitized)
}

func TestEvaluate_Deterministic(t *testing.T) {
	for _, field := range contactform.Fields() {
		first, err1 := contactform.Evaluate(field, " Some   Value ")
		second, err2 := contactform.Evaluate(field, " Some   Value ")
		assert.Equal(t, first, second, "field %q", field)
		assert.Equal(t, err1, err2)
	}
}

func TestEvaluateForm(t *testing.T) {
	t.Run("valid submission", func(t *testing.T) {
		result := contactform.EvaluateForm(map[string]string{
			"name":    "Jo",
			"email":   "jo@x.com",
			"phone":   "555-123-4567",
			"service": "ac-repair",
			"message": "",
		})

		assert.True(t, result.Valid)
		assert.Empty(t, result.Errors)
		assert.Equal(t, "", result.SanitizedData["message"])
		assert.Equal(t, "", result.FirstInvalid())
	})

	t.Run("invalid submission collects every failing field", func(t *testing.T) {
		result := contactform.EvaluateForm(map[string]string{
			"name":    "",
			"email":   "bad",
			"phone":   "1",
			"service": "",
			"message": "",
		})

		assert.False(t, result.Valid)
		assert.Len(t, result.Errors, 4)
		for _, field := range []string{"name", "email", "phone", "service"} {
			assert.Contains(t, result.Errors, field)
		}
		assert.NotContains(t, result.Errors, "message")
		assert.Equal(t, "name", result.FirstInvalid())
	})

	t.Run("sanitized data covers every table field regardless of validity", func(t *testing.T) {
		result := contactform.EvaluateForm(map[string]string{"name": "Jo"})

		assert.False(t, result.Valid)
		assert.ElementsMatch(t, contactform.Fields(), keys(result.SanitizedData))
	})

	t.Run("missing keys default to empty", func(t *testing.T) {
		result := contactform.EvaluateForm(map[string]string{})
		assert.False(t, result.Valid)
		assert.Equal(t, "", result.SanitizedData["message"])
		assert.Contains(t, result.Errors, "name")
	})

	t.Run("unknown record keys are ignored", func(t *testing.T) {
		result := contactform.EvaluateForm(map[string]string{
			"name":     "Jo",
			"email":    "jo@x.com",
			"phone":    "555-123-4567",
			"service":  "ac-repair",
			"message":  "",
			"honeypot": "<script>",
		})

		assert.True(t, result.Valid)
		assert.NotContains(t, result.SanitizedData, "honeypot")
	})

	t.Run("invalid fields keep their sanitised value", func(t *testing.T) {
		result := contactform.EvaluateForm(map[string]string{
			"name":    "  J  ",
			"email":   "jo@x.com",
			"phone":   "555-123-4567",
			"service": "ac-repair",
		})

		assert.False(t, result.Valid)
		assert.Equal(t, "J", result.SanitizedData["name"])
	})

	t.Run("valid is the conjunction of field validity", func(t *testing.T) {
		record := map[string]string{
			"name":    "Jo",
			"email":   "jo@x.com",
			"phone":   "555-123-4567",
			"service": "ac-repair",
			"message": "",
		}
		result := contactform.EvaluateForm(record)
		assert.Equal(t, len(result.Errors) == 0, result.Valid)

		record["email"] = "nope"
		result = contactform.EvaluateForm(record)
		assert.Equal(t, len(result.Errors) == 0, result.Valid)
	})
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
