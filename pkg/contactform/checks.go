package contactform

import (
	"regexp"
	"strings"

	"github.com/summitair/website/pkg/sanitizer"
)

const (
	emailLocalPartMax = 64

	phoneDigitsMin = 10
	phoneDigitsMax = 15

	messageURLBudget = 2
)

// checkEmailStructure enforces the structural constraints the shape pattern
// cannot express with a tailored message: no consecutive dots anywhere, and a
// local part of at most 64 characters.
func checkEmailStructure(value string) string {
	if strings.Contains(value, "..") {
		return "Email must not contain consecutive dots"
	}
	if local, _, ok := strings.Cut(value, "@"); ok && len(local) > emailLocalPartMax {
		return "Email address has too many characters before the @"
	}
	return ""
}

// checkPhoneDigits counts significant digits after stripping formatting.
func checkPhoneDigits(value string) string {
	digits := sanitizer.ExtractDigits(value)
	if len(digits) < phoneDigitsMin {
		return "Phone must contain at least 10 digits"
	}
	if len(digits) > phoneDigitsMax {
		return "Phone must contain at most 15 digits"
	}
	return ""
}

// messagePatterns drives checkMessageContent. Index 0 is the URL matcher and
// is consulted only for the link budget; the unsafe-content scan starts at
// index 1. This split mirrors the long-standing behaviour of the site's
// original form handler, so URLs within the budget never trip the generic
// spam rejection.
var messagePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:https?://|www\.)\S+`),
	regexp.MustCompile(`(?i)<\s*script`),
	regexp.MustCompile(`(?i)\b(?:viagra|cialis|casino|lottery|jackpot)\b`),
	regexp.MustCompile(`(?i)\b(?:crypto(?:currency)?|bitcoin|forex)\s+(?:profit|trading|investment)s?\b`),
	regexp.MustCompile(`(?i)\b(?:work\s+from\s+home|make\s+money\s+fast|guaranteed\s+income)\b`),
}

// checkMessageContent applies the free-text content policy: at most two
// links, no script-tag-like substrings, no spam phrasing.
func checkMessageContent(value string) string {
	if len(messagePatterns[0].FindAllString(value, -1)) > messageURLBudget {
		return "Message may contain at most 2 links"
	}
	for _, re := range messagePatterns[1:] {
		if re.MatchString(value) {
			return "Message appears to contain spam or unsafe content"
		}
	}
	return ""
}
