package sanitizer

import (
	"strings"
	"unicode"
)

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLower converts a string to lowercase.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// TrimToLower removes leading and trailing whitespace and converts to lowercase.
func TrimToLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// CollapseWhitespace replaces every run of whitespace characters, including
// line breaks and tabs, with a single space and trims the result.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// RemoveControlChars strips control characters, keeping printable characters
// and the common whitespace runes (tab, newline, carriage return).
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// ExtractDigits removes everything except decimal digits. Useful for counting
// the significant digits of a formatted phone number.
func ExtractDigits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}

// NormalizeEmail trims, lowercases and collapses consecutive dots in the
// local part of an address. Values without an @ are trimmed and lowercased
// only. Use it for lookup keys and deduplication; validation paths that need
// to report consecutive dots as an error should sanitize with TrimToLower
// instead, since this transform hides them.
func NormalizeEmail(s string) string {
	s = TrimToLower(s)

	at := strings.LastIndex(s, "@")
	if at < 0 {
		return s
	}

	local := s[:at]
	for strings.Contains(local, "..") {
		local = strings.ReplaceAll(local, "..", ".")
	}
	return local + s[at:]
}
