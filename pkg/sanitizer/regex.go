package sanitizer

import "regexp"

// Pre-compiled regular expressions shared by the transforms below.
var (
	whitespaceRegex = regexp.MustCompile(`\s+`)
	nonDigitRegex   = regexp.MustCompile(`\D`)
)
