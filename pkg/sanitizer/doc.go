// Package sanitizer provides small, pure string transforms for normalising
// user input before validation: trimming, case folding, whitespace collapsing
// and control-character removal.
//
// Every exported transform is idempotent - applying it twice yields the same
// result as applying it once - which allows already-sanitised values to be
// re-sanitised safely. The package holds no state and performs no I/O, so all
// helpers are safe for concurrent use.
//
// The higher-order Apply and Compose helpers build sanitisation pipelines:
//
//	clean := sanitizer.Compose(
//	    sanitizer.RemoveControlChars,
//	    sanitizer.CollapseWhitespace,
//	)
//
//	safe := clean("  Mixed \x00  Input\n") // "Mixed Input"
//
// A composition of idempotent transforms in this package is itself idempotent
// as long as no transform reintroduces characters an earlier one removes.
package sanitizer
