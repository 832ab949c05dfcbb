// Package contactform validates and sanitises contact form submissions.
//
// The heart of the package is a fixed rule table: one declarative FieldRule
// per recognised form field (name, email, phone, service, message). The table
// is immutable process-wide configuration, assembled and verified once at
// init; a malformed table stops the process instead of failing per call.
//
// Two entry points consume the table:
//
//   - Evaluate checks a single field. Checks run in a fixed, short-circuiting
//     order: sanitize, required, min length, max length, pattern, allowed
//     set, custom check. All checks operate on the sanitised value, never on
//     the raw input. An optional field whose sanitised value is empty is
//     always valid.
//   - EvaluateForm checks a whole submission. Fields are evaluated in table
//     order, missing values default to empty, unknown record keys are
//     ignored, and the sanitised value of every table field is returned even
//     when the field is invalid, so callers can redisplay best-effort input.
//
// Invalid input is a normal outcome reported through FieldResult and
// FormResult, never through an error return. The only error Evaluate can
// return is ErrUnknownField, a configuration-class signal for field names
// that are not in the table; the accompanying result is still usable.
//
// All functions are pure: no I/O, no shared mutable state, safe for
// concurrent use.
package contactform
