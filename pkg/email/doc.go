// Package email defines a small transactional email interface with a
// Postmark-backed implementation for production and a logging sender for
// local development.
package email
