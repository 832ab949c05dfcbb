package email

import "errors"

var (
	// ErrInvalidParams means the message failed validation before sending.
	ErrInvalidParams = errors.New("email: invalid send parameters")

	// ErrSendFailed wraps provider delivery failures.
	ErrSendFailed = errors.New("email: failed to send")

	// ErrMissingToken means the Postmark sender was built without an API token.
	ErrMissingToken = errors.New("email: missing postmark server token")
)
