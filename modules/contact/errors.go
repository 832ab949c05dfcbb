package contact

import "errors"

var (
	// ErrDraftNotFound means no draft exists for the given ID.
	ErrDraftNotFound = errors.New("contact: draft not found")

	// ErrStoreFailed wraps storage backend failures.
	ErrStoreFailed = errors.New("contact: store operation failed")
)
