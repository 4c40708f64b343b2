package attendance

import "errors"

var (
	// ErrNoRecord means the worker has never had attendance marked.
	// Handlers translate it to an informational "not yet recorded"
	// state, not a failure.
	ErrNoRecord = errors.New("no attendance recorded for worker")
)
