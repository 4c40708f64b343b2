package receipt

import "errors"

var (
	ErrReceiptNotFound = errors.New("receipt not found")

	// ErrReceiptCancelled rejects paid-status toggles on a cancelled
	// receipt; cancelled is a terminal state.
	ErrReceiptCancelled = errors.New("receipt is cancelled")
)
