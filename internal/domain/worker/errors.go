package worker

import "errors"

var (
	ErrWorkerNotFound = errors.New("worker not found in roster")

	// ErrRosterStale signals that the roster endpoint could not be
	// reached and a cached list was returned instead. Callers surface
	// it as a warning, never as a fatal failure.
	ErrRosterStale = errors.New("roster unavailable, serving cached worker list")

	// ErrRosterUnavailable means the roster could not be reached and no
	// cached list exists yet.
	ErrRosterUnavailable = errors.New("roster unavailable and no cached worker list")
)
