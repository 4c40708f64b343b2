package worker

import "context"

// Repository is the read-only view of the worker roster. The roster is
// owned by an external service; this core never mutates it.
type Repository interface {
	// List returns the full roster. Implementations may return a cached
	// list together with ErrRosterStale when the upstream endpoint is
	// unreachable.
	List(ctx context.Context) ([]Worker, error)

	// GetByID returns a single worker or ErrWorkerNotFound.
	GetByID(ctx context.Context, id string) (Worker, error)
}
