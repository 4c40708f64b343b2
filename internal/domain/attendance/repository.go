package attendance

import "context"

// Repository persists the attendance document as a single blob.
// Implementations must degrade a corrupt document to an empty one
// rather than fail the load.
type Repository interface {
	Load(ctx context.Context) (Document, error)
	Save(ctx context.Context, doc Document) error
}
