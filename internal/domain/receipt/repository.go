package receipt

import "context"

// Repository persists the flat receipt list as a single blob. Receipts
// are appended and toggled, never deleted; a corrupt document degrades
// to an empty list on load.
type Repository interface {
	Load(ctx context.Context) ([]Receipt, error)
	Save(ctx context.Context, receipts []Receipt) error
}
