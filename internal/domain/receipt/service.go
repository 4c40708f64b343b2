package receipt

import "context"

// Service owns the receipt lifecycle. Receipts are immutable except for
// the paid toggle and are never deleted.
type Service interface {
	// Create appends a manually entered receipt.
	Create(ctx context.Context, req CreateRequest) (Receipt, error)

	// ExportFromAttendance generates a receipt from the worker's
	// current-month payroll figures. The figures are snapshotted into
	// the receipt and frozen.
	ExportFromAttendance(ctx context.Context, workerID string) (Receipt, error)

	// List returns the full flat receipt list.
	List(ctx context.Context) ([]Receipt, error)

	// ForWorker returns the reconciled receipt set for one worker using
	// the fallback matching chain. accountID is the currently
	// authenticated account id, used by the session-identity matcher.
	ForWorker(ctx context.Context, workerID, accountID string) (WorkerReceiptsResponse, error)

	// SetPaid toggles pending<->paid. Cancelled receipts are rejected.
	SetPaid(ctx context.Context, req SetPaidRequest) (Receipt, error)
}
