package attendance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Service is the attendance store: the ground truth for days worked.
type Service interface {
	// Mark fully replaces the stored date set for the worker.
	Mark(ctx context.Context, req MarkRequest) (RecordResponse, error)

	// Record returns the worker's attendance view. A worker that has
	// never been marked yields a zero response with Recorded=false and
	// no error.
	Record(ctx context.Context, workerID string) (RecordResponse, error)

	// Remove cascades deletion of the worker's attendance record. It is
	// called when the worker itself is deleted in the roster.
	Remove(ctx context.Context, workerID string) error

	// DaysWorkedInPeriod counts present dates in the given month; a
	// zero year means all-time.
	DaysWorkedInPeriod(ctx context.Context, workerID string, year int, month time.Month) (int, error)

	// ProjectedSalary is DaysWorkedInPeriod times the caller-supplied
	// daily rate. The rate is never stored with the record, so rate
	// changes apply retroactively to future reads of the same dates.
	ProjectedSalary(ctx context.Context, workerID string, rate decimal.Decimal, year int, month time.Month) (decimal.Decimal, error)
}
