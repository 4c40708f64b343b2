package attendance

import (
	"github.com/fieldpay/fieldpay-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// MarkRequest replaces the full set of present dates for one worker.
// This mirrors "save attendance for this session" semantics: the stored
// set becomes exactly Dates, not a merge with what was there before.
type MarkRequest struct {
	WorkerID string   `json:"-"`
	Dates    []string `json:"presentDates"`
}

func (r *MarkRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "workerId",
			Message: "workerId is required",
		})
	}

	for _, d := range r.Dates {
		if _, ok := validator.IsValidDate(d); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "presentDates",
				Message: "invalid date: " + d + " (expected YYYY-MM-DD)",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RecordResponse is the per-worker attendance view. Recorded is false
// when the worker has never had attendance marked; callers surface that
// as a "not yet recorded" state rather than computed-zero figures.
type RecordResponse struct {
	WorkerID     string          `json:"workerId"`
	PresentDates []string        `json:"presentDates"`
	DaysWorked   int             `json:"daysWorked"`
	TotalSalary  decimal.Decimal `json:"totalSalary"`
	Recorded     bool            `json:"recorded"`
}
