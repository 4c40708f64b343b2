package receipt

import (
	"github.com/fieldpay/fieldpay-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// CreateRequest is a manual admin-created receipt. Total is computed
// once from DaysWorked and DailyRate and frozen.
type CreateRequest struct {
	WorkerID    *string         `json:"workerId"`
	WorkerName  string          `json:"workerName"`
	Description string          `json:"description"`
	DaysWorked  int             `json:"daysWorked"`
	DailyRate   decimal.Decimal `json:"dailyRate"`
	Date        string          `json:"date"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerName) {
		errs = append(errs, validator.ValidationError{
			Field:   "workerName",
			Message: "workerName is required",
		})
	}

	if r.DaysWorked < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "daysWorked",
			Message: "daysWorked must not be negative",
		})
	}

	if r.DailyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "dailyRate",
			Message: "dailyRate must not be negative",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be YYYY-MM-DD",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// SetPaidRequest toggles a receipt between pending and paid.
type SetPaidRequest struct {
	ID   string `json:"-"`
	Paid bool   `json:"paid"`
}

func (r *SetPaidRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// WorkerReceiptsResponse is the reconciled per-worker receipt set plus
// the outstanding (unpaid) total over it.
type WorkerReceiptsResponse struct {
	WorkerID         string          `json:"workerId"`
	Receipts         []Receipt       `json:"receipts"`
	TotalOutstanding decimal.Decimal `json:"totalOutstanding"`
}
