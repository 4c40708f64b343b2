package response

import (
	"errors"
	"net/http"

	"github.com/fieldpay/fieldpay-backend-go/internal/domain/attendance"
	"github.com/fieldpay/fieldpay-backend-go/internal/domain/receipt"
	"github.com/fieldpay/fieldpay-backend-go/internal/domain/worker"
	"github.com/fieldpay/fieldpay-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Worker / roster errors
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, worker.ErrRosterUnavailable):
		ServiceUnavailable(w, "Worker roster is unavailable")

	// Attendance errors
	case errors.Is(err, attendance.ErrNoRecord):
		BadRequest(w, "No attendance recorded for worker", nil)

	// Receipt errors
	case errors.Is(err, receipt.ErrReceiptNotFound):
		NotFound(w, "Receipt not found")
	case errors.Is(err, receipt.ErrReceiptCancelled):
		Conflict(w, "Receipt is cancelled and cannot change payment state")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
