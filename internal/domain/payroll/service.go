package payroll

import (
	"context"
	"time"

	"github.com/fieldpay/fieldpay-backend-go/internal/domain/worker"
)

// Service derives work/salary figures for single workers by combining
// the attendance store with calendar arithmetic.
type Service interface {
	// CurrentMonthFigures computes figures for the current calendar
	// month using the worker's live daily rate.
	CurrentMonthFigures(ctx context.Context, w worker.Worker) (MonthlyFiguresResponse, error)

	// MonthFigures computes figures for an arbitrary month.
	MonthFigures(ctx context.Context, w worker.Worker, year int, month time.Month) (MonthlyFiguresResponse, error)
}
