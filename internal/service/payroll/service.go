package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/fieldpay/fieldpay-backend-go/internal/domain/attendance"
	"github.com/fieldpay/fieldpay-backend-go/internal/domain/payroll"
	"github.com/fieldpay/fieldpay-backend-go/internal/domain/worker"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	attendanceSvc attendance.Service
	calendar      payroll.WorkCalendar
	now           func() time.Time
}

func NewPayrollService(attendanceSvc attendance.Service, calendar payroll.WorkCalendar) payroll.Service {
	return &PayrollServiceImpl{
		attendanceSvc: attendanceSvc,
		calendar:      calendar,
		now:           time.Now,
	}
}

// CurrentMonthFigures implements payroll.Service.
func (s *PayrollServiceImpl) CurrentMonthFigures(ctx context.Context, w worker.Worker) (payroll.MonthlyFiguresResponse, error) {
	now := s.now()
	return s.MonthFigures(ctx, w, now.Year(), now.Month())
}

// MonthFigures implements payroll.Service. Days worked come from the
// attendance store; days off are the month's work days (Mon-Fri) minus
// days worked, floored at zero so weekend work never yields negative
// days off. The salary uses the worker's live daily rate.
func (s *PayrollServiceImpl) MonthFigures(ctx context.Context, w worker.Worker, year int, month time.Month) (payroll.MonthlyFiguresResponse, error) {
	record, err := s.attendanceSvc.Record(ctx, w.ID)
	if err != nil {
		return payroll.MonthlyFiguresResponse{}, fmt.Errorf("reading attendance for %s: %w", w.ID, err)
	}

	figures := payroll.MonthlyFiguresResponse{
		WorkerID:  w.ID,
		Year:      year,
		Month:     int(month),
		DailyRate: w.DailyRate,
		Recorded:  record.Recorded,
	}

	if !record.Recorded {
		// Never marked: all-zero figures, surfaced as "not yet
		// recorded" rather than computed zero performance.
		figures.TotalSalary = decimal.Zero
		return figures, nil
	}

	daysWorked, err := s.attendanceSvc.DaysWorkedInPeriod(ctx, w.ID, year, month)
	if err != nil {
		return payroll.MonthlyFiguresResponse{}, fmt.Errorf("counting days worked for %s: %w", w.ID, err)
	}

	daysOff := s.calendar.WorkDaysIn(year, month) - daysWorked
	if daysOff < 0 {
		daysOff = 0
	}

	figures.DaysWorked = daysWorked
	figures.DaysOff = daysOff
	figures.TotalSalary = w.DailyRate.Mul(decimal.NewFromInt(int64(daysWorked)))
	return figures, nil
}
