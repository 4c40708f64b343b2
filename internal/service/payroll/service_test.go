package payroll

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/fieldpay/fieldpay-backend-go/internal/domain/attendance"
	"github.com/fieldpay/fieldpay-backend-go/internal/domain/payroll"
	"github.com/fieldpay/fieldpay-backend-go/internal/domain/worker"
	"github.com/fieldpay/fieldpay-backend-go/internal/repository/jsondoc"
	attendanceService "github.com/fieldpay/fieldpay-backend-go/internal/service/attendance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRoster struct {
	workers map[string]worker.Worker
}

func (f *fakeRoster) List(ctx context.Context) ([]worker.Worker, error) {
	var list []worker.Worker
	for _, w := range f.workers {
		list = append(list, w)
	}
	return list, nil
}

func (f *fakeRoster) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	w, ok := f.workers[id]
	if !ok {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}
	return w, nil
}

func newTestServices(t *testing.T, workers ...worker.Worker) (attendance.Service, payroll.Service) {
	t.Helper()

	store, err := jsondoc.NewAttendanceStore(filepath.Join(t.TempDir(), "attendance.json"))
	require.NoError(t, err)

	roster := &fakeRoster{workers: make(map[string]worker.Worker)}
	for _, w := range workers {
		roster.workers[w.ID] = w
	}

	attendanceSvc := attendanceService.NewAttendanceService(store, roster)
	payrollSvc := NewPayrollService(attendanceSvc, payroll.WeekdayCalendar{})
	return attendanceSvc, payrollSvc
}

func TestWeekdayCalendar_WorkDaysIn(t *testing.T) {
	t.Parallel()
	cal := payroll.WeekdayCalendar{}

	// March 2024 has 21 weekdays, February 2024 (leap) has 21.
	assert.Equal(t, 21, cal.WorkDaysIn(2024, time.March))
	assert.Equal(t, 21, cal.WorkDaysIn(2024, time.February))
	// September 2024 starts on a Sunday: 21 weekdays.
	assert.Equal(t, 21, cal.WorkDaysIn(2024, time.September))
}

func TestWeekdayCalendar_IsWorkDay(t *testing.T) {
	t.Parallel()
	cal := payroll.WeekdayCalendar{}

	saturday := time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
	assert.False(t, cal.IsWorkDay(saturday))
	assert.True(t, cal.IsWorkDay(monday))
}

func TestPayrollService_MonthFigures(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	w := worker.Worker{ID: "W1", FirstName: "John", LastName: "Smith", DailyRate: decimal.NewFromInt(150)}
	attendanceSvc, payrollSvc := newTestServices(t, w)

	_, err := attendanceSvc.Mark(ctx, attendance.MarkRequest{
		WorkerID: "W1",
		Dates:    []string{"2024-03-01", "2024-03-04", "2024-03-05"},
	})
	require.NoError(t, err)

	figures, err := payrollSvc.MonthFigures(ctx, w, 2024, time.March)
	require.NoError(t, err)

	assert.True(t, figures.Recorded)
	assert.Equal(t, 3, figures.DaysWorked)
	assert.Equal(t, 21-3, figures.DaysOff)
	assert.True(t, figures.TotalSalary.Equal(decimal.NewFromInt(450)), "got %s", figures.TotalSalary)
	assert.True(t, figures.DailyRate.Equal(decimal.NewFromInt(150)))
}

func TestPayrollService_DaysOffFlooredAtZero(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	w := worker.Worker{ID: "W1", DailyRate: decimal.NewFromInt(100)}
	attendanceSvc, payrollSvc := newTestServices(t, w)

	// Mark every day of March 2024, weekends included: 31 days against
	// 21 weekdays must not produce negative days off.
	var dates []string
	for d := 1; d <= 31; d++ {
		dates = append(dates, time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC).Format("2006-01-02"))
	}
	_, err := attendanceSvc.Mark(ctx, attendance.MarkRequest{WorkerID: "W1", Dates: dates})
	require.NoError(t, err)

	figures, err := payrollSvc.MonthFigures(ctx, w, 2024, time.March)
	require.NoError(t, err)

	assert.Equal(t, 31, figures.DaysWorked)
	assert.Equal(t, 0, figures.DaysOff)
}

func TestPayrollService_NoRecordMeansNotRecorded(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	w := worker.Worker{ID: "W1", DailyRate: decimal.NewFromInt(100)}
	_, payrollSvc := newTestServices(t, w)

	figures, err := payrollSvc.MonthFigures(ctx, w, 2024, time.March)
	require.NoError(t, err)

	assert.False(t, figures.Recorded)
	assert.Equal(t, 0, figures.DaysWorked)
	assert.Equal(t, 0, figures.DaysOff)
	assert.True(t, figures.TotalSalary.IsZero())
}

func TestPayrollService_RateChangeAppliesToFutureReads(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	w := worker.Worker{ID: "W1", DailyRate: decimal.NewFromInt(150)}
	attendanceSvc, payrollSvc := newTestServices(t, w)

	_, err := attendanceSvc.Mark(ctx, attendance.MarkRequest{
		WorkerID: "W1",
		Dates:    []string{"2024-03-01", "2024-03-04"},
	})
	require.NoError(t, err)

	// The rate is supplied by the caller at computation time, so a rate
	// edit retroactively changes what the same dates are worth.
	w.DailyRate = decimal.NewFromInt(200)
	figures, err := payrollSvc.MonthFigures(ctx, w, 2024, time.March)
	require.NoError(t, err)
	assert.True(t, figures.TotalSalary.Equal(decimal.NewFromInt(400)), "got %s", figures.TotalSalary)
}
