package report

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fieldpay/fieldpay-backend-go/internal/domain/attendance"
	domainPayroll "github.com/fieldpay/fieldpay-backend-go/internal/domain/payroll"
	"github.com/fieldpay/fieldpay-backend-go/internal/domain/receipt"
	"github.com/fieldpay/fieldpay-backend-go/internal/domain/report"
	"github.com/fieldpay/fieldpay-backend-go/internal/domain/worker"
	"github.com/fieldpay/fieldpay-backend-go/internal/repository/jsondoc"
	attendanceService "github.com/fieldpay/fieldpay-backend-go/internal/service/attendance"
	payrollService "github.com/fieldpay/fieldpay-backend-go/internal/service/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRoster struct {
	workers []worker.Worker
	err     error
}

func (f *fakeRoster) List(ctx context.Context) ([]worker.Worker, error) {
	if f.err != nil {
		return f.workers, f.err
	}
	return f.workers, nil
}

func (f *fakeRoster) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	for _, w := range f.workers {
		if w.ID == id {
			return w, nil
		}
	}
	return worker.Worker{}, worker.ErrWorkerNotFound
}

func strPtr(s string) *string { return &s }

type testEnv struct {
	reportSvc     report.Service
	attendanceSvc attendance.Service
	receiptStore  receipt.Repository
	roster        *fakeRoster
}

func newTestEnv(t *testing.T, workers ...worker.Worker) testEnv {
	t.Helper()
	dir := t.TempDir()

	attendanceStore, err := jsondoc.NewAttendanceStore(filepath.Join(dir, "attendance.json"))
	require.NoError(t, err)
	receiptStore, err := jsondoc.NewReceiptStore(filepath.Join(dir, "receipts.json"))
	require.NoError(t, err)

	roster := &fakeRoster{workers: workers}
	attendanceSvc := attendanceService.NewAttendanceService(attendanceStore, roster)
	payrollSvc := payrollService.NewPayrollService(attendanceSvc, domainPayroll.WeekdayCalendar{})
	reportSvc := NewReportService(roster, receiptStore, attendanceStore, payrollSvc)

	return testEnv{
		reportSvc:     reportSvc,
		attendanceSvc: attendanceSvc,
		receiptStore:  receiptStore,
		roster:        roster,
	}
}

func seedReceipts(t *testing.T, env testEnv, receipts []receipt.Receipt) {
	t.Helper()
	require.NoError(t, env.receiptStore.Save(context.Background(), receipts))
}

func TestReportService_MonthlyRevenueGroupsAndGrows(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv(t)

	seedReceipts(t, env, []receipt.Receipt{
		{ID: "r1", WorkerID: strPtr("W1"), Total: decimal.NewFromInt(500), Date: "2024-03-05"},
		{ID: "r2", WorkerID: strPtr("W2"), Total: decimal.NewFromInt(300), Date: "2024-03-20"},
		{ID: "r3", WorkerID: strPtr("W1"), Total: decimal.NewFromInt(400), Date: "2024-02-10"},
	})

	monthly, err := env.reportSvc.MonthlyRevenue(ctx)
	require.NoError(t, err)
	require.Len(t, monthly, 2)

	feb, mar := monthly[0], monthly[1]

	assert.Equal(t, "2024-02", feb.MonthKey)
	assert.True(t, feb.Revenue.Equal(decimal.NewFromInt(400)))
	assert.Equal(t, 1, feb.ReceiptCount)
	assert.Equal(t, 1, feb.WorkerCount)
	assert.Equal(t, report.GrowthNA, feb.Growth)

	assert.Equal(t, "2024-03", mar.MonthKey)
	assert.True(t, mar.Revenue.Equal(decimal.NewFromInt(800)), "got %s", mar.Revenue)
	assert.Equal(t, 2, mar.ReceiptCount)
	assert.Equal(t, 2, mar.WorkerCount)
	assert.Equal(t, "100.00%", mar.Growth)
}

func TestReportService_MonthlyRevenueSortsAcrossYears(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv(t)

	seedReceipts(t, env, []receipt.Receipt{
		{ID: "r1", Total: decimal.NewFromInt(100), Date: "2024-01-10"},
		{ID: "r2", Total: decimal.NewFromInt(100), Date: "2023-12-10"},
		{ID: "r3", Total: decimal.NewFromInt(100), Date: "2023-02-10"},
	})

	monthly, err := env.reportSvc.MonthlyRevenue(ctx)
	require.NoError(t, err)
	require.Len(t, monthly, 3)

	// Chronological, not alphabetical by month name.
	assert.Equal(t, "2023-02", monthly[0].MonthKey)
	assert.Equal(t, "2023-12", monthly[1].MonthKey)
	assert.Equal(t, "2024-01", monthly[2].MonthKey)
}

func TestReportService_MonthlyRevenueSkipsUnparsableDates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv(t)

	seedReceipts(t, env, []receipt.Receipt{
		{ID: "r1", Total: decimal.NewFromInt(100), Date: "2024-03-05"},
		{ID: "r2", Total: decimal.NewFromInt(999), Date: "garbage"},
	})

	monthly, err := env.reportSvc.MonthlyRevenue(ctx)
	require.NoError(t, err)
	require.Len(t, monthly, 1)
	assert.True(t, monthly[0].Revenue.Equal(decimal.NewFromInt(100)))

	// The unparsable receipt still counts toward total revenue.
	stats, err := env.reportSvc.Stats(ctx)
	require.NoError(t, err)
	assert.True(t, stats.TotalRevenue.Equal(decimal.NewFromInt(1099)), "got %s", stats.TotalRevenue)
}

func TestReportService_GrowthNAWhenPreviousIsZero(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv(t)

	seedReceipts(t, env, []receipt.Receipt{
		{ID: "r1", Total: decimal.Zero, Date: "2024-02-10"},
		{ID: "r2", Total: decimal.NewFromInt(500), Date: "2024-03-10"},
	})

	monthly, err := env.reportSvc.MonthlyRevenue(ctx)
	require.NoError(t, err)
	require.Len(t, monthly, 2)
	assert.Equal(t, report.GrowthNA, monthly[0].Growth)
	assert.Equal(t, report.GrowthNA, monthly[1].Growth)
}

func TestReportService_MonthlyRevenueCountsWorkersByNameFallback(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv(t)

	seedReceipts(t, env, []receipt.Receipt{
		{ID: "r1", WorkerID: nil, WorkerName: "John Smith", Total: decimal.NewFromInt(100), Date: "2024-03-01"},
		{ID: "r2", WorkerID: nil, WorkerName: "John Smith", Total: decimal.NewFromInt(100), Date: "2024-03-02"},
		{ID: "r3", WorkerID: strPtr("W1"), WorkerName: "Mary Jones", Total: decimal.NewFromInt(100), Date: "2024-03-03"},
	})

	monthly, err := env.reportSvc.MonthlyRevenue(ctx)
	require.NoError(t, err)
	require.Len(t, monthly, 1)
	assert.Equal(t, 3, monthly[0].ReceiptCount)
	assert.Equal(t, 2, monthly[0].WorkerCount)
}

func TestReportService_StatsWithWorkers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv(t,
		worker.Worker{ID: "W1", FirstName: "John", LastName: "Smith", DailyRate: decimal.NewFromInt(100), IsChecked: true, IsPaid: true},
		worker.Worker{ID: "W2", FirstName: "Mary", LastName: "Jones", DailyRate: decimal.NewFromInt(200)},
	)

	_, err := env.attendanceSvc.Mark(ctx, attendance.MarkRequest{
		WorkerID: "W1",
		Dates:    []string{"2024-03-01", "2024-03-04", "2024-03-04"},
	})
	require.NoError(t, err)

	seedReceipts(t, env, []receipt.Receipt{
		{ID: "r1", Total: decimal.NewFromInt(300), Date: "2024-03-05"},
	})

	stats, err := env.reportSvc.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalWorkers)
	assert.Equal(t, 1, stats.ActiveWorkers)
	assert.Equal(t, 1, stats.PaidWorkers)
	assert.Equal(t, 1, stats.UnpaidWorkers)
	assert.True(t, stats.AverageDailyRate.Equal(decimal.NewFromInt(150)), "got %s", stats.AverageDailyRate)
	assert.True(t, stats.TotalRevenue.Equal(decimal.NewFromInt(300)))
	// Duplicate dates count once.
	assert.Equal(t, 2, stats.TotalDaysWorked)
}

func TestReportService_StatsZeroWorkers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv(t)

	stats, err := env.reportSvc.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 0, stats.TotalWorkers)
	assert.True(t, stats.AverageDailyRate.IsZero())
	assert.True(t, stats.TotalRevenue.IsZero())
}

func TestReportService_Overview(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv(t,
		worker.Worker{ID: "W1", FirstName: "John", LastName: "Smith", DailyRate: decimal.NewFromInt(100)},
	)

	seedReceipts(t, env, []receipt.Receipt{
		{ID: "r1", Total: decimal.NewFromInt(250), Date: "2024-03-05"},
	})

	overview, err := env.reportSvc.Overview(ctx)
	require.NoError(t, err)

	require.Len(t, overview.Monthly, 1)
	assert.Equal(t, "2024-03", overview.Monthly[0].MonthKey)
	assert.Equal(t, 1, overview.Stats.TotalWorkers)
	require.Len(t, overview.Workers, 1)
	assert.Equal(t, "W1", overview.Workers[0].WorkerID)
	assert.False(t, overview.RosterStale)
}

func TestReportService_OverviewFlagsStaleRoster(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	env := newTestEnv(t,
		worker.Worker{ID: "W1", FirstName: "John", LastName: "Smith", DailyRate: decimal.NewFromInt(100)},
	)
	env.roster.err = worker.ErrRosterStale

	overview, err := env.reportSvc.Overview(ctx)
	require.NoError(t, err)

	// Cached workers are still used, and the staleness is surfaced.
	assert.True(t, overview.RosterStale)
	require.Len(t, overview.Workers, 1)
}
