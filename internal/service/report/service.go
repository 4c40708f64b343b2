package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/fieldpay/fieldpay-backend-go/internal/domain/attendance"
	"github.com/fieldpay/fieldpay-backend-go/internal/domain/payroll"
	"github.com/fieldpay/fieldpay-backend-go/internal/domain/receipt"
	"github.com/fieldpay/fieldpay-backend-go/internal/domain/report"
	"github.com/fieldpay/fieldpay-backend-go/internal/domain/worker"
	"github.com/fieldpay/fieldpay-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type ReportServiceImpl struct {
	rosterRepo     worker.Repository
	receiptRepo    receipt.Repository
	attendanceRepo attendance.Repository
	payrollSvc     payroll.Service
}

func NewReportService(
	rosterRepo worker.Repository,
	receiptRepo receipt.Repository,
	attendanceRepo attendance.Repository,
	payrollSvc payroll.Service,
) report.Service {
	return &ReportServiceImpl{
		rosterRepo:     rosterRepo,
		receiptRepo:    receiptRepo,
		attendanceRepo: attendanceRepo,
		payrollSvc:     payrollSvc,
	}
}

// MonthlyRevenue implements report.Service: receipts grouped by the
// calendar month of their date, sorted chronologically. Month keys are
// "YYYY-MM" precisely so ordering never degenerates into alphabetical
// month names.
func (s *ReportServiceImpl) MonthlyRevenue(ctx context.Context) ([]report.MonthlySummary, error) {
	receipts, err := s.receiptRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading receipts: %w", err)
	}
	return monthlyRevenue(receipts), nil
}

func monthlyRevenue(receipts []receipt.Receipt) []report.MonthlySummary {
	type group struct {
		revenue decimal.Decimal
		count   int
		workers map[string]struct{}
	}
	groups := make(map[string]*group)

	for _, r := range receipts {
		t, err := time.Parse(attendance.DateLayout, r.Date)
		if err != nil {
			// Degrade: the receipt is excluded from monthly grouping
			// but still counts toward system-wide revenue.
			slog.Warn("receipt has unparsable date, excluded from monthly revenue",
				"receipt_id", r.ID, "date", r.Date)
			continue
		}

		key := validator.MonthKey(t.Year(), t.Month())
		g, ok := groups[key]
		if !ok {
			g = &group{revenue: decimal.Zero, workers: make(map[string]struct{})}
			groups[key] = g
		}
		g.revenue = g.revenue.Add(r.Total)
		g.count++
		if r.WorkerID != nil && *r.WorkerID != "" {
			g.workers[*r.WorkerID] = struct{}{}
		} else if r.WorkerName != "" {
			g.workers[r.WorkerName] = struct{}{}
		}
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	// "YYYY-MM" keys sort chronologically as plain strings.
	sort.Strings(keys)

	summaries := make([]report.MonthlySummary, 0, len(keys))
	for i, k := range keys {
		g := groups[k]
		summary := report.MonthlySummary{
			MonthKey:     k,
			Revenue:      g.revenue,
			ReceiptCount: g.count,
			WorkerCount:  len(g.workers),
			Growth:       report.GrowthNA,
		}
		if i > 0 {
			prev := groups[keys[i-1]].revenue
			if prev.IsPositive() {
				summary.Growth = g.revenue.Sub(prev).Div(prev).Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries
}

// Stats implements report.Service. A stale or unavailable roster is a
// soft condition: stats are computed over whatever worker list is
// available.
func (s *ReportServiceImpl) Stats(ctx context.Context) (report.SystemStats, error) {
	workers, err := s.listWorkers(ctx)
	if err != nil {
		return report.SystemStats{}, err
	}

	receipts, err := s.receiptRepo.Load(ctx)
	if err != nil {
		return report.SystemStats{}, fmt.Errorf("loading receipts: %w", err)
	}

	doc, err := s.attendanceRepo.Load(ctx)
	if err != nil {
		return report.SystemStats{}, fmt.Errorf("loading attendance document: %w", err)
	}

	return systemStats(workers, receipts, doc), nil
}

func systemStats(workers []worker.Worker, receipts []receipt.Receipt, doc attendance.Document) report.SystemStats {
	stats := report.SystemStats{
		TotalWorkers:     len(workers),
		TotalRevenue:     decimal.Zero,
		AverageDailyRate: decimal.Zero,
	}

	rateSum := decimal.Zero
	for _, w := range workers {
		if w.IsChecked {
			stats.ActiveWorkers++
		}
		if w.IsPaid {
			stats.PaidWorkers++
		} else {
			stats.UnpaidWorkers++
		}
		rateSum = rateSum.Add(w.DailyRate)
	}
	// Zero workers yields a zero average, never a division error.
	if len(workers) > 0 {
		stats.AverageDailyRate = rateSum.Div(decimal.NewFromInt(int64(len(workers))))
	}

	for _, r := range receipts {
		stats.TotalRevenue = stats.TotalRevenue.Add(r.Total)
	}

	for _, rec := range doc {
		stats.TotalDaysWorked += len(attendance.NormalizeDates(rec.PresentDates))
	}

	return stats
}

// Overview implements report.Service: the combined export surface. The
// pieces are computed concurrently and returned as one atomic result.
func (s *ReportServiceImpl) Overview(ctx context.Context) (report.OverviewResponse, error) {
	workers, err := s.rosterRepo.List(ctx)
	stale := errors.Is(err, worker.ErrRosterStale)
	if err != nil && !stale {
		if errors.Is(err, worker.ErrRosterUnavailable) {
			slog.Warn("roster unavailable, overview computed without workers")
			workers = nil
			stale = true
		} else {
			return report.OverviewResponse{}, fmt.Errorf("listing workers: %w", err)
		}
	}

	var (
		monthly []report.MonthlySummary
		stats   report.SystemStats
		figures []payroll.MonthlyFiguresResponse
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		receipts, err := s.receiptRepo.Load(gCtx)
		if err != nil {
			return fmt.Errorf("loading receipts: %w", err)
		}
		monthly = monthlyRevenue(receipts)
		return nil
	})

	g.Go(func() error {
		receipts, err := s.receiptRepo.Load(gCtx)
		if err != nil {
			return fmt.Errorf("loading receipts: %w", err)
		}
		doc, err := s.attendanceRepo.Load(gCtx)
		if err != nil {
			return fmt.Errorf("loading attendance document: %w", err)
		}
		stats = systemStats(workers, receipts, doc)
		return nil
	})

	g.Go(func() error {
		figures = make([]payroll.MonthlyFiguresResponse, 0, len(workers))
		for _, w := range workers {
			f, err := s.payrollSvc.CurrentMonthFigures(gCtx, w)
			if err != nil {
				return fmt.Errorf("figures for %s: %w", w.ID, err)
			}
			figures = append(figures, f)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return report.OverviewResponse{}, err
	}

	return report.OverviewResponse{
		Monthly:     monthly,
		Stats:       stats,
		Workers:     figures,
		RosterStale: stale,
	}, nil
}

func (s *ReportServiceImpl) listWorkers(ctx context.Context) ([]worker.Worker, error) {
	workers, err := s.rosterRepo.List(ctx)
	if err != nil {
		if errors.Is(err, worker.ErrRosterStale) {
			return workers, nil
		}
		if errors.Is(err, worker.ErrRosterUnavailable) {
			slog.Warn("roster unavailable, stats computed without workers")
			return nil, nil
		}
		return nil, fmt.Errorf("listing workers: %w", err)
	}
	return workers, nil
}
