package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fieldpay/fieldpay-backend-go/internal/domain/attendance"
	"github.com/fieldpay/fieldpay-backend-go/internal/domain/worker"
	"github.com/shopspring/decimal"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.Repository
	rosterRepo     worker.Repository
}

func NewAttendanceService(attendanceRepo attendance.Repository, rosterRepo worker.Repository) attendance.Service {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		rosterRepo:     rosterRepo,
	}
}

// Mark implements attendance.Service. The stored set is fully replaced,
// not merged, and the persisted daysWorked/totalSalary snapshots are
// refreshed from the worker's rate at save time.
func (s *AttendanceServiceImpl) Mark(ctx context.Context, req attendance.MarkRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	doc, err := s.attendanceRepo.Load(ctx)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("loading attendance document: %w", err)
	}

	dates := attendance.NormalizeDates(req.Dates)

	// The snapshot salary uses the worker's current rate. A roster
	// lookup failure degrades to a zero snapshot; the live figures from
	// the payroll calculator are unaffected.
	rate := decimal.Zero
	w, err := s.rosterRepo.GetByID(ctx, req.WorkerID)
	if err != nil {
		slog.Warn("roster lookup failed, writing zero salary snapshot",
			"worker_id", req.WorkerID, "error", err)
	} else {
		rate = w.DailyRate
	}

	stored := attendance.StoredRecord{
		PresentDates: dates,
		DaysWorked:   len(dates),
		TotalSalary:  rate.Mul(decimal.NewFromInt(int64(len(dates)))),
	}
	doc[req.WorkerID] = stored

	if err := s.attendanceRepo.Save(ctx, doc); err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("saving attendance document: %w", err)
	}

	return attendance.RecordResponse{
		WorkerID:     req.WorkerID,
		PresentDates: stored.PresentDates,
		DaysWorked:   stored.DaysWorked,
		TotalSalary:  stored.TotalSalary,
		Recorded:     true,
	}, nil
}

// Record implements attendance.Service. An absent record is not an
// error: the response has Recorded=false and zero figures.
func (s *AttendanceServiceImpl) Record(ctx context.Context, workerID string) (attendance.RecordResponse, error) {
	doc, err := s.attendanceRepo.Load(ctx)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("loading attendance document: %w", err)
	}

	stored, ok := doc[workerID]
	if !ok {
		return attendance.RecordResponse{
			WorkerID:     workerID,
			PresentDates: []string{},
			TotalSalary:  decimal.Zero,
			Recorded:     false,
		}, nil
	}

	dates := attendance.NormalizeDates(stored.PresentDates)
	return attendance.RecordResponse{
		WorkerID:     workerID,
		PresentDates: dates,
		DaysWorked:   len(dates),
		TotalSalary:  stored.TotalSalary,
		Recorded:     true,
	}, nil
}

// Remove implements attendance.Service (cascade on worker deletion).
func (s *AttendanceServiceImpl) Remove(ctx context.Context, workerID string) error {
	doc, err := s.attendanceRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading attendance document: %w", err)
	}

	if _, ok := doc[workerID]; !ok {
		return nil
	}
	delete(doc, workerID)

	if err := s.attendanceRepo.Save(ctx, doc); err != nil {
		return fmt.Errorf("saving attendance document: %w", err)
	}
	return nil
}

// DaysWorkedInPeriod implements attendance.Service. Duplicated dates in
// the persisted set never double-count.
func (s *AttendanceServiceImpl) DaysWorkedInPeriod(ctx context.Context, workerID string, year int, month time.Month) (int, error) {
	doc, err := s.attendanceRepo.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("loading attendance document: %w", err)
	}

	stored, ok := doc[workerID]
	if !ok {
		return 0, nil
	}

	rec := attendance.Record{
		WorkerID:     workerID,
		PresentDates: attendance.NormalizeDates(stored.PresentDates),
	}
	return rec.DaysWorkedIn(year, month), nil
}

// ProjectedSalary implements attendance.Service. The rate always comes
// from the caller; it is never stored with the record.
func (s *AttendanceServiceImpl) ProjectedSalary(ctx context.Context, workerID string, rate decimal.Decimal, year int, month time.Month) (decimal.Decimal, error) {
	days, err := s.DaysWorkedInPeriod(ctx, workerID, year, month)
	if err != nil {
		return decimal.Zero, err
	}
	return rate.Mul(decimal.NewFromInt(int64(days))), nil
}
