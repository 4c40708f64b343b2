package receipt

import (
	"context"
	"fmt"
	"time"

	"github.com/fieldpay/fieldpay-backend-go/internal/domain/attendance"
	"github.com/fieldpay/fieldpay-backend-go/internal/domain/payroll"
	"github.com/fieldpay/fieldpay-backend-go/internal/domain/receipt"
	"github.com/fieldpay/fieldpay-backend-go/internal/domain/worker"
	"github.com/fieldpay/fieldpay-backend-go/internal/service/reconcile"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReceiptServiceImpl struct {
	receiptRepo receipt.Repository
	rosterRepo  worker.Repository
	payrollSvc  payroll.Service
	reconciler  *reconcile.Reconciler
	now         func() time.Time
}

func NewReceiptService(
	receiptRepo receipt.Repository,
	rosterRepo worker.Repository,
	payrollSvc payroll.Service,
	reconciler *reconcile.Reconciler,
) receipt.Service {
	return &ReceiptServiceImpl{
		receiptRepo: receiptRepo,
		rosterRepo:  rosterRepo,
		payrollSvc:  payrollSvc,
		reconciler:  reconciler,
		now:         time.Now,
	}
}

// Create implements receipt.Service. The total is computed once from
// the request's day count and rate snapshot and never re-derived.
func (s *ReceiptServiceImpl) Create(ctx context.Context, req receipt.CreateRequest) (receipt.Receipt, error) {
	if err := req.Validate(); err != nil {
		return receipt.Receipt{}, err
	}

	r := receipt.Receipt{
		ID:          uuid.NewString(),
		WorkerID:    req.WorkerID,
		WorkerName:  req.WorkerName,
		Description: req.Description,
		DaysWorked:  req.DaysWorked,
		DailyRate:   req.DailyRate,
		Total:       req.DailyRate.Mul(decimal.NewFromInt(int64(req.DaysWorked))),
		Date:        req.Date,
		IsPaid:      false,
		Status:      receipt.StatusPending,
		Type:        receipt.TypeManual,
		CreatedAt:   s.now(),
	}

	if err := s.append(ctx, r); err != nil {
		return receipt.Receipt{}, err
	}
	return r, nil
}

// ExportFromAttendance implements receipt.Service: the "export" update
// path that turns current-month payroll figures into a receipt. The
// figures are frozen into the receipt at this moment; later rate edits
// or attendance changes do not touch it.
func (s *ReceiptServiceImpl) ExportFromAttendance(ctx context.Context, workerID string) (receipt.Receipt, error) {
	w, err := s.rosterRepo.GetByID(ctx, workerID)
	if err != nil {
		return receipt.Receipt{}, err
	}

	figures, err := s.payrollSvc.CurrentMonthFigures(ctx, w)
	if err != nil {
		return receipt.Receipt{}, fmt.Errorf("computing figures for %s: %w", workerID, err)
	}
	if !figures.Recorded {
		return receipt.Receipt{}, attendance.ErrNoRecord
	}

	now := s.now()
	r := receipt.Receipt{
		ID:          uuid.NewString(),
		WorkerID:    &w.ID,
		WorkerName:  w.FullName(),
		Description: fmt.Sprintf("Salary for %s", now.Format("January 2006")),
		DaysWorked:  figures.DaysWorked,
		DailyRate:   w.DailyRate,
		Total:       figures.TotalSalary,
		Date:        now.Format(attendance.DateLayout),
		IsPaid:      false,
		Status:      receipt.StatusPending,
		Type:        receipt.TypeGenerated,
		CreatedAt:   now,
	}

	if err := s.append(ctx, r); err != nil {
		return receipt.Receipt{}, err
	}
	return r, nil
}

// List implements receipt.Service.
func (s *ReceiptServiceImpl) List(ctx context.Context) ([]receipt.Receipt, error) {
	receipts, err := s.receiptRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading receipts: %w", err)
	}
	if receipts == nil {
		receipts = []receipt.Receipt{}
	}
	return receipts, nil
}

// ForWorker implements receipt.Service using the fallback matching
// chain. A missing worker or empty result is not an error.
func (s *ReceiptServiceImpl) ForWorker(ctx context.Context, workerID, accountID string) (receipt.WorkerReceiptsResponse, error) {
	w, err := s.rosterRepo.GetByID(ctx, workerID)
	if err != nil {
		return receipt.WorkerReceiptsResponse{}, err
	}

	receipts, err := s.receiptRepo.Load(ctx)
	if err != nil {
		return receipt.WorkerReceiptsResponse{}, fmt.Errorf("loading receipts: %w", err)
	}

	matched := s.reconciler.ReceiptsFor(w, accountID, receipts)
	return receipt.WorkerReceiptsResponse{
		WorkerID:         workerID,
		Receipts:         matched,
		TotalOutstanding: reconcile.TotalOutstanding(matched),
	}, nil
}

// SetPaid implements receipt.Service: the pending<->paid admin toggle.
// Cancelled is terminal and rejected.
func (s *ReceiptServiceImpl) SetPaid(ctx context.Context, req receipt.SetPaidRequest) (receipt.Receipt, error) {
	if err := req.Validate(); err != nil {
		return receipt.Receipt{}, err
	}

	receipts, err := s.receiptRepo.Load(ctx)
	if err != nil {
		return receipt.Receipt{}, fmt.Errorf("loading receipts: %w", err)
	}

	for i := range receipts {
		if receipts[i].ID != req.ID {
			continue
		}
		if receipts[i].Status == receipt.StatusCancelled {
			return receipt.Receipt{}, receipt.ErrReceiptCancelled
		}

		receipts[i].IsPaid = req.Paid
		if req.Paid {
			receipts[i].Status = receipt.StatusPaid
		} else {
			receipts[i].Status = receipt.StatusPending
		}

		if err := s.receiptRepo.Save(ctx, receipts); err != nil {
			return receipt.Receipt{}, fmt.Errorf("saving receipts: %w", err)
		}
		return receipts[i], nil
	}

	return receipt.Receipt{}, receipt.ErrReceiptNotFound
}

func (s *ReceiptServiceImpl) append(ctx context.Context, r receipt.Receipt) error {
	receipts, err := s.receiptRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading receipts: %w", err)
	}
	receipts = append(receipts, r)
	if err := s.receiptRepo.Save(ctx, receipts); err != nil {
		return fmt.Errorf("saving receipts: %w", err)
	}
	return nil
}
