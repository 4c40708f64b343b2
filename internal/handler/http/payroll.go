package http

import (
	"net/http"

	"github.com/fieldpay/fieldpay-backend-go/internal/domain/payroll"
	"github.com/fieldpay/fieldpay-backend-go/internal/domain/worker"
	"github.com/fieldpay/fieldpay-backend-go/internal/handler/http/response"
	"github.com/fieldpay/fieldpay-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	Figures(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.Service
	rosterRepo     worker.Repository
}

func NewPayrollHandler(payrollService payroll.Service, rosterRepo worker.Repository) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
		rosterRepo:     rosterRepo,
	}
}

// Figures implements PayrollHandler: current-month figures by default,
// or an arbitrary month via ?month=YYYY-MM.
func (h *payrollHandlerImpl) Figures(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "workerId")

	wrk, err := h.rosterRepo.GetByID(r.Context(), workerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	monthKey := r.URL.Query().Get("month")
	if monthKey == "" {
		result, err := h.payrollService.CurrentMonthFigures(r.Context(), wrk)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, result)
		return
	}

	year, month, ok := validator.ParseMonthKey(monthKey)
	if !ok {
		response.BadRequest(w, "month must be YYYY-MM", nil)
		return
	}

	result, err := h.payrollService.MonthFigures(r.Context(), wrk, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
