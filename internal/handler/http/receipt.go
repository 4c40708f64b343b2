package http

import (
	"encoding/json"
	"net/http"

	"github.com/fieldpay/fieldpay-backend-go/internal/domain/receipt"
	"github.com/fieldpay/fieldpay-backend-go/internal/handler/http/middleware"
	"github.com/fieldpay/fieldpay-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ReceiptHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ForWorker(w http.ResponseWriter, r *http.Request)
	SetPaid(w http.ResponseWriter, r *http.Request)
}

type receiptHandlerImpl struct {
	receiptService receipt.Service
}

func NewReceiptHandler(receiptService receipt.Service) ReceiptHandler {
	return &receiptHandlerImpl{
		receiptService: receiptService,
	}
}

// Create implements ReceiptHandler.
func (h *receiptHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req receipt.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.receiptService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Receipt created", result)
}

// Export implements ReceiptHandler: generates a receipt from the
// worker's current-month attendance figures.
func (h *receiptHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "workerId")

	result, err := h.receiptService.ExportFromAttendance(r.Context(), workerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Receipt exported from attendance", result)
}

// List implements ReceiptHandler.
func (h *receiptHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.receiptService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ForWorker implements ReceiptHandler. The session account id, when
// present, participates in the matching chain.
func (h *receiptHandlerImpl) ForWorker(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "workerId")
	accountID := middleware.AccountID(r.Context())

	result, err := h.receiptService.ForWorker(r.Context(), workerID, accountID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SetPaid implements ReceiptHandler.
func (h *receiptHandlerImpl) SetPaid(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req receipt.SetPaidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	result, err := h.receiptService.SetPaid(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Receipt payment state updated", result)
}
