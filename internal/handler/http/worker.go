package http

import (
	"errors"
	"net/http"

	"github.com/fieldpay/fieldpay-backend-go/internal/domain/worker"
	"github.com/fieldpay/fieldpay-backend-go/internal/handler/http/response"
)

type WorkerHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type workerHandlerImpl struct {
	rosterRepo worker.Repository
}

func NewWorkerHandler(rosterRepo worker.Repository) WorkerHandler {
	return &workerHandlerImpl{rosterRepo: rosterRepo}
}

// List implements WorkerHandler. A stale roster still answers with the
// cached list; only total unavailability is an error.
func (h *workerHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	workers, err := h.rosterRepo.List(r.Context())
	if err != nil {
		if errors.Is(err, worker.ErrRosterStale) {
			response.SuccessWithMessage(w, "Roster unreachable, serving cached worker list", workers)
			return
		}
		response.HandleError(w, err)
		return
	}

	response.Success(w, workers)
}
