package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/cashbook"
	"github.com/staffdesk/staffdesk-backend-go/internal/handler/http/response"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

type CashbookHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type cashbookHandlerImpl struct {
	cashbookService cashbook.CashbookService
}

func NewCashbookHandler(cashbookService cashbook.CashbookService) CashbookHandler {
	return &cashbookHandlerImpl{
		cashbookService: cashbookService,
	}
}

// Create implements CashbookHandler.
func (h *cashbookHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req cashbook.CreateEntryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create cashbook entry decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.cashbookService.CreateEntry(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Cashbook entry recorded successfully", result)
}

// List implements CashbookHandler.
func (h *cashbookHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var from, to *time.Time
	if f := r.URL.Query().Get("from"); f != "" {
		date, ok := validator.IsValidDate(f)
		if !ok {
			response.BadRequest(w, "from must be YYYY-MM-DD", nil)
			return
		}
		from = &date
	}
	if t := r.URL.Query().Get("to"); t != "" {
		date, ok := validator.IsValidDate(t)
		if !ok {
			response.BadRequest(w, "to must be YYYY-MM-DD", nil)
			return
		}
		to = &date
	}

	results, err := h.cashbookService.List(r.Context(), from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
