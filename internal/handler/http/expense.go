package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/expense"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/user"
	"github.com/staffdesk/staffdesk-backend-go/internal/handler/http/response"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/authctx"
)

// ExpenseHandler serves one expense kind; the router mounts an instance
// under /bills and another under /audit-expenses.
type ExpenseHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Revalidate(w http.ResponseWriter, r *http.Request)
}

type expenseHandlerImpl struct {
	expenseService expense.ExpenseService
	kind           expense.Kind
}

func NewExpenseHandler(expenseService expense.ExpenseService, kind expense.Kind) ExpenseHandler {
	return &expenseHandlerImpl{
		expenseService: expenseService,
		kind:           kind,
	}
}

// Create implements ExpenseHandler.
func (h *expenseHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req expense.CreateExpenseRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create expense decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.Kind = string(h.kind)

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.expenseService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Expense submitted successfully", result)
}

// List implements ExpenseHandler. Admins see every submission of the
// kind; employees see their own.
func (h *expenseHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	kind := h.kind

	identity, err := authctx.FromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if identity.Role != string(user.RoleAdmin) {
		results, err := h.expenseService.GetMyExpenses(r.Context(), &kind)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, results)
		return
	}

	var status *expense.Status
	if s := r.URL.Query().Get("status"); s != "" {
		es := expense.Status(s)
		status = &es
	}

	results, err := h.expenseService.List(r.Context(), &kind, status)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Approve implements ExpenseHandler. The body decides approval or
// rejection, optionally with a reduced amount.
func (h *expenseHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req expense.DecideExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Decide expense decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.expenseService.Decide(r.Context(), h.kind, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Expense processed successfully", result)
}

// Revalidate implements ExpenseHandler.
func (h *expenseHandlerImpl) Revalidate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req expense.RevalidateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Revalidate expense decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.expenseService.Revalidate(r.Context(), h.kind, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Additional amount approved successfully", result)
}
