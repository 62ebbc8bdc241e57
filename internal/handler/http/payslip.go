package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/payslip"
	"github.com/staffdesk/staffdesk-backend-go/internal/handler/http/response"
)

type PayslipHandler interface {
	Preview(w http.ResponseWriter, r *http.Request)
	Generate(w http.ResponseWriter, r *http.Request)
	GenerateAll(w http.ResponseWriter, r *http.Request)
	Settle(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetMyPayslips(w http.ResponseWriter, r *http.Request)
}

type payslipHandlerImpl struct {
	payslipService payslip.PayslipService
}

func NewPayslipHandler(payslipService payslip.PayslipService) PayslipHandler {
	return &payslipHandlerImpl{
		payslipService: payslipService,
	}
}

// periodFromURL builds a PeriodRequest from the
// /{employeeID}/{year}/{month} path parameters.
func (h *payslipHandlerImpl) periodFromURL(w http.ResponseWriter, r *http.Request) (payslip.PeriodRequest, bool) {
	year, errYear := strconv.Atoi(chi.URLParam(r, "year"))
	month, errMonth := strconv.Atoi(chi.URLParam(r, "month"))
	if errYear != nil || errMonth != nil {
		response.BadRequest(w, "year and month must be numeric", nil)
		return payslip.PeriodRequest{}, false
	}

	req := payslip.PeriodRequest{
		EmployeeID: chi.URLParam(r, "employeeID"),
		Month:      month,
		Year:       year,
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return req, false
	}
	return req, true
}

// Preview implements PayslipHandler.
func (h *payslipHandlerImpl) Preview(w http.ResponseWriter, r *http.Request) {
	req, ok := h.periodFromURL(w, r)
	if !ok {
		return
	}

	result, err := h.payslipService.Preview(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Generate implements PayslipHandler.
func (h *payslipHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	req, ok := h.periodFromURL(w, r)
	if !ok {
		return
	}

	result, err := h.payslipService.Generate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payslip generated successfully", result)
}

// GenerateAll implements PayslipHandler.
func (h *payslipHandlerImpl) GenerateAll(w http.ResponseWriter, r *http.Request) {
	var req payslip.BulkPeriodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Generate all payslips decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.payslipService.GenerateAll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payslips generated successfully", results)
}

// Settle implements PayslipHandler.
func (h *payslipHandlerImpl) Settle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.payslipService.Settle(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payslip settled successfully", result)
}

// Get implements PayslipHandler.
func (h *payslipHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.payslipService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements PayslipHandler.
func (h *payslipHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	month, year := getPeriodParams(r)

	results, err := h.payslipService.ListByPeriod(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// GetMyPayslips implements PayslipHandler.
func (h *payslipHandlerImpl) GetMyPayslips(w http.ResponseWriter, r *http.Request) {
	results, err := h.payslipService.GetMyPayslips(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
