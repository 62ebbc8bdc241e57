package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffdesk/staffdesk-backend-go/internal/handler/http/response"
	"github.com/staffdesk/staffdesk-backend-go/internal/service/report"
)

type ReportHandler interface {
	AttendanceCSV(w http.ResponseWriter, r *http.Request)
	PayrollRegisterXLSX(w http.ResponseWriter, r *http.Request)
	PayslipPDF(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

func writeAttachment(w http.ResponseWriter, contentType, filename string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// AttendanceCSV implements ReportHandler.
func (h *reportHandlerImpl) AttendanceCSV(w http.ResponseWriter, r *http.Request) {
	month, year := getPeriodParams(r)

	data, filename, err := h.reportService.AttendanceCSV(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeAttachment(w, "text/csv", filename, data)
}

// PayrollRegisterXLSX implements ReportHandler.
func (h *reportHandlerImpl) PayrollRegisterXLSX(w http.ResponseWriter, r *http.Request) {
	month, year := getPeriodParams(r)

	data, filename, err := h.reportService.PayrollRegisterXLSX(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeAttachment(w, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", filename, data)
}

// PayslipPDF implements ReportHandler.
func (h *reportHandlerImpl) PayslipPDF(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	data, filename, err := h.reportService.PayslipPDF(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeAttachment(w, "application/pdf", filename, data)
}
