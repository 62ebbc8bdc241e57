package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/attendance"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/payslip"
)

// ReportService renders attendance and payroll data into downloadable
// documents. Each method returns the file bytes and a suggested
// filename.
type ReportService interface {
	AttendanceCSV(ctx context.Context, month, year int) ([]byte, string, error)
	PayrollRegisterXLSX(ctx context.Context, month, year int) ([]byte, string, error)
	PayslipPDF(ctx context.Context, payslipID string) ([]byte, string, error)
}

type reportService struct {
	attendanceRepo attendance.AttendanceRepository
	payslipRepo    payslip.PayslipRepository
}

func NewReportService(attendanceRepo attendance.AttendanceRepository, payslipRepo payslip.PayslipRepository) ReportService {
	return &reportService{
		attendanceRepo: attendanceRepo,
		payslipRepo:    payslipRepo,
	}
}

func (s *reportService) AttendanceCSV(ctx context.Context, month, year int) ([]byte, string, error) {
	records, err := s.attendanceRepo.ListByMonth(ctx, month, year)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"date", "employee_code", "employee_name", "shift", "punch_in", "punch_out", "work_minutes", "status", "conveyance"}
	if err := w.Write(header); err != nil {
		return nil, "", err
	}

	for _, a := range records {
		row := []string{
			a.Date.Format("2006-01-02"),
			deref(a.EmployeeCode),
			deref(a.EmployeeName),
			deref(a.ShiftName),
			formatTime(a.PunchIn),
			formatTime(a.PunchOut),
			formatMinutes(a.WorkMinutes),
			string(a.Status),
			a.ConveyanceAmount.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}

	name := fmt.Sprintf("attendance-%04d-%02d.csv", year, month)
	return buf.Bytes(), name, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("15:04")
}

func formatMinutes(m *int) string {
	if m == nil {
		return ""
	}
	return strconv.Itoa(*m)
}
