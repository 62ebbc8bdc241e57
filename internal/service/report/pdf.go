package report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// PayslipPDF renders a single payslip as a printable A4 document.
func (s *reportService) PayslipPDF(ctx context.Context, payslipID string) ([]byte, string, error) {
	p, err := s.payslipRepo.GetByID(ctx, payslipID)
	if err != nil {
		return nil, "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("Payslip - %02d/%04d", p.Month, p.Year), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 11)
	writePair(pdf, "Employee", deref(p.EmployeeName))
	writePair(pdf, "Employee Code", deref(p.EmployeeCode))
	writePair(pdf, "Designation", deref(p.Designation))
	writePair(pdf, "Bank", deref(p.BankName))
	writePair(pdf, "Account", deref(p.BankAccount))
	writePair(pdf, "Status", string(p.Status))
	pdf.Ln(6)

	b := p.Breakdown

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Earnings", "B", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	writeAmount(pdf, "Basic", b.Basic.StringFixed(2))
	writeAmount(pdf, "HRA", b.HRA.StringFixed(2))
	writeAmount(pdf, "Special Allowance", b.SpecialAllowance.StringFixed(2))
	writeAmount(pdf, "Conveyance", b.Conveyance.StringFixed(2))
	writeAmount(pdf, "Extra Conveyance", b.ExtraConveyance.StringFixed(2))
	writeAmount(pdf, "Audit Expenses", b.AuditExpenses.StringFixed(2))
	pdf.SetFont("Arial", "B", 11)
	writeAmount(pdf, "Gross Earnings", b.GrossEarnings.StringFixed(2))
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Adjustments & Deductions", "B", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	writeAmount(pdf, "Attendance Adjustment", b.AttendanceAdjustment.StringFixed(2))
	writeAmount(pdf, "Leave Adjustment", b.LeaveAdjustment.StringFixed(2))
	writeAmount(pdf, "Advance Deduction", b.AdvanceDeduction.StringFixed(2))
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Attendance Summary", "B", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	writePair(pdf, "Days in Month", fmt.Sprintf("%d", b.DaysInMonth))
	writePair(pdf, "Full Days", fmt.Sprintf("%d", b.FullDays))
	writePair(pdf, "Half Days", fmt.Sprintf("%d", b.HalfDays))
	writePair(pdf, "Absent Days", fmt.Sprintf("%d", b.AbsentDays))
	writePair(pdf, "Leave Days", fmt.Sprintf("%d", b.LeaveDays))
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "Net Payable: "+b.NetPayable.StringFixed(2), "T", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	name := fmt.Sprintf("payslip-%s-%04d-%02d.pdf", deref(p.EmployeeCode), p.Year, p.Month)
	return buf.Bytes(), name, nil
}

func writePair(pdf *gofpdf.Fpdf, label, value string) {
	pdf.CellFormat(60, 7, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
}

func writeAmount(pdf *gofpdf.Fpdf, label, amount string) {
	pdf.CellFormat(120, 7, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 7, amount, "", 1, "R", false, 0, "")
}
