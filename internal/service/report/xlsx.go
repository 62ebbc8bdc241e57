package report

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// PayrollRegisterXLSX renders one row per payslip of the period into a
// spreadsheet, with a totals row at the bottom.
func (s *reportService) PayrollRegisterXLSX(ctx context.Context, month, year int) ([]byte, string, error) {
	payslips, err := s.payslipRepo.ListByPeriod(ctx, month, year)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Payroll Register"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, "", err
	}

	headers := []string{
		"Code", "Employee", "Designation", "Basic", "HRA", "Special Allowance",
		"Conveyance", "Extra Conveyance", "Audit Expenses", "Attendance Adj.",
		"Advance Deduction", "Gross", "Net Payable", "Status",
	}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, "", err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, "", err
		}
	}

	totalNet := 0.0
	for row, p := range payslips {
		b := p.Breakdown
		values := []any{
			deref(p.EmployeeCode),
			deref(p.EmployeeName),
			deref(p.Designation),
			b.Basic.InexactFloat64(),
			b.HRA.InexactFloat64(),
			b.SpecialAllowance.InexactFloat64(),
			b.Conveyance.InexactFloat64(),
			b.ExtraConveyance.InexactFloat64(),
			b.AuditExpenses.InexactFloat64(),
			b.AttendanceAdjustment.InexactFloat64(),
			b.AdvanceDeduction.InexactFloat64(),
			b.GrossEarnings.InexactFloat64(),
			b.NetPayable.InexactFloat64(),
			string(p.Status),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, "", err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, "", err
			}
		}
		totalNet += b.NetPayable.InexactFloat64()
	}

	totalRow := len(payslips) + 2
	if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", totalRow), "Total"); err != nil {
		return nil, "", err
	}
	if err := f.SetCellValue(sheet, fmt.Sprintf("M%d", totalRow), totalNet); err != nil {
		return nil, "", err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	name := fmt.Sprintf("payroll-register-%04d-%02d.xlsx", year, month)
	return buf.Bytes(), name, nil
}
