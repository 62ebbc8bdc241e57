package payslip

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/advance"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/attendance"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/cashbook"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/employee"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/expense"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/holiday"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/leave"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/notification"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/payslip"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/authctx"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/keymutex"
	"github.com/staffdesk/staffdesk-backend-go/internal/repository/postgresql"
)

type payslipService struct {
	db              *database.DB
	payslipRepo     payslip.PayslipRepository
	employeeRepo    employee.EmployeeRepository
	attendanceRepo  attendance.AttendanceRepository
	leaveRepo       leave.LeaveRepository
	expenseRepo     expense.ExpenseRepository
	advanceRepo     advance.AdvanceRepository
	holidayRepo     holiday.HolidayRepository
	cashbookService cashbook.CashbookService
	notifier        notification.NotificationService

	// locks serializes generation per employee-period within this
	// process; the conditional advance update covers cross-process races.
	locks  *keymutex.KeyMutex
	logger *slog.Logger
}

func NewPayslipService(
	db *database.DB,
	payslipRepo payslip.PayslipRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRepository,
	expenseRepo expense.ExpenseRepository,
	advanceRepo advance.AdvanceRepository,
	holidayRepo holiday.HolidayRepository,
	cashbookService cashbook.CashbookService,
	notifier notification.NotificationService,
	logger *slog.Logger,
) payslip.PayslipService {
	return &payslipService{
		db:              db,
		payslipRepo:     payslipRepo,
		employeeRepo:    employeeRepo,
		attendanceRepo:  attendanceRepo,
		leaveRepo:       leaveRepo,
		expenseRepo:     expenseRepo,
		advanceRepo:     advanceRepo,
		holidayRepo:     holidayRepo,
		cashbookService: cashbookService,
		notifier:        notifier,
		locks:           keymutex.New(),
		logger:          logger,
	}
}

func periodKey(employeeID string, month, year int) string {
	return fmt.Sprintf("%s/%d-%02d", employeeID, year, month)
}

func (s *payslipService) Preview(ctx context.Context, req payslip.PeriodRequest) (payslip.PayslipResponse, error) {
	if err := req.Validate(); err != nil {
		return payslip.PayslipResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	input, err := s.aggregate(ctx, emp, req.Month, req.Year)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}
	input.AdvanceDeduction, err = s.dueAdvanceDeduction(ctx, emp.ID, req.Month, req.Year)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	draft := payslip.Payslip{
		EmployeeID: emp.ID,
		Month:      req.Month,
		Year:       req.Year,
		Breakdown:  ComputeBreakdown(input),
	}
	stored, err := s.payslipRepo.UpsertPreview(ctx, draft)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}
	stored.EmployeeName = &emp.FullName
	return payslip.NewPayslipResponse(stored), nil
}

func (s *payslipService) Generate(ctx context.Context, req payslip.PeriodRequest) (payslip.PayslipResponse, error) {
	if err := req.Validate(); err != nil {
		return payslip.PayslipResponse{}, err
	}
	return s.generateOne(ctx, req.EmployeeID, req.Month, req.Year)
}

func (s *payslipService) generateOne(ctx context.Context, employeeID string, month, year int) (payslip.PayslipResponse, error) {
	key := periodKey(employeeID, month, year)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	input, err := s.aggregate(ctx, emp, month, year)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	var generated payslip.Payslip
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		// Claim the advance installments first. The balance guard in
		// the update makes each claim at-most-once across processes.
		outstanding, err := s.advanceRepo.ListOutstanding(txCtx, emp.ID)
		if err != nil {
			return err
		}
		deducted := decimal.Zero
		for _, a := range outstanding {
			if !a.CoversPeriod(month, year) {
				continue
			}
			due := a.DueInstallment()
			if due.IsZero() {
				continue
			}
			ok, err := s.advanceRepo.CommitDeduction(txCtx, a.ID, due)
			if err != nil {
				return err
			}
			if ok {
				deducted = deducted.Add(due)
			}
		}
		input.AdvanceDeduction = deducted

		draft := payslip.Payslip{
			EmployeeID: emp.ID,
			Month:      month,
			Year:       year,
			Breakdown:  ComputeBreakdown(input),
		}
		stored, err := s.payslipRepo.UpsertPreview(txCtx, draft)
		if err != nil {
			return err
		}

		generated, err = s.payslipRepo.SetStatus(txCtx, stored.ID, payslip.StatusPreview, payslip.StatusGenerated)
		return err
	})
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	s.notifyEmployee(ctx, emp, notification.TypePayslipGenerated,
		"Payslip generated",
		fmt.Sprintf("Your payslip for %d/%d is ready.", month, year))

	generated.EmployeeName = &emp.FullName
	return payslip.NewPayslipResponse(generated), nil
}

func (s *payslipService) GenerateAll(ctx context.Context, req payslip.BulkPeriodRequest) (payslip.ListPayslipResponse, error) {
	if err := req.Validate(); err != nil {
		return payslip.ListPayslipResponse{}, err
	}

	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return payslip.ListPayslipResponse{}, err
	}

	var out []payslip.PayslipResponse
	for _, emp := range employees {
		resp, err := s.generateOne(ctx, emp.ID, req.Month, req.Year)
		if err != nil {
			// One bad employee must not sink the whole run.
			s.logger.Warn("payslip generation skipped",
				slog.String("employee_id", emp.ID),
				slog.Any("error", err))
			continue
		}
		out = append(out, resp)
	}
	return payslip.ListPayslipResponse{Payslips: out, Total: len(out)}, nil
}

func (s *payslipService) Settle(ctx context.Context, id string) (payslip.PayslipResponse, error) {
	identity, err := authctx.FromContext(ctx)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	p, err := s.payslipRepo.GetByID(ctx, id)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}
	if p.Status != payslip.StatusGenerated {
		return payslip.PayslipResponse{}, payslip.ErrNotGenerated
	}

	settled, err := s.payslipRepo.SetStatus(ctx, id, payslip.StatusGenerated, payslip.StatusSettled)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	name := p.EmployeeID
	if p.EmployeeName != nil {
		name = *p.EmployeeName
	}
	if err := s.cashbookService.PostPayrollDebit(ctx,
		settled.Breakdown.NetPayable,
		fmt.Sprintf("Salary payout %d/%d for %s", p.Month, p.Year, name),
		fmt.Sprintf("payslip:%s", settled.ID),
		identity.UserID,
	); err != nil {
		// The payslip is settled; a ledger failure is logged, not rolled back.
		s.logger.Error("cashbook posting failed",
			slog.String("payslip_id", settled.ID),
			slog.Any("error", err))
	}

	if emp, err := s.employeeRepo.GetByID(ctx, p.EmployeeID); err == nil {
		s.notifyEmployee(ctx, emp, notification.TypePayslipSettled,
			"Salary paid",
			fmt.Sprintf("Your salary for %d/%d has been paid out.", p.Month, p.Year))
	}

	settled.EmployeeName = p.EmployeeName
	settled.EmployeeCode = p.EmployeeCode
	return payslip.NewPayslipResponse(settled), nil
}

func (s *payslipService) GetByID(ctx context.Context, id string) (payslip.PayslipResponse, error) {
	p, err := s.payslipRepo.GetByID(ctx, id)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}
	return payslip.NewPayslipResponse(p), nil
}

func (s *payslipService) ListByPeriod(ctx context.Context, month, year int) (payslip.ListPayslipResponse, error) {
	payslips, err := s.payslipRepo.ListByPeriod(ctx, month, year)
	if err != nil {
		return payslip.ListPayslipResponse{}, err
	}
	return payslip.NewListPayslipResponse(payslips), nil
}

func (s *payslipService) GetMyPayslips(ctx context.Context) (payslip.ListPayslipResponse, error) {
	employeeID, err := authctx.EmployeeID(ctx)
	if err != nil {
		return payslip.ListPayslipResponse{}, err
	}

	payslips, err := s.payslipRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return payslip.ListPayslipResponse{}, err
	}

	// Employees only ever see finalized payslips.
	visible := payslips[:0]
	for _, p := range payslips {
		if p.Status != payslip.StatusPreview {
			visible = append(visible, p)
		}
	}
	return payslip.NewListPayslipResponse(visible), nil
}

// aggregate tallies one employee-month of attendance, leave, holidays
// and approved expenses into a breakdown input. The advance deduction is
// filled in by the caller.
func (s *payslipService) aggregate(ctx context.Context, emp employee.Employee, month, year int) (BreakdownInput, error) {
	input := BreakdownInput{
		BaseSalary: emp.Salary,
		Month:      month,
		Year:       year,
		Conveyance: decimal.Zero,
	}

	records, err := s.attendanceRepo.ListByEmployeeMonth(ctx, emp.ID, month, year)
	if err != nil {
		return BreakdownInput{}, err
	}
	if len(records) == 0 {
		return BreakdownInput{}, payslip.ErrNoAttendanceRecords
	}

	recorded := make(map[string]struct{}, len(records))
	for _, a := range records {
		recorded[a.Date.Format("2006-01-02")] = struct{}{}
		switch a.Status {
		case attendance.StatusFullDay:
			input.FullDays++
		case attendance.StatusHalfDay:
			input.HalfDays++
		case attendance.StatusAbsent:
			input.AbsentDays++
		case attendance.StatusLeave:
			input.LeaveDays++
		}
		input.Conveyance = input.Conveyance.Add(a.ConveyanceAmount)
	}

	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	// Approved-leave dates with no attendance row still count as leave
	// days.
	leaves, err := s.leaveRepo.ListApprovedOverlapping(ctx, emp.ID, monthStart, monthEnd)
	if err != nil {
		return BreakdownInput{}, err
	}
	for d := monthStart; !d.After(monthEnd); d = d.AddDate(0, 0, 1) {
		if _, ok := recorded[d.Format("2006-01-02")]; ok {
			continue
		}
		for _, l := range leaves {
			if l.Covers(d) {
				input.LeaveDays++
				break
			}
		}
	}

	holidays, err := s.holidayRepo.ListBetween(ctx, monthStart, monthEnd)
	if err != nil {
		return BreakdownInput{}, err
	}
	input.HolidayCount = len(holidays)

	input.ExtraConveyance, err = s.expenseRepo.SumPayableForMonth(ctx, emp.ID, expense.KindBill, month, year)
	if err != nil {
		return BreakdownInput{}, err
	}
	input.AuditExpenses, err = s.expenseRepo.SumPayableForMonth(ctx, emp.ID, expense.KindAudit, month, year)
	if err != nil {
		return BreakdownInput{}, err
	}

	input.LeaveAdjustment = decimal.Zero
	return input, nil
}

// dueAdvanceDeduction previews the installment total for the period
// without claiming anything.
func (s *payslipService) dueAdvanceDeduction(ctx context.Context, employeeID string, month, year int) (decimal.Decimal, error) {
	outstanding, err := s.advanceRepo.ListOutstanding(ctx, employeeID)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, a := range outstanding {
		if !a.CoversPeriod(month, year) {
			continue
		}
		total = total.Add(a.DueInstallment())
	}
	return total, nil
}

func (s *payslipService) notifyEmployee(ctx context.Context, emp employee.Employee, typ notification.Type, title, message string) {
	if emp.UserID == nil {
		return
	}
	if err := s.notifier.Notify(ctx, *emp.UserID, typ, title, message); err != nil {
		s.logger.Warn("notification failed",
			slog.String("user_id", *emp.UserID),
			slog.Any("error", err))
	}
}
