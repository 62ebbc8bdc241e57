package advance

import (
	"context"
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/advance"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/employee"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/authctx"
)

type advanceService struct {
	advanceRepo  advance.AdvanceRepository
	employeeRepo employee.EmployeeRepository
}

func NewAdvanceService(advanceRepo advance.AdvanceRepository, employeeRepo employee.EmployeeRepository) advance.AdvanceService {
	return &advanceService{
		advanceRepo:  advanceRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *advanceService) Create(ctx context.Context, req advance.CreateAdvanceRequest) (advance.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return advance.AdvanceResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	// One advance at a time keeps the repayment arithmetic simple.
	outstanding, err := s.advanceRepo.ListOutstanding(ctx, emp.ID)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}
	if len(outstanding) > 0 {
		return advance.AdvanceResponse{}, advance.ErrOutstandingOwed
	}

	created, err := s.advanceRepo.Create(ctx,
		advance.NewSalaryAdvance(emp.ID, req.ParsedAmount(), req.RepaymentMonths,
			req.DeductFromMonth, req.DeductFromYear, time.Now()))
	if err != nil {
		return advance.AdvanceResponse{}, err
	}
	created.EmployeeName = &emp.FullName
	return advance.NewAdvanceResponse(created), nil
}

func (s *advanceService) GetMyAdvances(ctx context.Context) (advance.ListAdvanceResponse, error) {
	employeeID, err := authctx.EmployeeID(ctx)
	if err != nil {
		return advance.ListAdvanceResponse{}, err
	}

	advances, err := s.advanceRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return advance.ListAdvanceResponse{}, err
	}
	return advance.NewListAdvanceResponse(advances), nil
}

func (s *advanceService) List(ctx context.Context, outstandingOnly bool) (advance.ListAdvanceResponse, error) {
	advances, err := s.advanceRepo.List(ctx, outstandingOnly)
	if err != nil {
		return advance.ListAdvanceResponse{}, err
	}
	return advance.NewListAdvanceResponse(advances), nil
}
