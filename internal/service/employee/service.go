package employee

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/employee"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/user"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
	"github.com/staffdesk/staffdesk-backend-go/internal/repository/postgresql"
)

type employeeService struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
	userRepo     user.UserRepository
}

func NewEmployeeService(db *database.DB, employeeRepo employee.EmployeeRepository, userRepo user.UserRepository) employee.EmployeeService {
	return &employeeService{
		db:           db,
		employeeRepo: employeeRepo,
		userRepo:     userRepo,
	}
}

// Create inserts the employee record and its login account in one
// transaction, so a failed user insert never leaves an orphan employee.
func (s *employeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	joinDate, _ := validator.IsValidDate(req.JoinDate)
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	var created employee.Employee
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		created, err = s.employeeRepo.Create(txCtx, employee.Employee{
			EmployeeCode: req.EmployeeCode,
			FullName:     req.FullName,
			Email:        req.Email,
			PhoneNumber:  req.PhoneNumber,
			Designation:  req.Designation,
			JoinDate:     joinDate,
			Salary:       req.Salary,
			SalaryType:   employee.SalaryType(req.SalaryType),
			BankName:     req.BankName,
			BankAccount:  req.BankAccount,
			IsActive:     true,
		})
		if err != nil {
			return err
		}

		account, err := s.userRepo.Create(txCtx, user.User{
			EmployeeID:   &created.ID,
			Email:        req.Email,
			PasswordHash: string(passwordHash),
			Role:         user.RoleEmployee,
			IsActive:     true,
		})
		if err != nil {
			return err
		}

		created.UserID = &account.ID
		return s.employeeRepo.Update(txCtx, created)
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(created), nil
}

func (s *employeeService) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(e), nil
}

func (s *employeeService) List(ctx context.Context, includeInactive bool) (employee.ListEmployeeResponse, error) {
	employees, total, err := s.employeeRepo.List(ctx, includeInactive)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	data := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		data = append(data, toResponse(e))
	}
	return employee.ListEmployeeResponse{Data: data, TotalCount: total}, nil
}

func (s *employeeService) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	e, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil {
		e.FullName = *req.FullName
	}
	if req.PhoneNumber != nil {
		e.PhoneNumber = req.PhoneNumber
	}
	if req.Designation != nil {
		e.Designation = req.Designation
	}
	if req.Salary != nil {
		e.Salary = *req.Salary
	}
	if req.SalaryType != nil {
		e.SalaryType = employee.SalaryType(*req.SalaryType)
	}
	if req.BankName != nil {
		e.BankName = req.BankName
	}
	if req.BankAccount != nil {
		e.BankAccount = req.BankAccount
	}
	if req.IsActive != nil {
		e.IsActive = *req.IsActive
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.employeeRepo.Update(txCtx, e); err != nil {
			return err
		}
		if req.IsActive != nil && e.UserID != nil {
			return s.userRepo.SetActive(txCtx, *e.UserID, *req.IsActive)
		}
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(e), nil
}

// Delete soft-deletes the employee and disables the linked account.
// Attendance and payroll history stays intact.
func (s *employeeService) Delete(ctx context.Context, id string) error {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.employeeRepo.SoftDelete(txCtx, id); err != nil {
			return err
		}
		if e.UserID != nil {
			return s.userRepo.SetActive(txCtx, *e.UserID, false)
		}
		return nil
	})
}

func toResponse(e employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:           e.ID,
		EmployeeCode: e.EmployeeCode,
		FullName:     e.FullName,
		Email:        e.Email,
		PhoneNumber:  e.PhoneNumber,
		Designation:  e.Designation,
		JoinDate:     e.JoinDate.Format(time.DateOnly),
		Salary:       e.Salary,
		SalaryType:   string(e.SalaryType),
		BankName:     e.BankName,
		BankAccount:  e.BankAccount,
		IsActive:     e.IsActive,
	}
}
