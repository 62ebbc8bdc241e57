package employee

import (
	"github.com/shopspring/decimal"

	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeCode string          `json:"employee_code"`
	FullName     string          `json:"full_name"`
	Email        string          `json:"email"`
	PhoneNumber  *string         `json:"phone_number"`
	Designation  *string         `json:"designation"`
	JoinDate     string          `json:"join_date"` // YYYY-MM-DD
	Salary       decimal.Decimal `json:"salary"`
	SalaryType   string          `json:"salary_type"`
	BankName     *string         `json:"bank_name"`
	BankAccount  *string         `json:"bank_account"`
	Password     string          `json:"password"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "employee_code is required"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "full_name is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email format is invalid"})
	}
	if _, ok := validator.IsValidDate(r.JoinDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "join_date", Message: "join_date must be YYYY-MM-DD"})
	}
	if r.Salary.IsNegative() || r.Salary.IsZero() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must be greater than zero"})
	}
	if !validator.IsInSlice(r.SalaryType, []string{string(SalaryTypeMonthly), string(SalaryTypeDaily)}) {
		errs = append(errs, validator.ValidationError{Field: "salary_type", Message: "salary_type must be monthly or daily"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must be at least 8 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID          string           `json:"-"`
	FullName    *string          `json:"full_name"`
	PhoneNumber *string          `json:"phone_number"`
	Designation *string          `json:"designation"`
	Salary      *decimal.Decimal `json:"salary"`
	SalaryType  *string          `json:"salary_type"`
	BankName    *string          `json:"bank_name"`
	BankAccount *string          `json:"bank_account"`
	IsActive    *bool            `json:"is_active"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Salary != nil && !r.Salary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must be greater than zero"})
	}
	if r.SalaryType != nil && !validator.IsInSlice(*r.SalaryType, []string{string(SalaryTypeMonthly), string(SalaryTypeDaily)}) {
		errs = append(errs, validator.ValidationError{Field: "salary_type", Message: "salary_type must be monthly or daily"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID           string          `json:"id"`
	EmployeeCode string          `json:"employee_code"`
	FullName     string          `json:"full_name"`
	Email        string          `json:"email"`
	PhoneNumber  *string         `json:"phone_number,omitempty"`
	Designation  *string         `json:"designation,omitempty"`
	JoinDate     string          `json:"join_date"`
	Salary       decimal.Decimal `json:"salary"`
	SalaryType   string          `json:"salary_type"`
	BankName     *string         `json:"bank_name,omitempty"`
	BankAccount  *string         `json:"bank_account,omitempty"`
	IsActive     bool            `json:"is_active"`
}

type ListEmployeeResponse struct {
	Data       []EmployeeResponse `json:"data"`
	TotalCount int64              `json:"total_count"`
}
