package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByCode(ctx context.Context, code string) (Employee, error)
	ListActive(ctx context.Context) ([]Employee, error)
	List(ctx context.Context, includeInactive bool) ([]Employee, int64, error)
	Update(ctx context.Context, e Employee) error
	SoftDelete(ctx context.Context, id string) error
}
