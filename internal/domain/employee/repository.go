package employee

import (
	"context"
)

// EmployeeRepository defines directory lookups used by the scoring core.
type EmployeeRepository interface {
	// GetByID retrieves an employee by id
	GetByID(ctx context.Context, id string) (Employee, error)

	// ListActive retrieves all active employees
	ListActive(ctx context.Context) ([]Employee, error)

	// List retrieves employees with pagination
	List(ctx context.Context, page, limit int) ([]Employee, int64, error)
}
