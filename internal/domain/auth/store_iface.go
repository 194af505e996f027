package auth

import "context"

type StoreAPI interface {
	GetByEmail(ctx context.Context, email string) (*Account, error)
	FindOneByEmployee(ctx context.Context, employeeID string) (*Account, error)
	Create(ctx context.Context, a *Account) (*Account, error)
	PatchAccount(ctx context.Context, id string, patch map[string]any) (*Account, error)
	DeleteByEmployee(ctx context.Context, employeeID string) (int64, error)
}

// EmployeeDirectory is the slice of the directory the auth layer needs:
// resolving the department a logging-in account belongs to.
type EmployeeDirectory interface {
	EmployeeDepartment(ctx context.Context, employeeID string) (string, error)
}
