package directory

import (
	"context"
	"encoding/json"
)

type StoreAPI interface {
	GetEmployee(ctx context.Context, id string) (*Employee, error)
	ListEmployees(ctx context.Context) ([]Employee, error)
	ListEmployeesPage(ctx context.Context, limit, offset int) ([]Employee, error)
	CountEmployees(ctx context.Context) (int, error)
	FindEmployeesByField(ctx context.Context, field, value string) ([]Employee, error)
	CreateEmployee(ctx context.Context, e *Employee) (*Employee, error)
	PatchEmployee(ctx context.Context, id string, patch map[string]any) (*Employee, error)
	DeleteEmployee(ctx context.Context, id string) error

	GetDepartment(ctx context.Context, id string) (*Department, error)
	ListDepartments(ctx context.Context) ([]Department, error)
	CreateDepartment(ctx context.Context, d *Department) (*Department, error)
	PatchDepartment(ctx context.Context, id string, patch map[string]any) (*Department, error)
	DeleteDepartment(ctx context.Context, id string) error

	// FindSubRecords fetches one sub-record family for one employee, in
	// insertion order, as raw documents.
	FindSubRecords(ctx context.Context, collection, employeeID string) ([]json.RawMessage, error)
}

// CredentialProvisioner is the account-side collaborator of the
// manager-assignment workflow. It lives in the auth domain; the
// indirection keeps account handling out of the directory.
type CredentialProvisioner interface {
	ReplaceForEmployee(ctx context.Context, employeeID, email, fullName, role string) (account json.RawMessage, plaintext string, err error)
	RemoveForEmployee(ctx context.Context, employeeID string) error
}
