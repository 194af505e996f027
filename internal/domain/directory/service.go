// Package directory holds the employee/department core: the aggregate
// view builder, the read-side queries, and the cross-entity workflows.
package directory

import "context"

type Service struct {
	store StoreAPI
	creds CredentialProvisioner
}

func NewService(store StoreAPI, creds CredentialProvisioner) *Service {
	return &Service{store: store, creds: creds}
}

// EmployeeDepartment reports which department an employee belongs to,
// or "" when the employee or the link is gone. Used by the auth layer
// when stamping tokens.
func (s *Service) EmployeeDepartment(ctx context.Context, employeeID string) (string, error) {
	emp, err := s.store.GetEmployee(ctx, employeeID)
	if err != nil {
		if isNotFound(err) {
			return "", nil
		}
		return "", err
	}
	if emp.DepartmentID == nil {
		return "", nil
	}
	return *emp.DepartmentID, nil
}
