package directory

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
)

// AssignManagerResult carries the plaintext password exactly once, for
// out-of-band delivery to the new manager. It is never stored.
type AssignManagerResult struct {
	Department *Department     `json:"department"`
	Employee   *Employee       `json:"employee"`
	Account    json.RawMessage `json:"account"`
	Password   string          `json:"password"`
}

// AssignManager runs the manager-assignment workflow as an ordered
// sequence of non-atomic steps: link the manager into the department,
// promote the employee, then replace their login account. A failure
// partway through leaves the earlier steps committed; there is no
// compensation.
func (s *Service) AssignManager(ctx context.Context, departmentID, employeeID string) (*AssignManagerResult, error) {
	if _, err := uuid.Parse(departmentID); err != nil {
		return nil, ErrInvalidID
	}
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, ErrInvalidID
	}

	if _, err := s.store.GetDepartment(ctx, departmentID); err != nil {
		return nil, err
	}
	emp, err := s.store.GetEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	dept, err := s.store.PatchDepartment(ctx, departmentID, map[string]any{
		"manager_id": employeeID,
	})
	if err != nil {
		return nil, err
	}

	emp, err = s.store.PatchEmployee(ctx, employeeID, map[string]any{
		"job_position":  PositionManager,
		"department_id": departmentID,
	})
	if err != nil {
		return nil, err
	}

	account, password, err := s.creds.ReplaceForEmployee(ctx, emp.ID, emp.WorkEmail, emp.FullName, PositionManager)
	if err != nil {
		return nil, err
	}

	return &AssignManagerResult{
		Department: dept,
		Employee:   emp,
		Account:    account,
		Password:   password,
	}, nil
}

// CreateEmployee validates the minimum contract and fills creation
// defaults before persisting.
func (s *Service) CreateEmployee(ctx context.Context, e *Employee) (*Employee, error) {
	if e.FullName == "" || e.WorkEmail == "" {
		return nil, ErrMissingField
	}
	e.Normalize()
	return s.store.CreateEmployee(ctx, e)
}

// UpdateEmployee merges the given fields into the stored employee. A
// cleared status falls back to offline, and "null" references collapse
// to true nulls, mirroring creation.
func (s *Service) UpdateEmployee(ctx context.Context, id string, patch map[string]any) (*Employee, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidID
	}
	if status, ok := patch["status"]; ok {
		if str, _ := status.(string); str == "" {
			patch["status"] = StatusOffline
		}
	}
	for _, ref := range []string{"department_id", "manager_id", "coach_id"} {
		if v, ok := patch[ref]; ok {
			if str, isStr := v.(string); isStr && (str == "" || str == "null") {
				patch[ref] = nil
			}
		}
	}
	return s.store.PatchEmployee(ctx, id, patch)
}

// DeleteEmployee removes the employee and any login account linked to
// them. Sub-records stay behind; the store does not cascade.
func (s *Service) DeleteEmployee(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}
	if err := s.store.DeleteEmployee(ctx, id); err != nil {
		return err
	}
	return s.creds.RemoveForEmployee(ctx, id)
}

func (s *Service) GetEmployee(ctx context.Context, id string) (*Employee, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidID
	}
	return s.store.GetEmployee(ctx, id)
}

func (s *Service) ListEmployees(ctx context.Context) ([]Employee, error) {
	return s.store.ListEmployees(ctx)
}

func (s *Service) CreateDepartment(ctx context.Context, d *Department) (*Department, error) {
	if d.Name == "" || d.Company == "" {
		return nil, ErrMissingField
	}
	d.ManagerID = normalizeRef(d.ManagerID)
	return s.store.CreateDepartment(ctx, d)
}

func (s *Service) GetDepartment(ctx context.Context, id string) (*Department, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidID
	}
	return s.store.GetDepartment(ctx, id)
}

func (s *Service) ListDepartments(ctx context.Context) ([]Department, error) {
	return s.store.ListDepartments(ctx)
}

func (s *Service) UpdateDepartment(ctx context.Context, id string, patch map[string]any) (*Department, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidID
	}
	return s.store.PatchDepartment(ctx, id, patch)
}

func (s *Service) DeleteDepartment(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}
	return s.store.DeleteDepartment(ctx, id)
}
