package directory

import (
	"context"
	"encoding/json"
	"errors"

	"hrdesk/internal/docstore"
)

// Store adapts the generic document store to the directory's typed
// entities.
type Store struct {
	docs *docstore.Store
}

func NewStore(docs *docstore.Store) *Store {
	return &Store{docs: docs}
}

func (s *Store) GetEmployee(ctx context.Context, id string) (*Employee, error) {
	doc, err := s.docs.Get(ctx, docstore.Employees, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, err
	}
	return decodeEmployee(doc)
}

func (s *Store) ListEmployees(ctx context.Context) ([]Employee, error) {
	docs, err := s.docs.List(ctx, docstore.Employees)
	if err != nil {
		return nil, err
	}
	return decodeEmployees(docs)
}

func (s *Store) ListEmployeesPage(ctx context.Context, limit, offset int) ([]Employee, error) {
	docs, err := s.docs.ListPage(ctx, docstore.Employees, limit, offset)
	if err != nil {
		return nil, err
	}
	return decodeEmployees(docs)
}

func (s *Store) CountEmployees(ctx context.Context) (int, error) {
	return s.docs.Count(ctx, docstore.Employees)
}

func (s *Store) FindEmployeesByField(ctx context.Context, field, value string) ([]Employee, error) {
	docs, err := s.docs.FindByField(ctx, docstore.Employees, field, value)
	if err != nil {
		return nil, err
	}
	return decodeEmployees(docs)
}

func (s *Store) CreateEmployee(ctx context.Context, e *Employee) (*Employee, error) {
	doc, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}
	id, err := s.docs.Insert(ctx, docstore.Employees, doc)
	if err != nil {
		return nil, err
	}
	e.ID = id
	return e, nil
}

func (s *Store) PatchEmployee(ctx context.Context, id string, patch map[string]any) (*Employee, error) {
	raw, err := json.Marshal(patch)
	if err != nil {
		return nil, err
	}
	doc, err := s.docs.MergePatch(ctx, docstore.Employees, id, raw)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, err
	}
	return decodeEmployee(doc)
}

func (s *Store) DeleteEmployee(ctx context.Context, id string) error {
	err := s.docs.Delete(ctx, docstore.Employees, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return ErrEmployeeNotFound
	}
	return err
}

func (s *Store) GetDepartment(ctx context.Context, id string) (*Department, error) {
	doc, err := s.docs.Get(ctx, docstore.Departments, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, ErrDepartmentNotFound
	}
	if err != nil {
		return nil, err
	}
	return decodeDepartment(doc)
}

func (s *Store) ListDepartments(ctx context.Context) ([]Department, error) {
	docs, err := s.docs.List(ctx, docstore.Departments)
	if err != nil {
		return nil, err
	}
	departments := make([]Department, 0, len(docs))
	for _, doc := range docs {
		d, err := decodeDepartment(doc)
		if err != nil {
			return nil, err
		}
		departments = append(departments, *d)
	}
	return departments, nil
}

func (s *Store) CreateDepartment(ctx context.Context, d *Department) (*Department, error) {
	doc, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	id, err := s.docs.Insert(ctx, docstore.Departments, doc)
	if err != nil {
		return nil, err
	}
	d.ID = id
	return d, nil
}

func (s *Store) PatchDepartment(ctx context.Context, id string, patch map[string]any) (*Department, error) {
	raw, err := json.Marshal(patch)
	if err != nil {
		return nil, err
	}
	doc, err := s.docs.MergePatch(ctx, docstore.Departments, id, raw)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, ErrDepartmentNotFound
	}
	if err != nil {
		return nil, err
	}
	return decodeDepartment(doc)
}

func (s *Store) DeleteDepartment(ctx context.Context, id string) error {
	err := s.docs.Delete(ctx, docstore.Departments, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return ErrDepartmentNotFound
	}
	return err
}

func (s *Store) FindSubRecords(ctx context.Context, collection, employeeID string) ([]json.RawMessage, error) {
	docs, err := s.docs.FindByField(ctx, collection, "employee_id", employeeID)
	if err != nil {
		return nil, err
	}
	out := make([]json.RawMessage, len(docs))
	for i, doc := range docs {
		out[i] = json.RawMessage(doc)
	}
	return out, nil
}

func decodeEmployee(doc []byte) (*Employee, error) {
	var e Employee
	if err := json.Unmarshal(doc, &e); err != nil {
		return nil, err
	}
	if e.Tags == nil {
		e.Tags = []string{}
	}
	return &e, nil
}

func decodeEmployees(docs [][]byte) ([]Employee, error) {
	employees := make([]Employee, 0, len(docs))
	for _, doc := range docs {
		e, err := decodeEmployee(doc)
		if err != nil {
			return nil, err
		}
		employees = append(employees, *e)
	}
	return employees, nil
}

func decodeDepartment(doc []byte) (*Department, error) {
	var d Department
	if err := json.Unmarshal(doc, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
