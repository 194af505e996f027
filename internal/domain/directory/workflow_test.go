package directory

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestAssignManagerHappyPath(t *testing.T) {
	store := newFakeStore()
	dept := store.addDepartment(Department{Name: "Engineering", Company: "Acme"})
	emp := store.addEmployee(Employee{FullName: "Ada Lovelace", JobPosition: "engineer", WorkEmail: "ada@example.com"})
	svc, creds := newTestService(store)

	result, err := svc.AssignManager(context.Background(), dept.ID, emp.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Department.ManagerID == nil || *result.Department.ManagerID != emp.ID {
		t.Fatalf("department manager_id = %v, want %s", result.Department.ManagerID, emp.ID)
	}
	if result.Employee.JobPosition != PositionManager {
		t.Fatalf("employee position = %q, want %q", result.Employee.JobPosition, PositionManager)
	}
	if result.Employee.DepartmentID == nil || *result.Employee.DepartmentID != dept.ID {
		t.Fatalf("employee department_id = %v, want %s", result.Employee.DepartmentID, dept.ID)
	}
	if result.Password == "" {
		t.Fatal("expected plaintext password in result")
	}
	if len(result.Account) == 0 {
		t.Fatal("expected account in result")
	}

	if len(creds.replaced) != 1 || creds.replaced[0] != emp.ID {
		t.Fatalf("credentials replaced for %v, want [%s]", creds.replaced, emp.ID)
	}
	if creds.role != PositionManager {
		t.Fatalf("provisioned role = %q, want %q", creds.role, PositionManager)
	}
	if creds.email != "ada@example.com" {
		t.Fatalf("provisioned email = %q", creds.email)
	}

	stored, err := store.GetEmployee(context.Background(), emp.ID)
	if err != nil {
		t.Fatalf("reload employee: %v", err)
	}
	if stored.JobPosition != PositionManager {
		t.Fatalf("stored position = %q, want %q", stored.JobPosition, PositionManager)
	}
}

func TestAssignManagerRejectsMalformedIDs(t *testing.T) {
	svc, creds := newTestService(newFakeStore())

	if _, err := svc.AssignManager(context.Background(), "bad", uuid.NewString()); err != ErrInvalidID {
		t.Fatalf("expected ErrInvalidID for department, got %v", err)
	}
	if _, err := svc.AssignManager(context.Background(), uuid.NewString(), "bad"); err != ErrInvalidID {
		t.Fatalf("expected ErrInvalidID for employee, got %v", err)
	}
	if len(creds.replaced) != 0 {
		t.Fatal("no credentials should be touched on validation failure")
	}
}

func TestAssignManagerMissingEntities(t *testing.T) {
	store := newFakeStore()
	dept := store.addDepartment(Department{Name: "Engineering", Company: "Acme"})
	emp := store.addEmployee(Employee{FullName: "Ada Lovelace", WorkEmail: "ada@example.com"})
	svc, _ := newTestService(store)

	if _, err := svc.AssignManager(context.Background(), uuid.NewString(), emp.ID); err != ErrDepartmentNotFound {
		t.Fatalf("expected ErrDepartmentNotFound, got %v", err)
	}
	if _, err := svc.AssignManager(context.Background(), dept.ID, uuid.NewString()); err != ErrEmployeeNotFound {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestCreateEmployeeAppliesDefaults(t *testing.T) {
	store := newFakeStore()
	svc, _ := newTestService(store)

	nullRef := "null"
	created, err := svc.CreateEmployee(context.Background(), &Employee{
		FullName:     "A B",
		WorkEmail:    "a@b.com",
		DepartmentID: &nullRef,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.Status != StatusOffline {
		t.Fatalf("status = %q, want %q", created.Status, StatusOffline)
	}
	if created.Tags == nil || len(created.Tags) != 0 {
		t.Fatalf("tags = %v, want empty set", created.Tags)
	}
	if created.DepartmentID != nil {
		t.Fatalf("department_id = %v, want nil", created.DepartmentID)
	}
	if created.ManagerID != nil || created.CoachID != nil {
		t.Fatal("optional references should default to nil")
	}
}

func TestCreateEmployeeRequiresNameAndEmail(t *testing.T) {
	svc, _ := newTestService(newFakeStore())

	if _, err := svc.CreateEmployee(context.Background(), &Employee{WorkEmail: "a@b.com"}); err != ErrMissingField {
		t.Fatalf("expected ErrMissingField without name, got %v", err)
	}
	if _, err := svc.CreateEmployee(context.Background(), &Employee{FullName: "A B"}); err != ErrMissingField {
		t.Fatalf("expected ErrMissingField without email, got %v", err)
	}
}

func TestUpdateEmployeeClearedStatusDefaultsOffline(t *testing.T) {
	store := newFakeStore()
	emp := store.addEmployee(Employee{FullName: "Ada Lovelace", Status: StatusOnline, WorkEmail: "ada@example.com"})
	svc, _ := newTestService(store)

	updated, err := svc.UpdateEmployee(context.Background(), emp.ID, map[string]any{"status": ""})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != StatusOffline {
		t.Fatalf("status = %q, want %q", updated.Status, StatusOffline)
	}
}

func TestUpdateEmployeeNormalizesNullReferences(t *testing.T) {
	store := newFakeStore()
	dept := store.addDepartment(Department{Name: "Engineering", Company: "Acme"})
	emp := store.addEmployee(Employee{FullName: "Ada Lovelace", WorkEmail: "ada@example.com", DepartmentID: &dept.ID})
	svc, _ := newTestService(store)

	updated, err := svc.UpdateEmployee(context.Background(), emp.ID, map[string]any{"department_id": "null"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.DepartmentID != nil {
		t.Fatalf("department_id = %v, want nil", updated.DepartmentID)
	}
}

func TestDeleteEmployeeRemovesAccount(t *testing.T) {
	store := newFakeStore()
	emp := store.addEmployee(Employee{FullName: "Ada Lovelace", WorkEmail: "ada@example.com"})
	svc, creds := newTestService(store)

	if err := svc.DeleteEmployee(context.Background(), emp.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.GetEmployee(context.Background(), emp.ID); err != ErrEmployeeNotFound {
		t.Fatalf("employee still present: %v", err)
	}
	if len(creds.removed) != 1 || creds.removed[0] != emp.ID {
		t.Fatalf("account cleanup = %v, want [%s]", creds.removed, emp.ID)
	}
}

func TestEmployeeDepartmentLookup(t *testing.T) {
	store := newFakeStore()
	dept := store.addDepartment(Department{Name: "Engineering", Company: "Acme"})
	linked := store.addEmployee(Employee{FullName: "Ada Lovelace", WorkEmail: "ada@example.com", DepartmentID: &dept.ID})
	loose := store.addEmployee(Employee{FullName: "Grace Hopper", WorkEmail: "grace@example.com"})
	svc, _ := newTestService(store)

	got, err := svc.EmployeeDepartment(context.Background(), linked.ID)
	if err != nil || got != dept.ID {
		t.Fatalf("EmployeeDepartment = (%q, %v), want (%q, nil)", got, err, dept.ID)
	}
	got, err = svc.EmployeeDepartment(context.Background(), loose.ID)
	if err != nil || got != "" {
		t.Fatalf("unlinked employee: (%q, %v), want empty", got, err)
	}
	got, err = svc.EmployeeDepartment(context.Background(), uuid.NewString())
	if err != nil || got != "" {
		t.Fatalf("missing employee should resolve to empty, got (%q, %v)", got, err)
	}
}
