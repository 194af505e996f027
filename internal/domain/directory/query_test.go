package directory

import (
	"context"
	"fmt"
	"testing"

	"hrdesk/internal/docstore"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, limit, want int
	}{
		{0, 5, 0},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{12, 5, 3},
	}
	for _, tc := range tests {
		if got := totalPages(tc.total, tc.limit); got != tc.want {
			t.Fatalf("totalPages(%d, %d) = %d, want %d", tc.total, tc.limit, got, tc.want)
		}
	}
}

func TestEmployeesPageWindows(t *testing.T) {
	store := newFakeStore()
	for i := 0; i < 12; i++ {
		store.addEmployee(Employee{FullName: fmt.Sprintf("Employee %02d", i), WorkEmail: fmt.Sprintf("e%02d@example.com", i)})
	}
	svc, _ := newTestService(store)

	limit := 5
	seen := 0
	for page := 1; page <= 3; page++ {
		result, err := svc.EmployeesPage(context.Background(), page, limit)
		if err != nil {
			t.Fatalf("page %d: %v", page, err)
		}
		if result.Total != 12 {
			t.Fatalf("page %d: total = %d, want 12", page, result.Total)
		}
		if result.TotalPages != 3 {
			t.Fatalf("page %d: totalPages = %d, want 3", page, result.TotalPages)
		}
		seen += len(result.Employees)
	}
	if seen != 12 {
		t.Fatalf("windows sum to %d, want 12", seen)
	}

	last, err := svc.EmployeesPage(context.Background(), 3, limit)
	if err != nil {
		t.Fatalf("last page: %v", err)
	}
	if len(last.Employees) != 2 {
		t.Fatalf("last window size = %d, want 2", len(last.Employees))
	}
}

func TestEmployeesPageOutOfRangeIsEmpty(t *testing.T) {
	store := newFakeStore()
	store.addEmployee(Employee{FullName: "Only One", WorkEmail: "one@example.com"})
	svc, _ := newTestService(store)

	result, err := svc.EmployeesPage(context.Background(), 9, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Employees) != 0 {
		t.Fatalf("expected empty window, got %d", len(result.Employees))
	}
	if result.Employees == nil {
		t.Fatal("window should be an empty list, not nil")
	}
}

func TestSearchEmployeesMatchesAcrossFields(t *testing.T) {
	store := newFakeStore()
	dept := store.addDepartment(Department{Name: "Engineering", Company: "Acme"})
	store.addEmployee(Employee{FullName: "Ada Lovelace", JobPosition: "analyst", WorkEmail: "ada@example.com", DepartmentID: &dept.ID})
	store.addEmployee(Employee{FullName: "Grace Hopper", JobPosition: "compiler engineer", WorkEmail: "grace@example.com"})
	store.addEmployee(Employee{FullName: "Joan Clarke", JobPosition: "cryptanalyst", WorkEmail: "joan@example.com", Tags: []string{"remote"}})
	svc, _ := newTestService(store)

	tests := []struct {
		term string
		want int
	}{
		{"ada", 1},         // name
		{"ENGINEER", 2},    // position and department name
		{"remote", 1},      // tag
		{"nonexistent", 0}, // no match
	}
	for _, tc := range tests {
		got, err := svc.SearchEmployees(context.Background(), tc.term)
		if err != nil {
			t.Fatalf("search %q: %v", tc.term, err)
		}
		if len(got) != tc.want {
			t.Fatalf("search %q: %d matches, want %d", tc.term, len(got), tc.want)
		}
	}
}

func TestFilterEmployeesSkillsAreConjunctive(t *testing.T) {
	store := newFakeStore()
	both := store.addEmployee(Employee{FullName: "Ada Lovelace", WorkEmail: "ada@example.com"})
	oneOnly := store.addEmployee(Employee{FullName: "Grace Hopper", WorkEmail: "grace@example.com"})
	store.addSub(docstore.ProgrammingSkills, both.ID, `{"name":"Go","employee_id":"`+both.ID+`"}`)
	store.addSub(docstore.LanguageSkills, both.ID, `{"language_name":"English","employee_id":"`+both.ID+`"}`)
	store.addSub(docstore.ProgrammingSkills, oneOnly.ID, `{"name":"Go","employee_id":"`+oneOnly.ID+`"}`)
	svc, _ := newTestService(store)

	got, err := svc.FilterEmployees(context.Background(), Filter{Skills: []string{"go", "english"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != both.ID {
		t.Fatalf("expected only the employee with both skills, got %+v", got)
	}
}

func TestFilterEmployeesRejectsMalformedDepartment(t *testing.T) {
	svc, _ := newTestService(newFakeStore())

	if _, err := svc.FilterEmployees(context.Background(), Filter{DepartmentID: "nope"}); err != ErrInvalidID {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestEmployeeStatsOmitsEmptyGroups(t *testing.T) {
	store := newFakeStore()
	eng := store.addDepartment(Department{Name: "Engineering", Company: "Acme"})
	store.addDepartment(Department{Name: "Empty", Company: "Acme"})
	store.addEmployee(Employee{FullName: "Ada Lovelace", JobPosition: "engineer", WorkEmail: "ada@example.com", DepartmentID: &eng.ID})
	store.addEmployee(Employee{FullName: "Grace Hopper", JobPosition: "engineer", WorkEmail: "grace@example.com", DepartmentID: &eng.ID})
	store.addEmployee(Employee{FullName: "Joan Clarke", WorkEmail: "joan@example.com"})
	svc, _ := newTestService(store)

	stats, err := svc.EmployeeStats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.ByDepartment["Engineering"] != 2 {
		t.Fatalf("Engineering count = %d, want 2", stats.ByDepartment["Engineering"])
	}
	if _, ok := stats.ByDepartment["Empty"]; ok {
		t.Fatal("empty department should be omitted")
	}
	if stats.ByPosition["engineer"] != 2 {
		t.Fatalf("engineer count = %d, want 2", stats.ByPosition["engineer"])
	}
	if _, ok := stats.ByPosition[""]; ok {
		t.Fatal("blank position should be omitted")
	}
}

func TestEmployeesByDepartment(t *testing.T) {
	store := newFakeStore()
	dept := store.addDepartment(Department{Name: "Sales", Company: "Acme"})
	store.addEmployee(Employee{FullName: "In Dept", WorkEmail: "in@example.com", DepartmentID: &dept.ID})
	store.addEmployee(Employee{FullName: "Outside", WorkEmail: "out@example.com"})
	svc, _ := newTestService(store)

	got, err := svc.EmployeesByDepartment(context.Background(), dept.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].FullName != "In Dept" {
		t.Fatalf("unexpected result: %+v", got)
	}

	if _, err := svc.EmployeesByDepartment(context.Background(), "bad-id"); err != ErrInvalidID {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}
