package docstore

import "testing"

func TestValidCollection(t *testing.T) {
	for _, name := range []string{Employees, Departments, Accounts, WorkInfos, EmployeeSettings} {
		if err := validCollection(name); err != nil {
			t.Fatalf("validCollection(%q) = %v", name, err)
		}
	}
	for _, name := range []string{"", "users", "employees; DROP TABLE accounts", "Employees"} {
		if err := validCollection(name); err != ErrUnknownCollection {
			t.Fatalf("validCollection(%q) = %v, want ErrUnknownCollection", name, err)
		}
	}
}

func TestValidField(t *testing.T) {
	for _, name := range []string{"employee_id", "email", "department_id"} {
		if err := validField(name); err != nil {
			t.Fatalf("validField(%q) = %v", name, err)
		}
	}
	for _, name := range []string{"", "Email", "employee-id", "doc'--", "a b"} {
		if err := validField(name); err != ErrInvalidField {
			t.Fatalf("validField(%q) = %v, want ErrInvalidField", name, err)
		}
	}
}
