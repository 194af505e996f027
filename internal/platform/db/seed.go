package db

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"hrdesk/internal/docstore"
	"hrdesk/internal/domain/auth"
	"hrdesk/internal/domain/directory"
	"hrdesk/internal/domain/records"
	"hrdesk/internal/platform/config"
)

// Seed loads a small deterministic directory on first boot: three
// departments, a handful of employees with sub-records, an admin
// account, and derived credentials for each department manager. It is a
// no-op when the admin account already exists.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	docs := docstore.New(pool)

	if _, err := docs.FindOneByField(ctx, docstore.Accounts, "email", cfg.SeedAdminEmail); err == nil {
		return nil
	} else if !errors.Is(err, docstore.ErrNotFound) {
		return err
	}

	deptIDs := map[string]string{}
	for _, name := range []string{"Engineering", "Human Resources", "Sales"} {
		id, err := insertDoc(ctx, docs, docstore.Departments, directory.Department{
			Name:    name,
			Company: cfg.SeedCompanyName,
		})
		if err != nil {
			return err
		}
		deptIDs[name] = id
	}

	type seedEmployee struct {
		directory.Employee
		dept    string
		manager bool
	}
	seedEmployees := []seedEmployee{
		{Employee: directory.Employee{FullName: "Alice Johnson", JobPosition: "manager", WorkEmail: "alice.johnson@example.com", Tags: []string{"full-time", "senior"}}, dept: "Engineering", manager: true},
		{Employee: directory.Employee{FullName: "Bob Smith", JobPosition: "team lead", WorkEmail: "bob.smith@example.com", Tags: []string{"full-time"}}, dept: "Engineering"},
		{Employee: directory.Employee{FullName: "Carol White", JobPosition: "software engineer", WorkEmail: "carol.white@example.com", Tags: []string{"remote"}}, dept: "Engineering"},
		{Employee: directory.Employee{FullName: "Dan Brown", JobPosition: "manager", WorkEmail: "dan.brown@example.com", Tags: []string{"full-time"}}, dept: "Human Resources", manager: true},
		{Employee: directory.Employee{FullName: "Eve Davis", JobPosition: "recruiter", WorkEmail: "eve.davis@example.com", Tags: []string{"part-time"}}, dept: "Human Resources"},
		{Employee: directory.Employee{FullName: "Frank Miller", JobPosition: "sales representative", WorkEmail: "frank.miller@example.com", Tags: []string{"full-time", "junior"}}, dept: "Sales"},
	}

	managerIDs := map[string]string{}
	var employeeIDs []string
	for _, seed := range seedEmployees {
		deptID := deptIDs[seed.dept]
		seed.Company = cfg.SeedCompanyName
		seed.DepartmentID = &deptID
		seed.Normalize()
		id, err := insertDoc(ctx, docs, docstore.Employees, seed.Employee)
		if err != nil {
			return err
		}
		employeeIDs = append(employeeIDs, id)
		if seed.manager {
			managerIDs[seed.dept] = id
		}
	}

	for dept, managerID := range managerIDs {
		raw, err := json.Marshal(map[string]any{"manager_id": managerID})
		if err != nil {
			return err
		}
		if _, err := docs.MergePatch(ctx, docstore.Departments, deptIDs[dept], raw); err != nil {
			return err
		}
	}

	if len(employeeIDs) > 0 {
		if err := seedSubRecords(ctx, docs, employeeIDs[0]); err != nil {
			return err
		}
	}

	adminHash, err := auth.HashPassword(cfg.SeedAdminPassword)
	if err != nil {
		return err
	}
	if _, err := insertDoc(ctx, docs, docstore.Accounts, auth.Account{
		Email:        cfg.SeedAdminEmail,
		PasswordHash: adminHash,
		Role:         auth.RoleAdmin,
	}); err != nil {
		return err
	}

	provisioner := auth.NewProvisioner(auth.NewStore(docs))
	for i, seed := range seedEmployees {
		if !seed.manager {
			continue
		}
		if _, _, err := provisioner.ReplaceForEmployee(ctx, employeeIDs[i], seed.WorkEmail, seed.FullName, auth.RoleManager); err != nil {
			return err
		}
	}

	log.Printf("seeded %d departments, %d employees", len(deptIDs), len(employeeIDs))
	return nil
}

func seedSubRecords(ctx context.Context, docs *docstore.Store, employeeID string) error {
	subRecords := []struct {
		collection string
		doc        any
	}{
		{docstore.Experiences, records.Experience{EmployeeID: employeeID, DateFrom: "2019-03-01", DateTo: "2022-08-31", Title: "Senior Engineer", JobDescription: "Led the platform team."}},
		{docstore.Educations, records.Education{EmployeeID: employeeID, Title: "BSc Computer Science", FromDate: "2012-09-01", ToDate: "2016-06-30", School: "State University"}},
		{docstore.ProgrammingSkills, records.ProgrammingSkill{EmployeeID: employeeID, Name: "Go", Level: "Advanced", Percentage: 85}},
		{docstore.LanguageSkills, records.LanguageSkill{EmployeeID: employeeID, LanguageName: "English", Level: "Fluent", Percentage: 95}},
		{docstore.PrivateContacts, records.PrivateContact{EmployeeID: employeeID, Street: "12 Main St", City: "Springfield", Country: "US", PrivateEmail: "alice@home.example"}},
		{docstore.EmployeeSettings, records.EmployeeSettings{EmployeeID: employeeID, EmployeeType: "Full-time", HourlyCost: 42, BadgeID: "B-0001"}},
	}
	for _, rec := range subRecords {
		if _, err := insertDoc(ctx, docs, rec.collection, rec.doc); err != nil {
			return err
		}
	}
	return nil
}

func insertDoc(ctx context.Context, docs *docstore.Store, collection string, v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return docs.Insert(ctx, collection, raw)
}
