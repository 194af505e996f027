package directory

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"hrdesk/internal/docstore"
)

// Filter is a conjunction: every populated criterion must hold, and an
// employee must possess all requested skills, not just one.
type Filter struct {
	DepartmentID string   `json:"department_id"`
	Position     string   `json:"position"`
	Skills       []string `json:"skills"`
}

type PageResult struct {
	Employees  []Employee `json:"employees"`
	Total      int        `json:"total"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
	TotalPages int        `json:"total_pages"`
}

type Stats struct {
	ByDepartment map[string]int `json:"by_department"`
	ByPosition   map[string]int `json:"by_position"`
}

// SearchEmployees matches the term case-insensitively against name,
// position, tags, and the resolved department name.
func (s *Service) SearchEmployees(ctx context.Context, term string) ([]Employee, error) {
	employees, err := s.store.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}
	deptNames, err := s.departmentNames(ctx)
	if err != nil {
		return nil, err
	}

	matches := []Employee{}
	for _, e := range employees {
		if matchesTerm(e, departmentName(deptNames, e.DepartmentID), term) {
			matches = append(matches, e)
		}
	}
	return matches, nil
}

func (s *Service) EmployeesByDepartment(ctx context.Context, departmentID string) ([]Employee, error) {
	if _, err := uuid.Parse(departmentID); err != nil {
		return nil, ErrInvalidID
	}
	return s.store.FindEmployeesByField(ctx, "department_id", departmentID)
}

func (s *Service) EmployeesByPosition(ctx context.Context, position string) ([]Employee, error) {
	employees, err := s.store.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}
	matches := []Employee{}
	for _, e := range employees {
		if containsFold(e.JobPosition, position) {
			matches = append(matches, e)
		}
	}
	return matches, nil
}

func (s *Service) EmployeesByTags(ctx context.Context, tags []string) ([]Employee, error) {
	employees, err := s.store.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}
	matches := []Employee{}
	for _, e := range employees {
		if matchesTags(e, tags) {
			matches = append(matches, e)
		}
	}
	return matches, nil
}

// FilterEmployees applies the advanced filter. The skills criterion needs
// the flattened skill-name projection, so it is only computed for
// employees that already pass the cheap criteria.
func (s *Service) FilterEmployees(ctx context.Context, f Filter) ([]Employee, error) {
	if f.DepartmentID != "" {
		if _, err := uuid.Parse(f.DepartmentID); err != nil {
			return nil, ErrInvalidID
		}
	}
	employees, err := s.store.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}

	matches := []Employee{}
	for _, e := range employees {
		if f.DepartmentID != "" && (e.DepartmentID == nil || *e.DepartmentID != f.DepartmentID) {
			continue
		}
		if f.Position != "" && !containsFold(e.JobPosition, f.Position) {
			continue
		}
		if len(f.Skills) > 0 {
			names, err := s.skillNames(ctx, e.ID)
			if err != nil {
				return nil, err
			}
			if !hasAllSkills(names, f.Skills) {
				continue
			}
		}
		matches = append(matches, e)
	}
	return matches, nil
}

// EmployeesPage returns one window plus the totals needed to render a
// pager. Pages past the end come back empty rather than failing.
func (s *Service) EmployeesPage(ctx context.Context, page, limit int) (*PageResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	total, err := s.store.CountEmployees(ctx)
	if err != nil {
		return nil, err
	}
	window, err := s.store.ListEmployeesPage(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	if window == nil {
		window = []Employee{}
	}
	return &PageResult{
		Employees:  window,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

// EmployeeStats counts employees per department (by resolved name) and
// per position. Only observed groups appear.
func (s *Service) EmployeeStats(ctx context.Context) (*Stats, error) {
	employees, err := s.store.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}
	deptNames, err := s.departmentNames(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{ByDepartment: map[string]int{}, ByPosition: map[string]int{}}
	for _, e := range employees {
		if name := departmentName(deptNames, e.DepartmentID); name != "" {
			stats.ByDepartment[name]++
		}
		if e.JobPosition != "" {
			stats.ByPosition[e.JobPosition]++
		}
	}
	return stats, nil
}

func (s *Service) departmentNames(ctx context.Context) (map[string]string, error) {
	departments, err := s.store.ListDepartments(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(departments))
	for _, d := range departments {
		names[d.ID] = d.Name
	}
	return names, nil
}

func departmentName(names map[string]string, id *string) string {
	if id == nil {
		return ""
	}
	return names[*id]
}

// skillNames flattens the three skill families into one name projection.
func (s *Service) skillNames(ctx context.Context, employeeID string) ([]string, error) {
	var names []string
	for _, collection := range []string{docstore.ProgrammingSkills, docstore.LanguageSkills, docstore.OtherSkills} {
		docs, err := s.store.FindSubRecords(ctx, collection, employeeID)
		if err != nil {
			return nil, err
		}
		for _, doc := range docs {
			var rec struct {
				Name         string `json:"name"`
				LanguageName string `json:"language_name"`
				SkillName    string `json:"skill_name"`
			}
			if err := json.Unmarshal(doc, &rec); err != nil {
				continue
			}
			for _, name := range []string{rec.Name, rec.LanguageName, rec.SkillName} {
				if name != "" {
					names = append(names, name)
				}
			}
		}
	}
	return names, nil
}

func matchesTerm(e Employee, deptName, term string) bool {
	if term == "" {
		return true
	}
	if containsFold(e.FullName, term) || containsFold(e.JobPosition, term) || containsFold(deptName, term) {
		return true
	}
	for _, tag := range e.Tags {
		if containsFold(tag, term) {
			return true
		}
	}
	return false
}

func matchesTags(e Employee, patterns []string) bool {
	for _, tag := range e.Tags {
		for _, p := range patterns {
			if containsFold(tag, p) {
				return true
			}
		}
	}
	return false
}

func hasAllSkills(names, wanted []string) bool {
	for _, w := range wanted {
		found := false
		for _, n := range names {
			if strings.EqualFold(n, w) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func totalPages(total, limit int) int {
	if total == 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
