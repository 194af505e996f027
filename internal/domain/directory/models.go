package directory

// Employee is the hub entity; every sub-record family points back at it
// through an employee_id reference.
type Employee struct {
	ID           string   `json:"id,omitempty"`
	FullName     string   `json:"full_name"`
	Status       string   `json:"status"`
	JobPosition  string   `json:"job_position"`
	WorkEmail    string   `json:"work_email"`
	WorkPhone    string   `json:"work_phone"`
	WorkMobile   string   `json:"work_mobile"`
	Image        string   `json:"image"`
	Tags         []string `json:"tags"`
	Company      string   `json:"company"`
	DepartmentID *string  `json:"department_id"`
	ManagerID    *string  `json:"manager_id"`
	CoachID      *string  `json:"coach_id"`
}

// Normalize fills the defaults applied on creation: blank text fields stay
// blank, tags become an empty set, status falls back to offline, and the
// literal string "null" on a reference collapses to a true null.
func (e *Employee) Normalize() {
	if e.Tags == nil {
		e.Tags = []string{}
	}
	if e.Status == "" {
		e.Status = StatusOffline
	}
	e.DepartmentID = normalizeRef(e.DepartmentID)
	e.ManagerID = normalizeRef(e.ManagerID)
	e.CoachID = normalizeRef(e.CoachID)
}

func normalizeRef(ref *string) *string {
	if ref == nil || *ref == "" || *ref == "null" {
		return nil
	}
	return ref
}

type Department struct {
	ID        string  `json:"id,omitempty"`
	Name      string  `json:"name"`
	Company   string  `json:"company"`
	ManagerID *string `json:"manager_id"`
}
