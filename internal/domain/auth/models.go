package auth

const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleTeamLead = "team_lead"
	RoleEmployee = "employee"
)

func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleTeamLead, RoleEmployee:
		return true
	}
	return false
}

type Account struct {
	ID           string  `json:"id,omitempty"`
	Email        string  `json:"email"`
	PasswordHash string  `json:"password_hash"`
	Role         string  `json:"role"`
	EmployeeID   *string `json:"employee_id"`
}

// Summary is the account shape safe to hand back to clients: everything
// except the password hash.
type Summary struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	EmployeeID *string `json:"employee_id"`
}

func (a *Account) Summary() Summary {
	return Summary{ID: a.ID, Email: a.Email, Role: a.Role, EmployeeID: a.EmployeeID}
}
