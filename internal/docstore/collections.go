package docstore

// Collection names double as table names, so every name that reaches SQL
// must come from this registry.
const (
	Employees         = "employees"
	Departments       = "departments"
	Accounts          = "accounts"
	Experiences       = "experiences"
	Educations        = "educations"
	ProgrammingSkills = "programming_skills"
	LanguageSkills    = "language_skills"
	OtherSkills       = "other_skills"
	PrivateContacts   = "private_contacts"
	EmergencyContacts = "emergency_contacts"
	FamilyStatuses    = "family_statuses"
	PrivateEducations = "private_educations"
	WorkPermits       = "work_permits"
	WorkInfos         = "work_infos"
	EmployeeSettings  = "employee_settings"
)

var collections = map[string]bool{
	Employees:         true,
	Departments:       true,
	Accounts:          true,
	Experiences:       true,
	Educations:        true,
	ProgrammingSkills: true,
	LanguageSkills:    true,
	OtherSkills:       true,
	PrivateContacts:   true,
	EmergencyContacts: true,
	FamilyStatuses:    true,
	PrivateEducations: true,
	WorkPermits:       true,
	WorkInfos:         true,
	EmployeeSettings:  true,
}

func validCollection(name string) error {
	if !collections[name] {
		return ErrUnknownCollection
	}
	return nil
}

// Reference fields are interpolated into doc->>'<field>' expressions, so
// they are restricted to lower-case identifiers.
func validField(name string) error {
	if name == "" {
		return ErrInvalidField
	}
	for _, r := range name {
		if (r < 'a' || r > 'z') && r != '_' {
			return ErrInvalidField
		}
	}
	return nil
}
