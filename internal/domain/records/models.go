package records

// Sub-record documents. Dates travel as ISO-8601 strings; an empty
// string means unset.

type Experience struct {
	ID             string `json:"id,omitempty"`
	EmployeeID     string `json:"employee_id"`
	DateFrom       string `json:"date_from"`
	DateTo         string `json:"date_to"`
	Title          string `json:"title"`
	JobDescription string `json:"job_description"`
}

type Education struct {
	ID         string `json:"id,omitempty"`
	EmployeeID string `json:"employee_id"`
	Title      string `json:"title"`
	FromDate   string `json:"from_date"`
	ToDate     string `json:"to_date"`
	School     string `json:"school"`
}

type ProgrammingSkill struct {
	ID         string  `json:"id,omitempty"`
	EmployeeID string  `json:"employee_id"`
	Name       string  `json:"name"`
	Level      string  `json:"level"`
	Percentage float64 `json:"percentage"`
}

type LanguageSkill struct {
	ID           string  `json:"id,omitempty"`
	EmployeeID   string  `json:"employee_id"`
	LanguageName string  `json:"language_name"`
	Level        string  `json:"level"`
	Percentage   float64 `json:"percentage"`
}

type OtherSkill struct {
	ID         string  `json:"id,omitempty"`
	EmployeeID string  `json:"employee_id"`
	Category   string  `json:"category"`
	SkillName  string  `json:"skill_name"`
	Level      string  `json:"level"`
	Percentage float64 `json:"percentage"`
}

type PrivateContact struct {
	ID               string `json:"id,omitempty"`
	EmployeeID       string `json:"employee_id"`
	Street           string `json:"street"`
	Street2          string `json:"street2"`
	City             string `json:"city"`
	State            string `json:"state"`
	Zip              string `json:"zip"`
	Country          string `json:"country"`
	PrivateEmail     string `json:"private_email"`
	PrivatePhone     string `json:"private_phone"`
	HomeWorkDistance string `json:"home_work_distance"`
	PrivateCarPlate  string `json:"private_car_plate"`
}

type EmergencyContact struct {
	ID           string `json:"id,omitempty"`
	EmployeeID   string `json:"employee_id"`
	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`
}

type FamilyStatus struct {
	ID                string `json:"id,omitempty"`
	EmployeeID        string `json:"employee_id"`
	MaritalStatus     string `json:"marital_status"`
	SpouseName        string `json:"spouse_name"`
	SpouseBirthday    string `json:"spouse_birthday"`
	DependentChildren int    `json:"dependent_children"`
}

type PrivateEducation struct {
	ID               string `json:"id,omitempty"`
	EmployeeID       string `json:"employee_id"`
	CertificateLevel string `json:"certificate_level"`
	FieldOfStudy     string `json:"field_of_study"`
	School           string `json:"school"`
}

type WorkPermit struct {
	ID               string `json:"id,omitempty"`
	EmployeeID       string `json:"employee_id"`
	VisaNo           string `json:"visa_no"`
	WorkPermit       string `json:"work_permit"`
	VisaExpiration   string `json:"visa_expiration"`
	PermitExpiration string `json:"permit_expiration"`
}

type WorkInfo struct {
	ID                  string  `json:"id,omitempty"`
	EmployeeID          string  `json:"employee_id"`
	WorkAddress         string  `json:"work_address"`
	WorkLocation        string  `json:"work_location"`
	ApproverTimeoffID   *string `json:"approver_timeoff_id"`
	ApproverTimesheetID *string `json:"approver_timesheet_id"`
	WorkingHours        string  `json:"working_hours"`
	Timezone            string  `json:"timezone"`
}

type EmployeeSettings struct {
	ID           string  `json:"id,omitempty"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeType string  `json:"employee_type"`
	RelatedUser  string  `json:"related_user"`
	HourlyCost   float64 `json:"hourly_cost"`
	PosPinCode   string  `json:"pos_pin_code"`
	BadgeID      string  `json:"badge_id"`
}
