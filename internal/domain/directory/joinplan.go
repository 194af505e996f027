package directory

import "hrdesk/internal/docstore"

// Cardinality says whether a slot in the aggregate view holds a single
// document or an ordered list.
type Cardinality int

const (
	One Cardinality = iota
	Many
)

// Join declares one sub-record family: which collection it lives in,
// which field points back at the employee, and where the fetched
// documents land in the aggregate view. Adding a family to the view is
// a new row here, not new code.
type Join struct {
	Collection   string
	ForeignField string
	Slot         string
	Cardinality  Cardinality
}

var JoinPlan = []Join{
	{Collection: docstore.Experiences, ForeignField: "employee_id", Slot: SlotExperiences, Cardinality: Many},
	{Collection: docstore.Educations, ForeignField: "employee_id", Slot: SlotEducations, Cardinality: Many},
	{Collection: docstore.ProgrammingSkills, ForeignField: "employee_id", Slot: SlotProgrammingSkills, Cardinality: Many},
	{Collection: docstore.LanguageSkills, ForeignField: "employee_id", Slot: SlotLanguageSkills, Cardinality: Many},
	{Collection: docstore.OtherSkills, ForeignField: "employee_id", Slot: SlotOtherSkills, Cardinality: Many},
	{Collection: docstore.PrivateContacts, ForeignField: "employee_id", Slot: SlotContact, Cardinality: One},
	{Collection: docstore.EmergencyContacts, ForeignField: "employee_id", Slot: SlotEmergencyContacts, Cardinality: Many},
	{Collection: docstore.FamilyStatuses, ForeignField: "employee_id", Slot: SlotFamilyStatus, Cardinality: One},
	{Collection: docstore.PrivateEducations, ForeignField: "employee_id", Slot: SlotPrivateEducations, Cardinality: Many},
	{Collection: docstore.WorkPermits, ForeignField: "employee_id", Slot: SlotWorkPermit, Cardinality: One},
	{Collection: docstore.WorkInfos, ForeignField: "employee_id", Slot: SlotWorkInfo, Cardinality: One},
	{Collection: docstore.EmployeeSettings, ForeignField: "employee_id", Slot: SlotSettings, Cardinality: One},
}

const (
	SlotExperiences       = "experiences"
	SlotEducations        = "educations"
	SlotProgrammingSkills = "programming_skills"
	SlotLanguageSkills    = "language_skills"
	SlotOtherSkills       = "other_skills"
	SlotContact           = "contact"
	SlotEmergencyContacts = "emergency_contacts"
	SlotFamilyStatus      = "family_status"
	SlotPrivateEducations = "private_educations"
	SlotWorkPermit        = "work_permit"
	SlotWorkInfo          = "work_info"
	SlotSettings          = "settings"
)
