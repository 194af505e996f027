package directory

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// GeneralInfo is the employee's own fields with the three single-valued
// references resolved in place.
type GeneralInfo struct {
	Employee
	Department *Department `json:"department"`
	Manager    *Employee   `json:"manager"`
	Coach      *Employee   `json:"coach"`
}

type GeneralResume struct {
	Experiences       []json.RawMessage `json:"experiences"`
	Educations        []json.RawMessage `json:"educations"`
	ProgrammingSkills []json.RawMessage `json:"programming_skills"`
	LanguageSkills    []json.RawMessage `json:"language_skills"`
	OtherSkills       []json.RawMessage `json:"other_skills"`
}

type PrivateInfo struct {
	Contact           json.RawMessage   `json:"contact"`
	EmergencyContacts []json.RawMessage `json:"emergency_contacts"`
	FamilyStatus      json.RawMessage   `json:"family_status"`
	Educations        []json.RawMessage `json:"educations"`
	WorkPermit        json.RawMessage   `json:"work_permit"`
}

// EmployeeView is the fully joined representation of one employee. Every
// section is always present; a missing sub-record shows up as null (for
// single-valued slots) or an empty list, never as an omitted key.
type EmployeeView struct {
	GeneralInfo   GeneralInfo     `json:"general_info"`
	GeneralResume GeneralResume   `json:"general_resume"`
	WorkInfo      json.RawMessage `json:"work_info"`
	PrivateInfo   PrivateInfo     `json:"private_info"`
	Settings      json.RawMessage `json:"settings"`
}

// EmployeeView assembles the aggregate view for one employee. The
// reference resolutions and sub-record fetches are independent reads, so
// they run concurrently; the response is only assembled once all of them
// have completed.
func (s *Service) EmployeeView(ctx context.Context, id string) (*EmployeeView, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidID
	}
	emp, err := s.store.GetEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.assembleView(ctx, emp)
}

// AllEmployeeViews runs the same join plan for every employee and keys
// the results by employee id.
func (s *Service) AllEmployeeViews(ctx context.Context) (map[string]*EmployeeView, error) {
	employees, err := s.store.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*EmployeeView, len(employees))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i := range employees {
		i := i
		g.Go(func() error {
			view, err := s.assembleView(ctx, &employees[i])
			if err != nil {
				return err
			}
			views[i] = view
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]*EmployeeView, len(views))
	for _, v := range views {
		out[v.GeneralInfo.ID] = v
	}
	return out, nil
}

func (s *Service) assembleView(ctx context.Context, emp *Employee) (*EmployeeView, error) {
	slots := make([][]json.RawMessage, len(JoinPlan))
	var dept *Department
	var manager, coach *Employee

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		dept, err = s.resolveDepartment(ctx, emp.DepartmentID)
		return err
	})
	g.Go(func() error {
		var err error
		manager, err = s.resolveEmployee(ctx, emp.ManagerID)
		return err
	})
	g.Go(func() error {
		var err error
		coach, err = s.resolveEmployee(ctx, emp.CoachID)
		return err
	})
	for i, join := range JoinPlan {
		i, join := i, join
		g.Go(func() error {
			docs, err := s.store.FindSubRecords(ctx, join.Collection, emp.ID)
			if err != nil {
				return err
			}
			slots[i] = docs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byName := make(map[string][]json.RawMessage, len(JoinPlan))
	for i, join := range JoinPlan {
		byName[join.Slot] = slots[i]
	}

	gi := GeneralInfo{Employee: *emp, Department: dept, Manager: manager, Coach: coach}
	return assembleFromSlots(gi, byName), nil
}

// assembleFromSlots is the pure reshaping step: single-valued slots
// flatten to the first document or null, multi-valued slots stay ordered
// lists (never nil, so they serialize as []).
func assembleFromSlots(gi GeneralInfo, slots map[string][]json.RawMessage) *EmployeeView {
	return &EmployeeView{
		GeneralInfo: gi,
		GeneralResume: GeneralResume{
			Experiences:       manySlot(slots, SlotExperiences),
			Educations:        manySlot(slots, SlotEducations),
			ProgrammingSkills: manySlot(slots, SlotProgrammingSkills),
			LanguageSkills:    manySlot(slots, SlotLanguageSkills),
			OtherSkills:       manySlot(slots, SlotOtherSkills),
		},
		WorkInfo: oneSlot(slots, SlotWorkInfo),
		PrivateInfo: PrivateInfo{
			Contact:           oneSlot(slots, SlotContact),
			EmergencyContacts: manySlot(slots, SlotEmergencyContacts),
			FamilyStatus:      oneSlot(slots, SlotFamilyStatus),
			Educations:        manySlot(slots, SlotPrivateEducations),
			WorkPermit:        oneSlot(slots, SlotWorkPermit),
		},
		Settings: oneSlot(slots, SlotSettings),
	}
}

func oneSlot(slots map[string][]json.RawMessage, name string) json.RawMessage {
	docs := slots[name]
	if len(docs) == 0 {
		return nil
	}
	return docs[0]
}

func manySlot(slots map[string][]json.RawMessage, name string) []json.RawMessage {
	docs := slots[name]
	if docs == nil {
		return []json.RawMessage{}
	}
	return docs
}

// A dangling reference resolves to null rather than failing the whole
// view.
func (s *Service) resolveDepartment(ctx context.Context, id *string) (*Department, error) {
	if id == nil {
		return nil, nil
	}
	dept, err := s.store.GetDepartment(ctx, *id)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return dept, nil
}

func (s *Service) resolveEmployee(ctx context.Context, id *string) (*Employee, error) {
	if id == nil {
		return nil, nil
	}
	emp, err := s.store.GetEmployee(ctx, *id)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return emp, nil
}
