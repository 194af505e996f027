package records

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"hrdesk/internal/docstore"
)

// SkillsView bundles the three skill families for one employee.
type SkillsView struct {
	EmployeeID        string             `json:"employee_id"`
	ProgrammingSkills []ProgrammingSkill `json:"programming_skills"`
	LanguageSkills    []LanguageSkill    `json:"language_skills"`
	OtherSkills       []OtherSkill       `json:"other_skills"`
}

func newSkillsView(employeeID string) *SkillsView {
	return &SkillsView{
		EmployeeID:        employeeID,
		ProgrammingSkills: []ProgrammingSkill{},
		LanguageSkills:    []LanguageSkill{},
		OtherSkills:       []OtherSkill{},
	}
}

func (s *Service) EmployeeSkills(ctx context.Context, employeeID string) (*SkillsView, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, ErrInvalidID
	}
	view := newSkillsView(employeeID)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.fetchFamily(ctx, docstore.ProgrammingSkills, employeeID, &view.ProgrammingSkills)
	})
	g.Go(func() error {
		return s.fetchFamily(ctx, docstore.LanguageSkills, employeeID, &view.LanguageSkills)
	})
	g.Go(func() error {
		return s.fetchFamily(ctx, docstore.OtherSkills, employeeID, &view.OtherSkills)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return view, nil
}

// AllSkills groups every skill record by employee id.
func (s *Service) AllSkills(ctx context.Context) (map[string]*SkillsView, error) {
	views := map[string]*SkillsView{}
	at := func(id string) *SkillsView {
		v, ok := views[id]
		if !ok {
			v = newSkillsView(id)
			views[id] = v
		}
		return v
	}

	programming, err := listAs[ProgrammingSkill](ctx, s.docs, docstore.ProgrammingSkills)
	if err != nil {
		return nil, err
	}
	for _, rec := range programming {
		v := at(rec.EmployeeID)
		v.ProgrammingSkills = append(v.ProgrammingSkills, rec)
	}

	languages, err := listAs[LanguageSkill](ctx, s.docs, docstore.LanguageSkills)
	if err != nil {
		return nil, err
	}
	for _, rec := range languages {
		v := at(rec.EmployeeID)
		v.LanguageSkills = append(v.LanguageSkills, rec)
	}

	others, err := listAs[OtherSkill](ctx, s.docs, docstore.OtherSkills)
	if err != nil {
		return nil, err
	}
	for _, rec := range others {
		v := at(rec.EmployeeID)
		v.OtherSkills = append(v.OtherSkills, rec)
	}

	return views, nil
}

// EmployeesWithSkill returns the ids of employees holding a skill whose
// name matches the term case-insensitively, in stable order.
func (s *Service) EmployeesWithSkill(ctx context.Context, skill string) ([]string, error) {
	views, err := s.AllSkills(ctx)
	if err != nil {
		return nil, err
	}
	ids := []string{}
	for id, v := range views {
		if v.hasSkill(skill) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (v *SkillsView) hasSkill(term string) bool {
	for _, rec := range v.ProgrammingSkills {
		if containsFold(rec.Name, term) {
			return true
		}
	}
	for _, rec := range v.LanguageSkills {
		if containsFold(rec.LanguageName, term) {
			return true
		}
	}
	for _, rec := range v.OtherSkills {
		if containsFold(rec.SkillName, term) {
			return true
		}
	}
	return false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// PrivateInfoView bundles the private-info families for one employee.
// Singleton slots are null when unset; list slots are never nil.
type PrivateInfoView struct {
	EmployeeID        string             `json:"employee_id"`
	Contact           *PrivateContact    `json:"contact"`
	EmergencyContacts []EmergencyContact `json:"emergency_contacts"`
	FamilyStatus      *FamilyStatus      `json:"family_status"`
	Educations        []PrivateEducation `json:"educations"`
	WorkPermit        *WorkPermit        `json:"work_permit"`
}

func (s *Service) EmployeePrivateInfo(ctx context.Context, employeeID string) (*PrivateInfoView, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, ErrInvalidID
	}
	view := &PrivateInfoView{
		EmployeeID:        employeeID,
		EmergencyContacts: []EmergencyContact{},
		Educations:        []PrivateEducation{},
	}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		view.Contact, err = findOneAs[PrivateContact](ctx, s.docs, docstore.PrivateContacts, employeeID)
		return err
	})
	g.Go(func() error {
		return s.fetchFamily(ctx, docstore.EmergencyContacts, employeeID, &view.EmergencyContacts)
	})
	g.Go(func() error {
		var err error
		view.FamilyStatus, err = findOneAs[FamilyStatus](ctx, s.docs, docstore.FamilyStatuses, employeeID)
		return err
	})
	g.Go(func() error {
		return s.fetchFamily(ctx, docstore.PrivateEducations, employeeID, &view.Educations)
	})
	g.Go(func() error {
		var err error
		view.WorkPermit, err = findOneAs[WorkPermit](ctx, s.docs, docstore.WorkPermits, employeeID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return view, nil
}

// findOneAs resolves a singleton family to its document or nil.
func findOneAs[T any](ctx context.Context, docs DocAPI, collection, employeeID string) (*T, error) {
	raw, err := docs.FindOneByField(ctx, collection, "employee_id", employeeID)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var rec T
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// EmployeeWorkInfo returns the employee's work-info document, or
// ErrRecordNotFound when none exists yet.
func (s *Service) EmployeeWorkInfo(ctx context.Context, employeeID string) (*WorkInfo, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, ErrInvalidID
	}
	info, err := findOneAs[WorkInfo](ctx, s.docs, docstore.WorkInfos, employeeID)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, ErrRecordNotFound
	}
	return info, nil
}

// GetEmployeeSettings returns the employee's settings document, or
// ErrRecordNotFound when none exists yet.
func (s *Service) GetEmployeeSettings(ctx context.Context, employeeID string) (*EmployeeSettings, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, ErrInvalidID
	}
	settings, err := findOneAs[EmployeeSettings](ctx, s.docs, docstore.EmployeeSettings, employeeID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, ErrRecordNotFound
	}
	return settings, nil
}

// PrivateInfoUpdate carries the optional parts of a combined private-info
// write; absent parts are left untouched.
type PrivateInfoUpdate struct {
	PrivateContact   json.RawMessage `json:"private_contact"`
	EmergencyContact json.RawMessage `json:"emergency_contact"`
	FamilyStatus     json.RawMessage `json:"family_status"`
	Education        json.RawMessage `json:"education"`
	WorkPermit       json.RawMessage `json:"work_permit"`
}

// UpdatePrivateInfo upserts each provided part under the employee. The
// parts write sequentially; a failure leaves earlier parts committed.
func (s *Service) UpdatePrivateInfo(ctx context.Context, employeeID string, upd PrivateInfoUpdate) (map[string]json.RawMessage, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, ErrInvalidID
	}

	parts := []struct {
		slot       string
		collection string
		payload    json.RawMessage
	}{
		{"private_contact", docstore.PrivateContacts, upd.PrivateContact},
		{"emergency_contact", docstore.EmergencyContacts, upd.EmergencyContact},
		{"family_status", docstore.FamilyStatuses, upd.FamilyStatus},
		{"education", docstore.PrivateEducations, upd.Education},
		{"work_permit", docstore.WorkPermits, upd.WorkPermit},
	}

	out := map[string]json.RawMessage{}
	for _, part := range parts {
		if len(part.payload) == 0 || string(part.payload) == "null" {
			continue
		}
		stored, err := s.Upsert(ctx, part.collection, employeeID, part.payload)
		if err != nil {
			return nil, err
		}
		out[part.slot] = stored
	}
	return out, nil
}

// UpdateWorkData upserts the work-info and work-permit documents in one
// call. Missing fields default to empty, and blank approver references
// collapse to null.
func (s *Service) UpdateWorkData(ctx context.Context, employeeID string, info WorkInfo, permit WorkPermit) (*WorkInfo, *WorkPermit, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, nil, ErrInvalidID
	}

	info.ID = ""
	info.EmployeeID = employeeID
	info.ApproverTimeoffID = normalizeRef(info.ApproverTimeoffID)
	info.ApproverTimesheetID = normalizeRef(info.ApproverTimesheetID)

	permit.ID = ""
	permit.EmployeeID = employeeID

	infoDoc, err := json.Marshal(info)
	if err != nil {
		return nil, nil, err
	}
	storedInfo, err := s.docs.UpsertByField(ctx, docstore.WorkInfos, "employee_id", employeeID, infoDoc)
	if err != nil {
		return nil, nil, err
	}

	permitDoc, err := json.Marshal(permit)
	if err != nil {
		return nil, nil, err
	}
	storedPermit, err := s.docs.UpsertByField(ctx, docstore.WorkPermits, "employee_id", employeeID, permitDoc)
	if err != nil {
		return nil, nil, err
	}

	var outInfo WorkInfo
	if err := json.Unmarshal(storedInfo, &outInfo); err != nil {
		return nil, nil, err
	}
	var outPermit WorkPermit
	if err := json.Unmarshal(storedPermit, &outPermit); err != nil {
		return nil, nil, err
	}
	return &outInfo, &outPermit, nil
}

func normalizeRef(ref *string) *string {
	if ref == nil || *ref == "" || *ref == "null" {
		return nil
	}
	return ref
}
