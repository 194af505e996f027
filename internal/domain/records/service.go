// Package records manages the per-employee sub-record families: resume
// entries, skills, private info, work info, and settings. Updates are
// upserts keyed by employee id, so the first write creates the document.
package records

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"hrdesk/internal/docstore"
)

// families lists the collections exposed through the generic family
// operations.
var families = map[string]bool{
	docstore.Experiences:       true,
	docstore.Educations:        true,
	docstore.ProgrammingSkills: true,
	docstore.LanguageSkills:    true,
	docstore.OtherSkills:       true,
	docstore.PrivateContacts:   true,
	docstore.EmergencyContacts: true,
	docstore.FamilyStatuses:    true,
	docstore.PrivateEducations: true,
	docstore.WorkPermits:       true,
	docstore.WorkInfos:         true,
	docstore.EmployeeSettings:  true,
}

type Service struct {
	docs DocAPI
}

func NewService(docs DocAPI) *Service {
	return &Service{docs: docs}
}

// Create appends a new document to a family, stamping the owning
// employee id over whatever the payload carried.
func (s *Service) Create(ctx context.Context, family, employeeID string, payload json.RawMessage) (json.RawMessage, error) {
	if err := s.check(family, employeeID); err != nil {
		return nil, err
	}
	doc, err := stampEmployee(payload, employeeID)
	if err != nil {
		return nil, err
	}
	id, err := s.docs.Insert(ctx, family, doc)
	if err != nil {
		return nil, err
	}
	stored, err := s.docs.Get(ctx, family, id)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(stored), nil
}

// Upsert updates the employee's document in a family, creating it on
// first write. Re-running with the same payload changes nothing.
func (s *Service) Upsert(ctx context.Context, family, employeeID string, payload json.RawMessage) (json.RawMessage, error) {
	if err := s.check(family, employeeID); err != nil {
		return nil, err
	}
	doc, err := stampEmployee(payload, employeeID)
	if err != nil {
		return nil, err
	}
	stored, err := s.docs.UpsertByField(ctx, family, "employee_id", employeeID, doc)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(stored), nil
}

// Get fetches one record by its own id.
func (s *Service) Get(ctx context.Context, family, id string) (json.RawMessage, error) {
	if !families[family] {
		return nil, ErrUnknownFamily
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidID
	}
	doc, err := s.docs.Get(ctx, family, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return json.RawMessage(doc), nil
}

// Update replaces one record by its own id, keeping the stored
// employee_id regardless of what the payload carries.
func (s *Service) Update(ctx context.Context, family, id string, payload json.RawMessage) (json.RawMessage, error) {
	existing, err := s.Get(ctx, family, id)
	if err != nil {
		return nil, err
	}
	var owner struct {
		EmployeeID string `json:"employee_id"`
	}
	if err := json.Unmarshal(existing, &owner); err != nil {
		return nil, err
	}
	doc, err := stampEmployee(payload, owner.EmployeeID)
	if err != nil {
		return nil, err
	}
	if err := s.docs.Update(ctx, family, id, doc); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	stored, err := s.docs.Get(ctx, family, id)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(stored), nil
}

func (s *Service) ListByEmployee(ctx context.Context, family, employeeID string) ([]json.RawMessage, error) {
	if err := s.check(family, employeeID); err != nil {
		return nil, err
	}
	docs, err := s.docs.FindByField(ctx, family, "employee_id", employeeID)
	if err != nil {
		return nil, err
	}
	return rawList(docs), nil
}

func (s *Service) ListAll(ctx context.Context, family string) ([]json.RawMessage, error) {
	if !families[family] {
		return nil, ErrUnknownFamily
	}
	docs, err := s.docs.List(ctx, family)
	if err != nil {
		return nil, err
	}
	return rawList(docs), nil
}

func (s *Service) Delete(ctx context.Context, family, id string) error {
	if !families[family] {
		return ErrUnknownFamily
	}
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}
	err := s.docs.Delete(ctx, family, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return ErrRecordNotFound
	}
	return err
}

func (s *Service) check(family, employeeID string) error {
	if !families[family] {
		return ErrUnknownFamily
	}
	if _, err := uuid.Parse(employeeID); err != nil {
		return ErrInvalidID
	}
	return nil
}

func stampEmployee(payload json.RawMessage, employeeID string) ([]byte, error) {
	doc := map[string]any{}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &doc); err != nil {
			return nil, err
		}
	}
	doc["employee_id"] = employeeID
	return json.Marshal(doc)
}

func rawList(docs [][]byte) []json.RawMessage {
	out := make([]json.RawMessage, len(docs))
	for i, doc := range docs {
		out[i] = json.RawMessage(doc)
	}
	return out
}

func decodeInto[T any](docs [][]byte) ([]T, error) {
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		var rec T
		if err := json.Unmarshal(doc, &rec); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// Resume bundles the resume-family records for one employee.
type Resume struct {
	Experiences       []Experience       `json:"experiences"`
	Educations        []Education        `json:"educations"`
	ProgrammingSkills []ProgrammingSkill `json:"programming_skills"`
	LanguageSkills    []LanguageSkill    `json:"language_skills"`
	OtherSkills       []OtherSkill       `json:"other_skills"`
}

func newResume() *Resume {
	return &Resume{
		Experiences:       []Experience{},
		Educations:        []Education{},
		ProgrammingSkills: []ProgrammingSkill{},
		LanguageSkills:    []LanguageSkill{},
		OtherSkills:       []OtherSkill{},
	}
}

// EmployeeResume fetches all resume parts for one employee. The five
// reads are independent and run concurrently.
func (s *Service) EmployeeResume(ctx context.Context, employeeID string) (*Resume, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, ErrInvalidID
	}
	resume := newResume()
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.fetchFamily(ctx, docstore.Experiences, employeeID, &resume.Experiences)
	})
	g.Go(func() error {
		return s.fetchFamily(ctx, docstore.Educations, employeeID, &resume.Educations)
	})
	g.Go(func() error {
		return s.fetchFamily(ctx, docstore.ProgrammingSkills, employeeID, &resume.ProgrammingSkills)
	})
	g.Go(func() error {
		return s.fetchFamily(ctx, docstore.LanguageSkills, employeeID, &resume.LanguageSkills)
	})
	g.Go(func() error {
		return s.fetchFamily(ctx, docstore.OtherSkills, employeeID, &resume.OtherSkills)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return resume, nil
}

func (s *Service) fetchFamily(ctx context.Context, collection, employeeID string, out any) error {
	docs, err := s.docs.FindByField(ctx, collection, "employee_id", employeeID)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(rawList(docs))
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

// AllResumes groups every resume record in the store by employee id.
func (s *Service) AllResumes(ctx context.Context) (map[string]*Resume, error) {
	resumes := map[string]*Resume{}
	at := func(id string) *Resume {
		r, ok := resumes[id]
		if !ok {
			r = newResume()
			resumes[id] = r
		}
		return r
	}

	experiences, err := listAs[Experience](ctx, s.docs, docstore.Experiences)
	if err != nil {
		return nil, err
	}
	for _, rec := range experiences {
		r := at(rec.EmployeeID)
		r.Experiences = append(r.Experiences, rec)
	}

	educations, err := listAs[Education](ctx, s.docs, docstore.Educations)
	if err != nil {
		return nil, err
	}
	for _, rec := range educations {
		r := at(rec.EmployeeID)
		r.Educations = append(r.Educations, rec)
	}

	programming, err := listAs[ProgrammingSkill](ctx, s.docs, docstore.ProgrammingSkills)
	if err != nil {
		return nil, err
	}
	for _, rec := range programming {
		r := at(rec.EmployeeID)
		r.ProgrammingSkills = append(r.ProgrammingSkills, rec)
	}

	languages, err := listAs[LanguageSkill](ctx, s.docs, docstore.LanguageSkills)
	if err != nil {
		return nil, err
	}
	for _, rec := range languages {
		r := at(rec.EmployeeID)
		r.LanguageSkills = append(r.LanguageSkills, rec)
	}

	others, err := listAs[OtherSkill](ctx, s.docs, docstore.OtherSkills)
	if err != nil {
		return nil, err
	}
	for _, rec := range others {
		r := at(rec.EmployeeID)
		r.OtherSkills = append(r.OtherSkills, rec)
	}

	return resumes, nil
}

func listAs[T any](ctx context.Context, docs DocAPI, collection string) ([]T, error) {
	raw, err := docs.List(ctx, collection)
	if err != nil {
		return nil, err
	}
	return decodeInto[T](raw)
}
