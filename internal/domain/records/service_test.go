package records

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"

	"hrdesk/internal/docstore"
)

// fakeDocs is an in-memory DocAPI with the same upsert semantics as the
// real store.
type fakeDocs struct {
	data map[string][]map[string]any
}

func newFakeDocs() *fakeDocs {
	return &fakeDocs{data: map[string][]map[string]any{}}
}

func (f *fakeDocs) Insert(_ context.Context, collection string, doc []byte) (string, error) {
	parsed := map[string]any{}
	if err := json.Unmarshal(doc, &parsed); err != nil {
		return "", err
	}
	parsed["id"] = uuid.NewString()
	f.data[collection] = append(f.data[collection], parsed)
	return parsed["id"].(string), nil
}

func (f *fakeDocs) Get(_ context.Context, collection, id string) ([]byte, error) {
	for _, doc := range f.data[collection] {
		if doc["id"] == id {
			return json.Marshal(doc)
		}
	}
	return nil, docstore.ErrNotFound
}

func (f *fakeDocs) List(_ context.Context, collection string) ([][]byte, error) {
	out := [][]byte{}
	for _, doc := range f.data[collection] {
		raw, err := json.Marshal(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, raw)
	}
	return out, nil
}

func (f *fakeDocs) FindByField(_ context.Context, collection, field, value string) ([][]byte, error) {
	out := [][]byte{}
	for _, doc := range f.data[collection] {
		if doc[field] == value {
			raw, err := json.Marshal(doc)
			if err != nil {
				return nil, err
			}
			out = append(out, raw)
		}
	}
	return out, nil
}

func (f *fakeDocs) FindOneByField(ctx context.Context, collection, field, value string) ([]byte, error) {
	docs, err := f.FindByField(ctx, collection, field, value)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, docstore.ErrNotFound
	}
	return docs[0], nil
}

func (f *fakeDocs) UpsertByField(_ context.Context, collection, field, value string, doc []byte) ([]byte, error) {
	parsed := map[string]any{}
	if err := json.Unmarshal(doc, &parsed); err != nil {
		return nil, err
	}
	delete(parsed, "id")
	for i, existing := range f.data[collection] {
		if existing[field] == value {
			parsed["id"] = existing["id"]
			f.data[collection][i] = parsed
			return json.Marshal(parsed)
		}
	}
	parsed["id"] = uuid.NewString()
	f.data[collection] = append(f.data[collection], parsed)
	return json.Marshal(parsed)
}

func (f *fakeDocs) Update(_ context.Context, collection, id string, doc []byte) error {
	parsed := map[string]any{}
	if err := json.Unmarshal(doc, &parsed); err != nil {
		return err
	}
	delete(parsed, "id")
	for i, existing := range f.data[collection] {
		if existing["id"] == id {
			parsed["id"] = id
			f.data[collection][i] = parsed
			return nil
		}
	}
	return docstore.ErrNotFound
}

func (f *fakeDocs) Delete(_ context.Context, collection, id string) error {
	for i, doc := range f.data[collection] {
		if doc["id"] == id {
			f.data[collection] = append(f.data[collection][:i], f.data[collection][i+1:]...)
			return nil
		}
	}
	return docstore.ErrNotFound
}

func TestUpsertIsIdempotent(t *testing.T) {
	docs := newFakeDocs()
	svc := NewService(docs)
	employeeID := uuid.NewString()
	payload := json.RawMessage(`{"street":"12 Main St","city":"Springfield"}`)

	first, err := svc.Upsert(context.Background(), docstore.PrivateContacts, employeeID, payload)
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	second, err := svc.Upsert(context.Background(), docstore.PrivateContacts, employeeID, payload)
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	if len(docs.data[docstore.PrivateContacts]) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs.data[docstore.PrivateContacts]))
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("upsert not idempotent:\nfirst:  %s\nsecond: %s", first, second)
	}
}

func TestUpsertStampsEmployeeID(t *testing.T) {
	docs := newFakeDocs()
	svc := NewService(docs)
	employeeID := uuid.NewString()

	stored, err := svc.Upsert(context.Background(), docstore.FamilyStatuses, employeeID,
		json.RawMessage(`{"marital_status":"married","employee_id":"spoofed"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(stored, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc["employee_id"] != employeeID {
		t.Fatalf("employee_id = %v, want %s", doc["employee_id"], employeeID)
	}
}

func TestCreateAppendsToMultiValuedFamily(t *testing.T) {
	docs := newFakeDocs()
	svc := NewService(docs)
	employeeID := uuid.NewString()

	for _, name := range []string{"Alice", "Bob"} {
		if _, err := svc.Create(context.Background(), docstore.EmergencyContacts, employeeID,
			json.RawMessage(`{"contact_name":"`+name+`"}`)); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	listed, err := svc.ListByEmployee(context.Background(), docstore.EmergencyContacts, employeeID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 contacts, got %d", len(listed))
	}
}

func TestFamilyValidation(t *testing.T) {
	svc := NewService(newFakeDocs())
	employeeID := uuid.NewString()

	if _, err := svc.Upsert(context.Background(), "bogus", employeeID, json.RawMessage(`{}`)); err != ErrUnknownFamily {
		t.Fatalf("expected ErrUnknownFamily, got %v", err)
	}
	if _, err := svc.Upsert(context.Background(), docstore.WorkInfos, "not-a-uuid", json.RawMessage(`{}`)); err != ErrInvalidID {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestEmployeeResumeBundlesFamilies(t *testing.T) {
	docs := newFakeDocs()
	svc := NewService(docs)
	employeeID := uuid.NewString()

	mustCreate := func(family, payload string) {
		t.Helper()
		if _, err := svc.Create(context.Background(), family, employeeID, json.RawMessage(payload)); err != nil {
			t.Fatalf("create in %s: %v", family, err)
		}
	}
	mustCreate(docstore.Experiences, `{"title":"Engineer","date_from":"2020-01-01"}`)
	mustCreate(docstore.Educations, `{"title":"BSc","school":"State"}`)
	mustCreate(docstore.ProgrammingSkills, `{"name":"Go","level":"Advanced"}`)

	resume, err := svc.EmployeeResume(context.Background(), employeeID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resume.Experiences) != 1 || resume.Experiences[0].Title != "Engineer" {
		t.Fatalf("experiences: %+v", resume.Experiences)
	}
	if len(resume.Educations) != 1 || resume.Educations[0].School != "State" {
		t.Fatalf("educations: %+v", resume.Educations)
	}
	if len(resume.ProgrammingSkills) != 1 {
		t.Fatalf("programming skills: %+v", resume.ProgrammingSkills)
	}
	if resume.LanguageSkills == nil || resume.OtherSkills == nil {
		t.Fatal("empty families should be empty lists, not nil")
	}
}

func TestAllResumesGroupsByEmployee(t *testing.T) {
	docs := newFakeDocs()
	svc := NewService(docs)
	first := uuid.NewString()
	second := uuid.NewString()

	if _, err := svc.Create(context.Background(), docstore.Experiences, first, json.RawMessage(`{"title":"A"}`)); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(context.Background(), docstore.Educations, second, json.RawMessage(`{"title":"B"}`)); err != nil {
		t.Fatalf("create: %v", err)
	}

	resumes, err := svc.AllResumes(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resumes) != 2 {
		t.Fatalf("expected 2 resumes, got %d", len(resumes))
	}
	if len(resumes[first].Experiences) != 1 || len(resumes[first].Educations) != 0 {
		t.Fatalf("first resume: %+v", resumes[first])
	}
	if len(resumes[second].Educations) != 1 {
		t.Fatalf("second resume: %+v", resumes[second])
	}
}

func TestUpdatePrivateInfoUpsertsProvidedPartsOnly(t *testing.T) {
	docs := newFakeDocs()
	svc := NewService(docs)
	employeeID := uuid.NewString()

	updated, err := svc.UpdatePrivateInfo(context.Background(), employeeID, PrivateInfoUpdate{
		PrivateContact: json.RawMessage(`{"city":"Springfield"}`),
		FamilyStatus:   json.RawMessage(`{"marital_status":"single"}`),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := updated["private_contact"]; !ok {
		t.Fatal("private_contact missing from result")
	}
	if _, ok := updated["work_permit"]; ok {
		t.Fatal("absent part should not be written")
	}
	if len(docs.data[docstore.WorkPermits]) != 0 {
		t.Fatal("work permit collection should be untouched")
	}

	view, err := svc.EmployeePrivateInfo(context.Background(), employeeID)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if view.Contact == nil || view.Contact.City != "Springfield" {
		t.Fatalf("contact: %+v", view.Contact)
	}
	if view.FamilyStatus == nil || view.FamilyStatus.MaritalStatus != "single" {
		t.Fatalf("family status: %+v", view.FamilyStatus)
	}
	if view.WorkPermit != nil {
		t.Fatalf("work permit should be null, got %+v", view.WorkPermit)
	}
	if view.EmergencyContacts == nil {
		t.Fatal("emergency contacts should be an empty list")
	}
}

func TestUpdateWorkDataNormalizesApprovers(t *testing.T) {
	docs := newFakeDocs()
	svc := NewService(docs)
	employeeID := uuid.NewString()

	blank := ""
	info, permit, err := svc.UpdateWorkData(context.Background(), employeeID,
		WorkInfo{WorkLocation: "Remote", ApproverTimeoffID: &blank},
		WorkPermit{VisaNo: "V-1"},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.ApproverTimeoffID != nil {
		t.Fatalf("blank approver should collapse to null, got %v", info.ApproverTimeoffID)
	}
	if info.EmployeeID != employeeID || permit.EmployeeID != employeeID {
		t.Fatal("employee_id not stamped on work data")
	}

	// Second write replaces, never duplicates.
	if _, _, err := svc.UpdateWorkData(context.Background(), employeeID,
		WorkInfo{WorkLocation: "Office"}, WorkPermit{VisaNo: "V-2"}); err != nil {
		t.Fatalf("second write: %v", err)
	}
	if len(docs.data[docstore.WorkInfos]) != 1 || len(docs.data[docstore.WorkPermits]) != 1 {
		t.Fatalf("expected singletons, got %d work infos and %d permits",
			len(docs.data[docstore.WorkInfos]), len(docs.data[docstore.WorkPermits]))
	}
}

func TestUpdateRecordKeepsOwner(t *testing.T) {
	docs := newFakeDocs()
	svc := NewService(docs)
	employeeID := uuid.NewString()

	created, err := svc.Create(context.Background(), docstore.Experiences, employeeID,
		json.RawMessage(`{"title":"Engineer"}`))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	var rec Experience
	if err := json.Unmarshal(created, &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	updated, err := svc.Update(context.Background(), docstore.Experiences, rec.ID,
		json.RawMessage(`{"title":"Lead Engineer","employee_id":"spoofed"}`))
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	var after Experience
	if err := json.Unmarshal(updated, &after); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if after.Title != "Lead Engineer" {
		t.Fatalf("title = %q, want Lead Engineer", after.Title)
	}
	if after.EmployeeID != employeeID {
		t.Fatalf("employee_id = %q, want %q", after.EmployeeID, employeeID)
	}

	fetched, err := svc.Get(context.Background(), docstore.Experiences, rec.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(fetched) != string(updated) {
		t.Fatalf("get mismatch:\nupdated: %s\nfetched: %s", updated, fetched)
	}

	if _, err := svc.Get(context.Background(), docstore.Experiences, uuid.NewString()); err != ErrRecordNotFound {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestDeleteRecord(t *testing.T) {
	docs := newFakeDocs()
	svc := NewService(docs)
	employeeID := uuid.NewString()

	created, err := svc.Create(context.Background(), docstore.Educations, employeeID,
		json.RawMessage(`{"title":"BSc"}`))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	var rec Education
	if err := json.Unmarshal(created, &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if err := svc.Delete(context.Background(), docstore.Educations, rec.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(context.Background(), docstore.Educations, rec.ID); err != ErrRecordNotFound {
		t.Fatalf("second delete: expected ErrRecordNotFound, got %v", err)
	}
}

func TestEmployeesWithSkill(t *testing.T) {
	docs := newFakeDocs()
	svc := NewService(docs)
	goDev := uuid.NewString()
	linguist := uuid.NewString()

	if _, err := svc.Create(context.Background(), docstore.ProgrammingSkills, goDev, json.RawMessage(`{"name":"Go"}`)); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(context.Background(), docstore.LanguageSkills, linguist, json.RawMessage(`{"language_name":"Spanish"}`)); err != nil {
		t.Fatalf("create: %v", err)
	}

	ids, err := svc.EmployeesWithSkill(context.Background(), "go")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 1 || ids[0] != goDev {
		t.Fatalf("expected [%s], got %v", goDev, ids)
	}

	ids, err = svc.EmployeesWithSkill(context.Background(), "span")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 1 || ids[0] != linguist {
		t.Fatalf("expected [%s], got %v", linguist, ids)
	}
}
