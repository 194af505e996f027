package auth

import (
	"context"
	"encoding/json"
	"errors"

	"hrdesk/internal/docstore"
)

type Store struct {
	docs *docstore.Store
}

func NewStore(docs *docstore.Store) *Store {
	return &Store{docs: docs}
}

func (s *Store) GetByEmail(ctx context.Context, email string) (*Account, error) {
	doc, err := s.docs.FindOneByField(ctx, docstore.Accounts, "email", email)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	return decodeAccount(doc)
}

func (s *Store) FindOneByEmployee(ctx context.Context, employeeID string) (*Account, error) {
	doc, err := s.docs.FindOneByField(ctx, docstore.Accounts, "employee_id", employeeID)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	return decodeAccount(doc)
}

func (s *Store) Create(ctx context.Context, a *Account) (*Account, error) {
	doc, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	id, err := s.docs.Insert(ctx, docstore.Accounts, doc)
	if err != nil {
		return nil, err
	}
	a.ID = id
	return a, nil
}

func (s *Store) PatchAccount(ctx context.Context, id string, patch map[string]any) (*Account, error) {
	raw, err := json.Marshal(patch)
	if err != nil {
		return nil, err
	}
	doc, err := s.docs.MergePatch(ctx, docstore.Accounts, id, raw)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	return decodeAccount(doc)
}

func (s *Store) DeleteByEmployee(ctx context.Context, employeeID string) (int64, error) {
	return s.docs.DeleteByField(ctx, docstore.Accounts, "employee_id", employeeID)
}

func decodeAccount(doc []byte) (*Account, error) {
	var a Account
	if err := json.Unmarshal(doc, &a); err != nil {
		return nil, err
	}
	return &a, nil
}
