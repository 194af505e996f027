// Package auth issues and verifies bearer tokens, manages login
// accounts, and provisions derived credentials for promoted employees.
package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

type Service struct {
	store     StoreAPI
	tokens    *Tokens
	directory EmployeeDirectory
}

func NewService(store StoreAPI, tokens *Tokens, directory EmployeeDirectory) *Service {
	return &Service{store: store, tokens: tokens, directory: directory}
}

type LoginResult struct {
	Token   string  `json:"token"`
	Account Summary `json:"account"`
}

// Login verifies the credentials and issues a time-boxed token. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	account, err := s.store.GetByEmail(ctx, email)
	if errors.Is(err, ErrAccountNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !CheckPassword(account.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	var employeeID, departmentID string
	if account.EmployeeID != nil {
		employeeID = *account.EmployeeID
		departmentID, err = s.directory.EmployeeDepartment(ctx, employeeID)
		if err != nil {
			return nil, err
		}
	}

	token, err := s.tokens.Issue(account.ID, account.Role, employeeID, departmentID)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, Account: account.Summary()}, nil
}

// ChangeRole overwrites the role on the account linked to the employee.
// The role is checked against the enum before any store access.
func (s *Service) ChangeRole(ctx context.Context, employeeID, role string) (*Account, error) {
	if !ValidRole(role) {
		return nil, ErrInvalidRole
	}
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, ErrInvalidID
	}
	account, err := s.store.FindOneByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return s.store.PatchAccount(ctx, account.ID, map[string]any{"role": role})
}
