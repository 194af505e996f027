package auth

import (
	"context"
	"encoding/json"
)

// Provisioner replaces an employee's login account with freshly derived
// credentials. Deleting first keeps the "at most one account per
// employee" invariant from drifting when stale seed accounts exist.
type Provisioner struct {
	store StoreAPI
}

func NewProvisioner(store StoreAPI) *Provisioner {
	return &Provisioner{store: store}
}

func (p *Provisioner) ReplaceForEmployee(ctx context.Context, employeeID, email, fullName, role string) (json.RawMessage, string, error) {
	if !ValidRole(role) {
		return nil, "", ErrInvalidRole
	}
	plaintext := DerivePassword(fullName)
	hash, err := HashPassword(plaintext)
	if err != nil {
		return nil, "", err
	}

	if _, err := p.store.DeleteByEmployee(ctx, employeeID); err != nil {
		return nil, "", err
	}
	account, err := p.store.Create(ctx, &Account{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		EmployeeID:   &employeeID,
	})
	if err != nil {
		return nil, "", err
	}

	summary, err := json.Marshal(account.Summary())
	if err != nil {
		return nil, "", err
	}
	return summary, plaintext, nil
}

func (p *Provisioner) RemoveForEmployee(ctx context.Context, employeeID string) error {
	_, err := p.store.DeleteByEmployee(ctx, employeeID)
	return err
}
