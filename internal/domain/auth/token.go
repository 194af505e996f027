package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the full authorization context carried inside the bearer
// token. Protected routes read role and ownership straight from here;
// no server-side session state exists.
type Claims struct {
	AccountID    string `json:"uid"`
	Role         string `json:"role"`
	EmployeeID   string `json:"eid,omitempty"`
	DepartmentID string `json:"did,omitempty"`
	jwt.RegisteredClaims
}

type Tokens struct {
	secret []byte
	ttl    time.Duration
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl}
}

func (t *Tokens) Issue(accountID, role, employeeID, departmentID string) (string, error) {
	now := time.Now()
	claims := Claims{
		AccountID:    accountID,
		Role:         role,
		EmployeeID:   employeeID,
		DepartmentID: departmentID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

func (t *Tokens) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
