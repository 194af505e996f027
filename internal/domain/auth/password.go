package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// DerivePassword builds the initial password handed to a newly promoted
// manager: lower-cased first name plus a fixed numeric suffix. This is a
// deliberately weak scheme kept for compatibility with existing
// onboarding flows; the password is meant to be changed on first login.
func DerivePassword(fullName string) string {
	first := fullName
	if i := strings.IndexByte(fullName, ' '); i >= 0 {
		first = fullName[:i]
	}
	return strings.ToLower(first) + "123"
}
