package auth

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const BcryptCost = 12

// HashPassword hashes a plaintext password with bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword verifies a password against the configured credential.
// The credential may be a bcrypt hash or a plaintext value; plaintext is
// compared in constant time.
func CheckPassword(credential, password string) bool {
	if strings.HasPrefix(credential, "$2a$") || strings.HasPrefix(credential, "$2b$") || strings.HasPrefix(credential, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(credential), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(credential), []byte(password)) == 1
}
