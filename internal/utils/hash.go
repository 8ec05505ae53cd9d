package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the work factor used when hashing new passwords.
// Matches the cost the original admin accounts were created with, so
// existing hashes keep verifying after redeploys.
const bcryptCost = 10

// HashPassword derives a salted bcrypt hash from the given plaintext
// password. The salt is generated by bcrypt and embedded in the result,
// so no separate salt storage is needed.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword reports whether password matches the stored bcrypt hash.
// bcrypt performs a constant-structure comparison internally; callers only
// see a match / no-match outcome.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
