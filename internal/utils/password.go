package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the work factor used by the registration flow.
// Raising it invalidates nothing: verification reads the cost from the digest.
const bcryptCost = 10

// HashPassword derives a salted bcrypt digest from a plaintext password.
// A failure here is an internal error, never a "wrong password" signal.
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(digest), nil
}

// VerifyPassword reports whether the plaintext password matches the stored
// bcrypt digest. A mismatch is a boolean false, not an error: callers must
// not be able to distinguish "bad digest" from "wrong password" here.
func VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
