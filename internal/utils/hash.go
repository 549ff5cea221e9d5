package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// dummyPasswordHash is compared against when a username is unknown, so that
// the unknown-user and wrong-password paths cost the same bcrypt work.
var dummyPasswordHash = mustHash("with-auth-dummy-password", bcrypt.DefaultCost)

// HashPassword returns the bcrypt hash of the password with the given cost.
// A cost outside of [bcrypt.MinCost, bcrypt.MaxCost] falls back to
// [bcrypt.DefaultCost].
//
// Example usage:
//
//	hash, err := utils.HashPassword("s3cret!", bcrypt.DefaultCost)
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword reports whether password matches the bcrypt hash.
// A malformed hash is treated as a mismatch.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// CheckDummyPassword performs a bcrypt comparison whose result is discarded.
func CheckDummyPassword(password string) {
	_ = CheckPassword(dummyPasswordHash, password)
}

func mustHash(password string, cost int) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}
