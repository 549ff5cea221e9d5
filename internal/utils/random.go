package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"
)

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// RandomAlphanumeric returns n characters drawn uniformly from [A-Za-z0-9]
// using the OS CSPRNG.
func RandomAlphanumeric(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("invalid random string length %d", n)
	}

	limit := big.NewInt(int64(len(alphanumeric)))
	buf := make([]byte, n)
	for i := range buf {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("error reading random bytes: %w", err)
		}
		buf[i] = alphanumeric[idx.Int64()]
	}

	return string(buf), nil
}

// NewTraceID returns a time-ordered UUIDv7, or a random UUIDv4 if the
// clock-based generator fails.
func NewTraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
