// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
)

const (
	// keySize selects AES-256.
	keySize = 32

	// partSeparator is not part of the standard base64 alphabet.
	partSeparator = "!"
)

// stateCipher is the AES-256-GCM implementation of [StateCipher].
type stateCipher struct {
	aead cipher.AEAD
}

// NewStateCipher constructs a [StateCipher] with a key read from the OS
// CSPRNG. Call it once at startup and share the result.
func NewStateCipher() (StateCipher, error) {
	key := make([]byte, keySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("error generating state cipher key: %w", err)
	}

	return NewStateCipherWithKey(key)
}

// NewStateCipherWithKey constructs a [StateCipher] for the given 32-byte key.
func NewStateCipherWithKey(key []byte) (StateCipher, error) {
	if len(key) != keySize {
		return nil, ErrInvalidKeyLength
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("error creating AES cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("error creating GCM: %w", err)
	}

	return &stateCipher{aead: aead}, nil
}

// Encrypt implements [StateCipher].
func (c *stateCipher) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("error generating nonce: %w", err)
	}

	// Seal appends the tag to the ciphertext
	sealed := c.aead.Seal(nil, nonce, []byte(plaintext), nil)
	tagStart := len(sealed) - c.aead.Overhead()

	return strings.Join([]string{
		base64.StdEncoding.EncodeToString(nonce),
		base64.StdEncoding.EncodeToString(sealed[:tagStart]),
		base64.StdEncoding.EncodeToString(sealed[tagStart:]),
	}, partSeparator), nil
}

// Decrypt implements [StateCipher].
func (c *stateCipher) Decrypt(encrypted string) (string, error) {
	parts := strings.Split(encrypted, partSeparator)
	if len(parts) != 3 {
		return "", ErrMalformedCiphertext
	}

	nonce, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil || len(nonce) != c.aead.NonceSize() {
		return "", ErrMalformedCiphertext
	}

	ciphertext, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", ErrMalformedCiphertext
	}

	tag, err := base64.StdEncoding.DecodeString(parts[2])
	if err != nil || len(tag) != c.aead.Overhead() {
		return "", ErrMalformedCiphertext
	}

	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", ErrAuthenticationFailed
	}

	return string(plaintext), nil
}
