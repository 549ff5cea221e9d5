// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/state_cipher_mock.go -package=mock

// StateCipher protects short opaque strings (the OAuth CSRF state) that are
// round-tripped through a client-side cookie.
//
// The key lives only in process memory: values encrypted by one process
// cannot be decrypted after a restart. This is acceptable because a state
// cookie lives for a single login attempt.
type StateCipher interface {
	// Encrypt seals plaintext with a fresh random nonce and returns a
	// cookie-safe string in the form base64(nonce)!base64(ciphertext)!base64(tag).
	Encrypt(plaintext string) (string, error)

	// Decrypt verifies the authentication tag and returns the original
	// plaintext. Malformed input yields [ErrMalformedCiphertext]; a tag that
	// does not verify yields [ErrAuthenticationFailed]. It never panics.
	Decrypt(encrypted string) (string, error)
}
