// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrInvalidKeyLength is returned when a key is not 32 bytes long.
	ErrInvalidKeyLength = errors.New("state cipher key must be 32 bytes")

	// ErrMalformedCiphertext is returned when the encrypted value cannot be
	// split into nonce, ciphertext and tag, or a part is not valid base64.
	ErrMalformedCiphertext = errors.New("malformed ciphertext")

	// ErrAuthenticationFailed is returned when the GCM tag does not verify,
	// for example because the value was tampered with or sealed by a key
	// from another process.
	ErrAuthenticationFailed = errors.New("ciphertext authentication failed")
)
