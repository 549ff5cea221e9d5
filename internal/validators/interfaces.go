// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for request bodies accepted
// by the with-auth HTTP API.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - RequestValidator: go-playground/validator backed implementation that
//     reads `validate` struct tags and reports failures as readable English
//     sentences.
//
// Failures are wrapped around [ErrInvalidRequest], so callers can match them
// with errors.Is and show the message to the end user as is.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
