// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set carried by a session token:
// {sub, aud, iat, exp, iss}. No private claims are added.
type Claims struct {
	jwt.RegisteredClaims
}

// GetUserID parses the "sub" claim as a base-10 int64.
func (c *Claims) GetUserID() (int64, error) {
	userIDString, err := c.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// Token wraps a signed session token.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be handed to the frontend.
//
// UserID is the parsed "sub" claim; it is the only claim callers should use
// to identify the authenticated user.
type Token struct {
	// Claims is the decoded claim set. It is nil for tokens that were never
	// created or parsed.
	Claims *Claims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
