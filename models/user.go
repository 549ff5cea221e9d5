// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"time"
)

// ErrUnknownRole is returned when a role value is outside of the closed
// [Role] enumeration.
var ErrUnknownRole = errors.New("unknown role")

// Role is the coarse permission level of a user. It is a closed enumeration:
// only [RoleUser] and [RoleAdmin] exist.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Audience values embedded into the "aud" claim of session tokens.
const (
	AudienceUser  = "with:user"
	AudienceAdmin = "with:admin"
)

// Audience returns the fixed list of scopes granted to the role.
//
// Unknown roles are rejected with [ErrUnknownRole] instead of being mapped
// to a default.
func (r Role) Audience() ([]string, error) {
	switch r {
	case RoleUser:
		return []string{AudienceUser}, nil
	case RoleAdmin:
		return []string{AudienceUser, AudienceAdmin}, nil
	default:
		return nil, ErrUnknownRole
	}
}

// ParseRole converts a stored role code into a [Role].
func ParseRole(value string) (Role, error) {
	role := Role(value)
	if _, err := role.Audience(); err != nil {
		return "", err
	}
	return role, nil
}

// Sex markers accepted on signup.
const (
	SexMale    = "M"
	SexFemale  = "F"
	SexNeutral = "N"
)

// User represents the internal identity of an account.
// It is owned by the storage layer; the auth core only reads and creates it.
type User struct {
	// UserID is assigned by the database on creation and never changes.
	UserID int64 `json:"uid"`

	// Name is the display name shown by the frontend.
	Name string `json:"uname"`

	// Email is unique across users. It is nil for accounts created through a
	// provider that did not disclose an address (Kakao by default).
	Email *string `json:"email"`

	// EmailVerified is copied from the identity provider on creation.
	EmailVerified bool `json:"email_verified"`

	// Role drives the audience of issued session tokens.
	Role Role `json:"role"`

	// Sex is one of SexMale, SexFemale or SexNeutral.
	Sex string `json:"-"`

	// JoinedAt is the account creation timestamp.
	JoinedAt time.Time `json:"-"`

	// LastLogin is updated on every successful login.
	LastLogin *time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
