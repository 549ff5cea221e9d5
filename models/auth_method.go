// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Provider names a login mechanism.
type Provider string

const (
	ProviderGoogle   Provider = "google"
	ProviderKakao    Provider = "kakao"
	ProviderPassword Provider = "password"
)

// String implements fmt.Stringer.
func (p Provider) String() string {
	return string(p)
}

// AuthMethod records which login mechanisms are enabled for a user.
// Exactly one AuthMethod exists per [User]; it is created in the same
// transaction as the user and never deleted on its own.
type AuthMethod struct {
	AuthMethodID int64
	UserID       int64

	Google   bool
	Kakao    bool
	Password bool
}

// NewAuthMethod returns an AuthMethod that enables only the given provider.
func NewAuthMethod(userID int64, provider Provider) AuthMethod {
	return AuthMethod{
		UserID:   userID,
		Google:   provider == ProviderGoogle,
		Kakao:    provider == ProviderKakao,
		Password: provider == ProviderPassword,
	}
}

// TableName returns the name of the database table
// associated with the AuthMethod model.
func (a AuthMethod) TableName() string {
	return "auth_methods"
}

// ProviderLink maps an identity issued by an external provider to an
// [AuthMethod]. The pair (Provider, ExternalID) is unique.
type ProviderLink struct {
	LinkID       int64
	AuthMethodID int64

	Provider   Provider
	ExternalID string

	// UserID is filled on lookups by joining through auth_methods.
	UserID int64

	LastUsed *time.Time
}

// TableName returns the name of the database table
// associated with the ProviderLink model.
func (p ProviderLink) TableName() string {
	return "provider_links"
}

// PasswordCredential maps a local username to a bcrypt password hash.
type PasswordCredential struct {
	CredentialID int64
	AuthMethodID int64

	// Username is the user-chosen login id; it is globally unique.
	Username     string
	PasswordHash string

	// UserID is filled on lookups by joining through auth_methods.
	UserID int64

	LastChanged time.Time
	LastUsed    *time.Time
}

// TableName returns the name of the database table
// associated with the PasswordCredential model.
func (p PasswordCredential) TableName() string {
	return "password_credentials"
}

// Account is the result of account resolution: a user together with its
// enabled login methods.
type Account struct {
	User       User
	AuthMethod AuthMethod
}
