// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/with-auth/models"
	"github.com/stretchr/testify/require"
)

func Test_buildFindUserByIDQuery(t *testing.T) {
	query, args, err := buildFindUserByIDQuery(42)
	require.NoError(t, err)

	require.Equal(t, "SELECT user_id, name, email, email_verified, role, sex, joined_at, last_login FROM users WHERE user_id = $1", query)
	require.Equal(t, []any{int64(42)}, args)
}

func Test_buildInsertUserQuery_NullEmail(t *testing.T) {
	query, args, err := buildInsertUserQuery(models.User{Name: "Kakao", Role: models.RoleUser, Sex: "N"})
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(query, "INSERT INTO users (name,email,email_verified,role,sex) VALUES ($1,$2,$3,$4,$5)"))
	require.True(t, strings.HasSuffix(query, "RETURNING user_id, joined_at"))
	require.Len(t, args, 5)
	require.Nil(t, args[1].(*string))
	require.Equal(t, "USER", args[3])
}

func Test_buildFindProviderLinkQuery(t *testing.T) {
	query, args, err := buildFindProviderLinkQuery(models.ProviderGoogle, "g-1")
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "from provider_links pl")
	require.Contains(t, q, "join auth_methods am on am.auth_method_id = pl.auth_method_id")
	require.Contains(t, query, "pl.provider = $1")
	require.Contains(t, query, "pl.external_id = $2")
	require.Equal(t, []any{"google", "g-1"}, args)
}

func Test_buildUsernameExistsQuery(t *testing.T) {
	query, args, err := buildUsernameExistsQuery("alice")
	require.NoError(t, err)

	require.Equal(t, "SELECT EXISTS ( SELECT 1 FROM password_credentials WHERE username = $1 )", query)
	require.Equal(t, []any{"alice"}, args)
}

func Test_buildTouchQueries(t *testing.T) {
	tests := []struct {
		name  string
		build func() (string, []any, error)
		table string
		col   string
		key   string
	}{
		{"user", func() (string, []any, error) { return buildTouchUserLastLoginQuery(1, testTime) }, "users", "last_login", "user_id"},
		{"link", func() (string, []any, error) { return buildTouchProviderLinkQuery(1, testTime) }, "provider_links", "last_used", "link_id"},
		{"credential", func() (string, []any, error) { return buildTouchPasswordCredentialQuery(1, testTime) }, "password_credentials", "last_used", "credential_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := tt.build()
			require.NoError(t, err)
			require.Equal(t, "UPDATE "+tt.table+" SET "+tt.col+" = $1 WHERE "+tt.key+" = $2", query)
			require.Equal(t, []any{testTime, int64(1)}, args)
		})
	}
}
