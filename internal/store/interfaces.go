package store

import (
	"context"
	"time"

	"github.com/MKhiriev/with-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/storage_mock.go -package=mock

// AccountRepository holds the keyed operations over users, auth methods,
// provider links and password credentials.
//
// Unique violations are reported as [ErrConflict] and missing rows as
// [ErrNotFound].
type AccountRepository interface {
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	TouchUserLastLogin(ctx context.Context, userID int64, at time.Time) error

	CreateAuthMethod(ctx context.Context, method models.AuthMethod) (models.AuthMethod, error)

	FindProviderLinkByExternalID(ctx context.Context, provider models.Provider, externalID string) (models.ProviderLink, error)
	CreateProviderLink(ctx context.Context, link models.ProviderLink) (models.ProviderLink, error)
	TouchProviderLink(ctx context.Context, linkID int64, at time.Time) error

	UsernameExists(ctx context.Context, username string) (bool, error)
	FindPasswordCredentialByUsername(ctx context.Context, username string) (models.PasswordCredential, error)
	CreatePasswordCredential(ctx context.Context, credential models.PasswordCredential) (models.PasswordCredential, error)
	TouchPasswordCredential(ctx context.Context, credentialID int64, at time.Time) error
}

// Storage is an [AccountRepository] over the connection pool that can also
// run a unit of work in one transaction.
type Storage interface {
	AccountRepository

	// RunInTx calls fn with a repository bound to a new transaction. The
	// transaction is committed when fn returns nil and rolled back
	// otherwise. Serialization failures and deadlocks restart the unit of
	// work, so fn must not have side effects outside of the repository.
	RunInTx(ctx context.Context, fn func(repo AccountRepository) error) error
}
