package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/with-auth/internal/logger"
	"github.com/MKhiriev/with-auth/models"
)

// UsernameExists reports whether a password credential with the username
// exists.
func (r *accountRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	query, args, err := buildUsernameExistsQuery(username)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var exists bool
	if err = r.q.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		err = mapQueryError(err)
		logger.FromContext(ctx).Err(err).Str("func", "*accountRepository.UsernameExists").Msg("error checking username")
		return false, err
	}

	return exists, nil
}

// FindPasswordCredentialByUsername loads the credential of a local username
// together with the owning user id.
//
// Error handling:
//   - unknown username → [ErrNotFound].
func (r *accountRepository) FindPasswordCredentialByUsername(ctx context.Context, username string) (models.PasswordCredential, error) {
	query, args, err := buildFindPasswordCredentialQuery(username)
	if err != nil {
		return models.PasswordCredential{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var credential models.PasswordCredential
	err = r.q.QueryRowContext(ctx, query, args...).Scan(
		&credential.CredentialID,
		&credential.AuthMethodID,
		&credential.Username,
		&credential.PasswordHash,
		&credential.LastChanged,
		&credential.LastUsed,
		&credential.UserID,
	)
	if err != nil {
		return models.PasswordCredential{}, mapQueryError(err)
	}

	return credential, nil
}

// CreatePasswordCredential inserts the credential of a local account.
//
// Error handling:
//   - username taken (23505) → [ErrConflict].
func (r *accountRepository) CreatePasswordCredential(ctx context.Context, credential models.PasswordCredential) (models.PasswordCredential, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertPasswordCredentialQuery(credential)
	if err != nil {
		return models.PasswordCredential{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.q.QueryRowContext(ctx, query, args...).Scan(&credential.CredentialID); err != nil {
		err = mapQueryError(err)
		log.Err(err).Str("func", "*accountRepository.CreatePasswordCredential").Msg("error inserting password credential")
		return models.PasswordCredential{}, err
	}

	return credential, nil
}

// TouchPasswordCredential sets last_used of the credential to at.
func (r *accountRepository) TouchPasswordCredential(ctx context.Context, credentialID int64, at time.Time) error {
	query, args, err := buildTouchPasswordCredentialQuery(credentialID, at)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execOne(ctx, "*accountRepository.TouchPasswordCredential", query, args)
}
