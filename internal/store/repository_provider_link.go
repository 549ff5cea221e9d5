package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/with-auth/internal/logger"
	"github.com/MKhiriev/with-auth/models"
)

// FindProviderLinkByExternalID looks up the link of an external identity and
// resolves the owning user id through auth_methods.
//
// Error handling:
//   - no link → [ErrNotFound].
func (r *accountRepository) FindProviderLinkByExternalID(ctx context.Context, provider models.Provider, externalID string) (models.ProviderLink, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindProviderLinkQuery(provider, externalID)
	if err != nil {
		return models.ProviderLink{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var link models.ProviderLink
	var providerName string
	err = r.q.QueryRowContext(ctx, query, args...).Scan(
		&link.LinkID,
		&link.AuthMethodID,
		&providerName,
		&link.ExternalID,
		&link.LastUsed,
		&link.UserID,
	)
	if err != nil {
		err = mapQueryError(err)
		log.Debug().Err(err).Str("func", "*accountRepository.FindProviderLinkByExternalID").Str("provider", provider.String()).Msg("provider link lookup failed")
		return models.ProviderLink{}, err
	}
	link.Provider = models.Provider(providerName)

	return link, nil
}

// CreateProviderLink inserts the link of an external identity.
//
// Error handling:
//   - the (provider, external_id) pair is already linked (23505) → [ErrConflict].
func (r *accountRepository) CreateProviderLink(ctx context.Context, link models.ProviderLink) (models.ProviderLink, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertProviderLinkQuery(link)
	if err != nil {
		return models.ProviderLink{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.q.QueryRowContext(ctx, query, args...).Scan(&link.LinkID); err != nil {
		err = mapQueryError(err)
		log.Err(err).Str("func", "*accountRepository.CreateProviderLink").Str("provider", link.Provider.String()).Msg("error inserting provider link")
		return models.ProviderLink{}, err
	}

	return link, nil
}

// TouchProviderLink sets last_used of the link to at.
func (r *accountRepository) TouchProviderLink(ctx context.Context, linkID int64, at time.Time) error {
	query, args, err := buildTouchProviderLinkQuery(linkID, at)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execOne(ctx, "*accountRepository.TouchProviderLink", query, args)
}
