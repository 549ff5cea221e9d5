package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/with-auth/internal/logger"
	"github.com/MKhiriev/with-auth/internal/metrics"
	"github.com/MKhiriev/with-auth/internal/store"
	"github.com/MKhiriev/with-auth/models"
)

// accountService maps external identities to internal users, creating the
// account on first login.
type accountService struct {
	storage store.Storage

	now     func() time.Time
	metrics metrics.Recorder
	logger  *logger.Logger
}

func NewAccountService(storage store.Storage, recorder metrics.Recorder, logger *logger.Logger) AccountService {
	return &accountService{
		storage: storage,
		now:     time.Now,
		metrics: recorder,
		logger:  logger,
	}
}

// ResolveExternal returns the user linked to the external identity.
//
// A known identity has its user's last_login and the link's last_used
// updated in one transaction. An unknown identity gets a new user (role USER,
// name, e-mail and verification flag from the provider), an auth method with
// only the provider flag set and the link, all in one transaction.
//
// When two first logins of the same identity race, the loser observes a
// conflict on the link, re-reads it and returns the winner's user. Any other
// conflict, such as an e-mail already owned by another account, is
// ErrConflict.
func (s *accountService) ResolveExternal(ctx context.Context, profile models.ExternalProfile) (models.User, error) {
	log := logger.FromContext(ctx).With().
		Str("provider", profile.Provider.String()).
		Logger()

	if profile.ExternalID == "" || (profile.Provider != models.ProviderGoogle && profile.Provider != models.ProviderKakao) {
		return models.User{}, ErrInvalidProfile
	}

	link, err := s.storage.FindProviderLinkByExternalID(ctx, profile.Provider, profile.ExternalID)
	switch {
	case err == nil:
		return s.signIn(ctx, link)
	case !errors.Is(err, store.ErrNotFound):
		log.Err(err).Msg("provider link lookup failed")
		return models.User{}, fmt.Errorf("provider link lookup failed: %w", err)
	}

	user, err := s.register(ctx, profile)
	if err == nil {
		s.metrics.RecordAccountCreated(profile.Provider.String())
		log.Info().Int64("user_id", user.UserID).Msg("account created on first login")
		return user, nil
	}
	if !errors.Is(err, store.ErrConflict) {
		log.Err(err).Msg("account creation failed")
		return models.User{}, fmt.Errorf("account creation failed: %w", err)
	}

	link, lookupErr := s.storage.FindProviderLinkByExternalID(ctx, profile.Provider, profile.ExternalID)
	if lookupErr != nil {
		log.Debug().Err(err).Msg("account creation conflicts with another account")
		return models.User{}, fmt.Errorf("%w: %w", ErrConflict, err)
	}

	log.Debug().Int64("user_id", link.UserID).Msg("concurrent first login resolved to existing account")
	return s.signIn(ctx, link)
}

func (s *accountService) signIn(ctx context.Context, link models.ProviderLink) (models.User, error) {
	var user models.User
	err := s.storage.RunInTx(ctx, func(repo store.AccountRepository) error {
		now := s.now()
		if err := repo.TouchUserLastLogin(ctx, link.UserID, now); err != nil {
			return err
		}
		if err := repo.TouchProviderLink(ctx, link.LinkID, now); err != nil {
			return err
		}

		found, err := repo.FindUserByID(ctx, link.UserID)
		if err != nil {
			return err
		}
		user = found
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", link.UserID).Msg("recording provider login failed")
		return models.User{}, fmt.Errorf("recording provider login failed: %w", err)
	}

	return user, nil
}

func (s *accountService) register(ctx context.Context, profile models.ExternalProfile) (models.User, error) {
	var created models.User
	err := s.storage.RunInTx(ctx, func(repo store.AccountRepository) error {
		now := s.now()

		user, err := repo.CreateUser(ctx, models.User{
			Name:          profile.Name,
			Email:         profile.Email,
			EmailVerified: profile.EmailVerified,
			Role:          models.RoleUser,
			Sex:           models.SexNeutral,
		})
		if err != nil {
			return err
		}

		method, err := repo.CreateAuthMethod(ctx, models.NewAuthMethod(user.UserID, profile.Provider))
		if err != nil {
			return err
		}

		_, err = repo.CreateProviderLink(ctx, models.ProviderLink{
			AuthMethodID: method.AuthMethodID,
			Provider:     profile.Provider,
			ExternalID:   profile.ExternalID,
			UserID:       user.UserID,
			LastUsed:     &now,
		})
		if err != nil {
			return err
		}

		if err = repo.TouchUserLastLogin(ctx, user.UserID, now); err != nil {
			return err
		}
		user.LastLogin = &now

		created = user
		return nil
	})

	return created, err
}
