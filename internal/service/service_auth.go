package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/with-auth/internal/config"
	"github.com/MKhiriev/with-auth/internal/logger"
	"github.com/MKhiriev/with-auth/internal/metrics"
	"github.com/MKhiriev/with-auth/internal/store"
	"github.com/MKhiriev/with-auth/internal/utils"
	"github.com/MKhiriev/with-auth/internal/validators"
	"github.com/MKhiriev/with-auth/models"
	"golang.org/x/crypto/bcrypt"
)

// authService handles local username/password accounts: credential
// verification, signup and the username availability check.
type authService struct {
	storage   store.Storage
	validator validators.Validator

	// bcryptCost is the work factor of newly created password hashes.
	bcryptCost int

	now     func() time.Time
	metrics metrics.Recorder
	logger  *logger.Logger
}

func NewAuthService(storage store.Storage, validator validators.Validator, cfg config.App, recorder metrics.Recorder, logger *logger.Logger) AuthService {
	return &authService{
		storage:    storage,
		validator:  validator,
		bcryptCost: cfg.BcryptCost,
		now:        time.Now,
		metrics:    recorder,
		logger:     logger,
	}
}

// Authenticate verifies a username/password pair.
//
// An unknown username still costs one bcrypt comparison, and both failure
// paths return the same ErrInvalidCredentials. On success the user's
// last_login and the credential's last_used are updated in one transaction
// and the current user record is returned.
func (a *authService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	credential, err := a.storage.FindPasswordCredentialByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		utils.CheckDummyPassword(password)
		log.Debug().Msg("password signin for unknown username")
		a.metrics.RecordSignin(models.ProviderPassword.String(), metrics.OutcomeFailure)
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Msg("password credential lookup failed")
		return models.User{}, fmt.Errorf("password credential lookup failed: %w", err)
	}

	if !utils.CheckPassword(credential.PasswordHash, password) {
		log.Debug().Int64("user_id", credential.UserID).Msg("password signin with wrong password")
		a.metrics.RecordSignin(models.ProviderPassword.String(), metrics.OutcomeFailure)
		return models.User{}, ErrInvalidCredentials
	}

	var user models.User
	err = a.storage.RunInTx(ctx, func(repo store.AccountRepository) error {
		now := a.now()
		if err := repo.TouchUserLastLogin(ctx, credential.UserID, now); err != nil {
			return err
		}
		if err := repo.TouchPasswordCredential(ctx, credential.CredentialID, now); err != nil {
			return err
		}

		found, err := repo.FindUserByID(ctx, credential.UserID)
		if err != nil {
			return err
		}
		user = found
		return nil
	})
	if err != nil {
		log.Err(err).Int64("user_id", credential.UserID).Msg("recording password login failed")
		return models.User{}, fmt.Errorf("recording password login failed: %w", err)
	}

	a.metrics.RecordSignin(models.ProviderPassword.String(), metrics.OutcomeSuccess)
	return user, nil
}

// SignUp creates a local account: a user with role USER, its auth method with
// only the password flag set, and the password credential.
//
// Returns:
//   - ErrValidation if the request breaks an input rule; nothing is written;
//   - ErrConflict if the username or the e-mail is already taken;
//   - the created user otherwise.
func (a *authService) SignUp(ctx context.Context, request models.SignUpRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	request = request.WithDefaults()
	if err := a.validator.Validate(ctx, request); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	taken, err := a.storage.UsernameExists(ctx, request.ID)
	if err != nil {
		log.Err(err).Msg("username lookup failed")
		return models.User{}, fmt.Errorf("username lookup failed: %w", err)
	}
	if taken {
		return models.User{}, fmt.Errorf("%w: username is taken", ErrConflict)
	}

	hash, err := utils.HashPassword(request.Password, a.bcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, &validators.ValidationError{
			Messages: []string{"Password must be at most 72 bytes long"},
		})
	}
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, err
	}

	email := request.Email
	var created models.User
	err = a.storage.RunInTx(ctx, func(repo store.AccountRepository) error {
		user, err := repo.CreateUser(ctx, models.User{
			Name:  request.Name,
			Email: &email,
			Role:  models.RoleUser,
			Sex:   request.Sex,
		})
		if err != nil {
			return err
		}

		method, err := repo.CreateAuthMethod(ctx, models.NewAuthMethod(user.UserID, models.ProviderPassword))
		if err != nil {
			return err
		}

		_, err = repo.CreatePasswordCredential(ctx, models.PasswordCredential{
			AuthMethodID: method.AuthMethodID,
			Username:     request.ID,
			PasswordHash: hash,
			LastChanged:  a.now(),
		})
		if err != nil {
			return err
		}

		created = user
		return nil
	})
	if errors.Is(err, store.ErrConflict) {
		log.Debug().Err(err).Msg("signup violates a unique constraint")
		return models.User{}, fmt.Errorf("%w: %w", ErrConflict, err)
	}
	if err != nil {
		log.Err(err).Msg("signup failed")
		return models.User{}, fmt.Errorf("signup failed: %w", err)
	}

	a.metrics.RecordAccountCreated(models.ProviderPassword.String())
	log.Info().Int64("user_id", created.UserID).Msg("password account created")
	return created, nil
}

// UsernameAvailable reports whether no local account uses the username yet.
func (a *authService) UsernameAvailable(ctx context.Context, username string) (bool, error) {
	if err := a.validator.Validate(ctx, models.UsernameAvailabilityRequest{ID: username}); err != nil {
		return false, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	taken, err := a.storage.UsernameExists(ctx, username)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("username lookup failed")
		return false, fmt.Errorf("username lookup failed: %w", err)
	}

	return !taken, nil
}
