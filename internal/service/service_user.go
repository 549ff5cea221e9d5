package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/with-auth/internal/logger"
	"github.com/MKhiriev/with-auth/internal/store"
	"github.com/MKhiriev/with-auth/models"
)

type userService struct {
	storage store.AccountRepository
	logger  *logger.Logger
}

func NewUserService(storage store.AccountRepository, logger *logger.Logger) UserService {
	return &userService{storage: storage, logger: logger}
}

// GetUser loads the user a verified token belongs to. Token verification
// does not check the database, so a deleted user surfaces here as
// ErrUserNotFound.
func (s *userService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	user, err := s.storage.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user, nil
}
