package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/with-auth/internal/logger"
	"github.com/MKhiriev/with-auth/models"
)

// accountRepository is the PostgreSQL-backed implementation of
// [AccountRepository]. The same type serves the connection pool and an open
// transaction; only the querier differs.
//
// All methods obtain a context-scoped logger via [logger.FromContext].
type accountRepository struct {
	q querier
}

// FindUserByID loads the user with the given id.
//
// Error handling:
//   - no row → [ErrNotFound].
//   - unknown role code in the row → [ErrInvalidRecord].
func (r *accountRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByIDQuery(userID)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	var role string
	err = r.q.QueryRowContext(ctx, query, args...).Scan(
		&user.UserID,
		&user.Name,
		&user.Email,
		&user.EmailVerified,
		&role,
		&user.Sex,
		&user.JoinedAt,
		&user.LastLogin,
	)
	if err != nil {
		err = mapQueryError(err)
		log.Debug().Err(err).Str("func", "*accountRepository.FindUserByID").Int64("user_id", userID).Msg("user lookup failed")
		return models.User{}, err
	}

	if user.Role, err = models.ParseRole(role); err != nil {
		log.Error().Str("func", "*accountRepository.FindUserByID").Int64("user_id", userID).Str("role", role).Msg("stored user has unknown role")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	return user, nil
}

// CreateUser inserts the user and returns it with the server-assigned
// UserID and JoinedAt.
//
// Error handling:
//   - PostgreSQL unique_violation (23505, e-mail taken) → [ErrConflict].
func (r *accountRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.q.QueryRowContext(ctx, query, args...).Scan(&user.UserID, &user.JoinedAt); err != nil {
		err = mapQueryError(err)
		log.Err(err).Str("func", "*accountRepository.CreateUser").Msg("error inserting user")
		return models.User{}, err
	}

	log.Debug().Str("func", "*accountRepository.CreateUser").Int64("user_id", user.UserID).Msg("user created")
	return user, nil
}

// TouchUserLastLogin sets last_login of the user to at.
func (r *accountRepository) TouchUserLastLogin(ctx context.Context, userID int64, at time.Time) error {
	query, args, err := buildTouchUserLastLoginQuery(userID, at)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execOne(ctx, "*accountRepository.TouchUserLastLogin", query, args)
}

// CreateAuthMethod inserts the auth method row of a user.
//
// Error handling:
//   - a second auth method for the same user (23505) → [ErrConflict].
func (r *accountRepository) CreateAuthMethod(ctx context.Context, method models.AuthMethod) (models.AuthMethod, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAuthMethodQuery(method)
	if err != nil {
		return models.AuthMethod{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.q.QueryRowContext(ctx, query, args...).Scan(&method.AuthMethodID); err != nil {
		err = mapQueryError(err)
		log.Err(err).Str("func", "*accountRepository.CreateAuthMethod").Int64("user_id", method.UserID).Msg("error inserting auth method")
		return models.AuthMethod{}, err
	}

	return method, nil
}

// execOne runs an UPDATE that must touch exactly one row.
func (r *accountRepository) execOne(ctx context.Context, funcName, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		err = mapQueryError(err)
		log.Err(err).Str("func", funcName).Msg("error executing update")
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		log.Warn().Str("func", funcName).Msg("update matched no rows")
		return ErrNoRowsAffected
	}

	return nil
}
