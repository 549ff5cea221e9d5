// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/with-auth/internal/logger"
)

const (
	maxTxAttempts = 3
	txRetryDelay  = 20 * time.Millisecond
)

// storage is the default implementation of [Storage].
type storage struct {
	*accountRepository

	db *DB
}

// NewStorage constructs a [Storage] over the connection pool.
func NewStorage(db *DB, logger *logger.Logger) Storage {
	logger.Debug().Msg("creating account storage")

	return &storage{
		accountRepository: &accountRepository{q: db.DB},
		db:                db,
	}
}

// RunInTx implements [Storage].
//
// A unit of work failing with a retryable PostgreSQL error (serialization
// failure, deadlock) is restarted up to three times in a fresh transaction.
func (s *storage) RunInTx(ctx context.Context, fn func(repo AccountRepository) error) error {
	log := logger.FromContext(ctx)

	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = s.runOnce(ctx, fn)
		if err == nil || s.db.errorClassifier.Classify(err) != Retryable {
			return err
		}

		log.Warn().Err(err).Str("func", "*storage.RunInTx").Int("attempt", attempt).Msg("retryable transaction failure")

		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(time.Duration(attempt) * txRetryDelay):
		}
	}

	return err
}

func (s *storage) runOnce(ctx context.Context, fn func(repo AccountRepository) error) error {
	log := logger.FromContext(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*storage.RunInTx").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = fn(&accountRepository{q: tx}); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*storage.RunInTx").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
