package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrConflict is returned when a write violates a unique constraint:
	// a taken username or e-mail, or an external identity that is already
	// linked. The wrapped message names the violated constraint.
	ErrConflict = errors.New("unique constraint violated")

	// ErrNotFound is returned when a lookup by key matches no row.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidRecord is returned when a stored row holds a value outside
	// of its domain, for example an unknown role code.
	ErrInvalidRecord = errors.New("invalid stored record")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrNoRowsAffected is returned when an UPDATE by primary key touched no
	// row.
	ErrNoRowsAffected = errors.New("no rows affected")
)
