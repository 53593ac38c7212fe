package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when a user with the same user name or
	// e-mail is already stored. Both the pre-insert lookup and a unique
	// constraint violation at insert time map to this error.
	ErrUserAlreadyExists = errors.New("user name or email already exists")

	// ErrNoUserWasFound is returned when a lookup by user name matches no
	// record.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrUnknownDriver is returned by [NewStorages] for an unsupported
	// STORAGE_DB_DRIVER value.
	ErrUnknownDriver = errors.New("unknown storage driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrAcquiringConnection is returned when no dedicated connection can be
	// taken from the pool.
	ErrAcquiringConnection = errors.New("failed to acquire connection")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
