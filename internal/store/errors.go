package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an attempt to create a user
	// fails because a user with the same id already exists in the database.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUserNotFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrUserNotFound = errors.New("user was not found")

	// ErrSettingsNotFound is returned when a user has no settings row yet.
	ErrSettingsNotFound = errors.New("user settings were not found")

	// ErrPhraseNotFound is returned when an operation targets a phrase that
	// does not exist, e.g. attaching a translation for a user who has no
	// phrases.
	ErrPhraseNotFound = errors.New("phrase was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied. The dispatcher treats all of them as transient
// infrastructure faults.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommittingTransaction is returned when committing an open
	// transaction fails. The transaction is considered rolled back at this
	// point.
	ErrCommittingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")
)
