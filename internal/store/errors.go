package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoUserWasFound is returned when the requested user does not exist.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrPaymentNotFound is returned when no payment has the requested id.
	ErrPaymentNotFound = errors.New("payment was not found")

	// ErrAPIKeyNotFound is returned when no API key matches the hashed value.
	ErrAPIKeyNotFound = errors.New("api key was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDSN is returned when the DSN scheme matches no known driver.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)
