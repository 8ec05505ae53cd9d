package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to create a new user
	// fails because a user with the same email already exists in the database.
	// During admin bootstrap this is a benign outcome: it means another
	// process instance won the startup race.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrUserNotFound = errors.New("no user was found")

	// ErrProductNotFound is returned when an update or delete targets a
	// product id that does not exist in the database.
	ErrProductNotFound = errors.New("product was not found")

	// ErrCreationNotFound is returned when an update or delete targets a
	// creation id that does not exist in the database.
	ErrCreationNotFound = errors.New("creation was not found")

	// ErrTutorialNotFound is returned when an update or delete targets a
	// tutorial id that does not exist in the database.
	ErrTutorialNotFound = errors.New("tutorial was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. no columns to update).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
