package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAlreadyExists is returned when an insert violates a unique
	// constraint, e.g. a room name that is already taken.
	ErrAlreadyExists = errors.New("record already exists")

	// ErrNotFound is returned when a lookup by id matches no record.
	ErrNotFound = errors.New("record not found")

	// ErrRoomDoesNotExist is returned when a message references a room id
	// that is not stored.
	ErrRoomDoesNotExist = errors.New("referenced room does not exist")
)

// Low-level database operation errors. These are wrapped by repository
// methods when a SQL-level operation fails before any domain logic can be
// applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when a result row cannot be scanned.
	ErrScanningRow = errors.New("error scanning sql row")

	// ErrUnsupportedDSN is returned for a DSN no driver is registered for.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)
