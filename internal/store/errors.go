package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrShapeNotFound is returned when a query or update targets a shape
	// id that does not exist in the local database.
	ErrShapeNotFound = errors.New("shape was not found")

	// ErrShapeNotSaved is returned when an INSERT or UPDATE completes
	// without error but the number of affected rows is zero, indicating
	// that no data was actually persisted.
	ErrShapeNotSaved = errors.New("shape was not saved")

	// ErrSettingNotFound is returned when a settings key has never been
	// written. Typed getters translate it into the zero value where the
	// caller treats an absent setting as "unset".
	ErrSettingNotFound = errors.New("setting was not found")

	// ErrNoBackupFound is returned by [BackupStore.Restore] when no
	// snapshot file exists in the backup directory.
	ErrNoBackupFound = errors.New("no backup snapshot was found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised
	// SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// local database fails.
	ErrExecutingQuery = errors.New("error executing sql query")
)
