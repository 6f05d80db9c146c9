package repositories

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

var (
	// ErrNotFound is returned when no row matches the requested key
	ErrNotFound = errors.New("not found")

	// ErrDuplicateKey is returned when a unique column already holds the value
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrStoreUnavailable wraps every I/O failure of the backing store
	ErrStoreUnavailable = errors.New("store unavailable")
)

// storeError wraps a driver error so callers can tell it apart from
// NotFound and DuplicateKey
func storeError(action string, err error) error {
	return fmt.Errorf("failed to %s: %w: %w", action, ErrStoreUnavailable, err)
}

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint failure
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint &&
			(sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique || sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey)
	}
	return false
}

// isForeignKeyViolation reports whether err is a SQLite FOREIGN KEY failure,
// i.e. the referenced row does not exist
func isForeignKeyViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint && sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}
	return false
}
