package repositories

import (
	"errors"

	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

var (
	ErrNotFound       = errors.New("repository: record not found")
	ErrDuplicateEntry = errors.New("repository: duplicate entry")
)

// isDuplicateEntry reports whether err is a unique constraint violation.
// gorm translates most drivers' errors; lib/pq's are checked directly since
// the postgres dialector only knows pgx error types.
func isDuplicateEntry(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505" // unique_violation
	}

	return false
}
