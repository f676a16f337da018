package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// pg unique_violation
const pgUniqueViolationCode = "23505"

// isUniqueViolation reports whether err represents a uniqueness constraint
// violation on the given column. GORM's translated sentinel covers drivers
// that do not expose constraint names (the sqlite test driver among them);
// for Postgres the constraint name is checked against the column so a
// violation on an unrelated index is not misclassified.
func isUniqueViolation(err error, column string) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolationCode &&
			strings.Contains(pgErr.ConstraintName, column)
	}

	return errors.Is(err, gorm.ErrDuplicatedKey)
}
