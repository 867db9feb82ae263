package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicatePayment signals that a payment with the same provider
// correlation id already exists in the ledger. Not a failure: the reconciler
// treats it as "already applied".
var ErrDuplicatePayment = errors.New("duplicate payment correlation id")

// IsUniqueViolation reports whether err is a unique-constraint violation,
// optionally scoped to a named constraint. The constraint name is only
// available from Postgres; the SQLite local-dev path matches any unique
// violation.
func IsUniqueViolation(err error, constraint string) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && (constraint == "" || pgErr.ConstraintName == constraint)
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
