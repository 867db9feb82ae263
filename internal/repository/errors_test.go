package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	slotIndex := &pgconn.PgError{Code: "23505", ConstraintName: "idx_no_double_booking"}
	tokenIndex := &pgconn.PgError{Code: "23505", ConstraintName: "idx_bookings_manage_token"}

	assert.True(t, IsUniqueViolation(slotIndex, "idx_no_double_booking"))
	assert.True(t, IsUniqueViolation(slotIndex, ""), "empty constraint matches any unique violation")

	// A collision on a different index must not be mistaken for a slot clash.
	assert.False(t, IsUniqueViolation(tokenIndex, "idx_no_double_booking"))

	// gorm wraps driver errors; detection has to see through the chain.
	wrapped := fmt.Errorf("create booking: %w", slotIndex)
	assert.True(t, IsUniqueViolation(wrapped, "idx_no_double_booking"))

	// SQLite local-dev path: no constraint name available, any unique
	// violation matches.
	sqliteErr := errors.New("constraint failed: UNIQUE constraint failed: bookings.date, bookings.slot_time (2067)")
	assert.True(t, IsUniqueViolation(sqliteErr, "idx_no_double_booking"))

	assert.False(t, IsUniqueViolation(errors.New("connection refused"), "idx_no_double_booking"))
	assert.False(t, IsUniqueViolation(nil, "idx_no_double_booking"))
}
