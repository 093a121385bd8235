package usecase

import (
	"errors"

	"github.com/felixcirebea/medicalsys-sub000/pkg/apperror"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrPastDate          = apperror.Concurrency("date is in the past")
	ErrInvalidDate       = apperror.Mismatch("invalid date format, use YYYY-MM-DD")
	ErrInvalidTimeFormat = apperror.Mismatch("invalid time format, use HH:MM")
	ErrInvalidDateRange  = apperror.Mismatch("start date must not be after end date")
	ErrInvalidTimeRange  = apperror.Mismatch("start time must be before end time")
	ErrNegativeAmount    = apperror.Mismatch("amount must not be negative")
	ErrDuplicateName     = apperror.Concurrency("a record with this name already exists")
)

// Postgres SQLSTATE codes the use cases translate into business errors.
const (
	pgUniqueViolation      = "23505"
	pgForeignKeyViolation  = "23503"
	pgExclusionViolation   = "23P01"
	pgSerializationFailure = "40001"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isDuplicateKeyError checks if error is a unique constraint violation
func isDuplicateKeyError(err error) bool {
	return pgErrorCode(err) == pgUniqueViolation
}

// isForeignKeyError checks if error is a foreign key violation
func isForeignKeyError(err error) bool {
	return pgErrorCode(err) == pgForeignKeyViolation
}

// isContentionError reports errors raised when a concurrent writer won the race:
// the appointment exclusion constraint, a serialization failure or a duplicate key.
func isContentionError(err error) bool {
	switch pgErrorCode(err) {
	case pgExclusionViolation, pgSerializationFailure, pgUniqueViolation:
		return true
	}
	return false
}
