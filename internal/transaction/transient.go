package transaction

import (
	"context"
	"database/sql/driver"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes postgres reports for failures that are expected to succeed
// on retry.
var transientPgCodes = map[string]bool{
	"40001": true, // serialization_failure
	"40P01": true, // deadlock_detected
	"25P02": true, // in_failed_sql_transaction (current transaction is aborted)
	"53300": true, // too_many_connections
	"57014": true, // query_canceled (statement timeout)
	"57P01": true, // admin_shutdown
}

// Fallback for drivers and wrapped errors that expose no SQLSTATE. Matching
// lowercased message text is a known fragility; the pg code path above is
// authoritative when available.
var transientSubstrings = []string{
	"deadlock",
	"serialization",
	"current transaction is aborted",
	"too many connections",
	"timeout",
	"timed out",
	"connection refused",
	"connection reset",
	"broken pipe",
	"bad connection",
	"unexpected eof",
}

// IsTransient reports whether a store error is worth retrying: connection
// loss, deadlock, serialization conflict, statement timeout, or an aborted
// transaction. Constraint violations and application errors are not
// transient.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if transientPgCodes[pgErr.Code] {
			return true
		}
		// Class 08: connection exceptions.
		return strings.HasPrefix(pgErr.Code, "08")
	}

	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, s := range transientSubstrings {
		if strings.Contains(msg, s) {
			return true
		}
	}

	return false
}

// IsUniqueViolation reports whether an error is a unique-constraint
// violation (SQLSTATE 23505). Raced duplicate inserts surface here instead
// of in the pre-write uniqueness check.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}
