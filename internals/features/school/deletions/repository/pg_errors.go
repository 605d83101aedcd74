// internals/features/school/deletions/repository/pg_errors.go
package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// Reason: klasifikasi singkat error storage, aman ditampilkan ke user.
type Reason string

const (
	ReasonForeignKey    Reason = "foreign_key_violation"
	ReasonLockTimeout   Reason = "lock_timeout"
	ReasonStatement     Reason = "statement_timeout"
	ReasonSerialization Reason = "serialization_failure"
	ReasonDeadlock      Reason = "deadlock_detected"
	ReasonBudget        Reason = "execution_budget_exceeded"
	ReasonCanceled      Reason = "canceled"
	ReasonStorage       Reason = "storage_error"
)

// Classify memetakan error pgx / lib/pq / context ke Reason.
func Classify(err error) Reason {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.DeadlineExceeded):
		return ReasonBudget
	case errors.Is(err, context.Canceled):
		return ReasonCanceled
	}

	code := ""
	var pgxErr *pgconn.PgError
	var pqErr *pq.Error
	switch {
	case errors.As(err, &pgxErr):
		code = pgxErr.Code
	case errors.As(err, &pqErr):
		code = string(pqErr.Code)
	}

	switch code {
	case "23503":
		// biasanya tabel dependen yang belum terdaftar di registry
		return ReasonForeignKey
	case "55P03":
		return ReasonLockTimeout
	case "57014":
		return ReasonStatement
	case "40001":
		return ReasonSerialization
	case "40P01":
		return ReasonDeadlock
	default:
		return ReasonStorage
	}
}
