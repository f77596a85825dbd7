package db

import (
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgconn"
	pgx "github.com/jackc/pgx/v4"

	"github.com/AlibekovAA/caption-studio/backend/internal/observability/metrics"
)

const uniqueViolationCode = "23505"

func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// HandleQueryError records the query duration and maps pgx.ErrNoRows to
// notFoundErr. Other failures are counted and wrapped with the operation.
func HandleQueryError(err error, notFoundErr error, operation string, startTime time.Time) error {
	metrics.DBQueryDurationSeconds.WithLabelValues(operation).Observe(time.Since(startTime).Seconds())

	if err == nil {
		return nil
	}
	if notFoundErr != nil && errors.Is(err, pgx.ErrNoRows) {
		return notFoundErr
	}
	metrics.DBQueryErrors.WithLabelValues(operation, errorType(err)).Inc()
	return fmt.Errorf("failed to %s: %w", operation, err)
}

func errorType(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return "pg_" + pgErr.Code
	}
	return fmt.Sprintf("%T", err)
}
