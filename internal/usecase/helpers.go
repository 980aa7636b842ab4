package usecase

import (
	"context"
	"errors"
	"strings"

	"visus-api/internal/delivery/http/middleware"

	"github.com/jackc/pgx/v5/pgconn"
)

// actorFromContext names the admin behind a write for the audit trail.
func actorFromContext(ctx context.Context) string {
	if identity, ok := middleware.GetAdminIdentityFromContext(ctx); ok {
		return identity
	}
	return "system"
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
