package postgres

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	responseTablePrefix = "form_responses_"

	// SQLSTATE unique_violation
	uniqueViolation = "23505"
)

// ResponseTableName returns the unquoted name of the response table owned by
// formID: the prefix followed by the id's hex digits without hyphens.
func ResponseTableName(formID uuid.UUID) string {
	return responseTablePrefix + strings.ReplaceAll(formID.String(), "-", "")
}

func quotedResponseTable(formID uuid.UUID) string {
	return pgx.Identifier{ResponseTableName(formID)}.Sanitize()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
