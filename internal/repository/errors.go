package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrSchemaMissing signals that the entity tables do not exist yet.
// Handlers surface it as setup instructions instead of the raw driver
// message.
var ErrSchemaMissing = errors.New("database tables not found, run the seed command to set up the schema")

// pgUndefinedTable is the Postgres error code for a missing relation.
const pgUndefinedTable = "42P01"

// normalizeErr maps relation-not-found failures to ErrSchemaMissing and
// passes everything else through untouched.
func normalizeErr(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUndefinedTable {
		return ErrSchemaMissing
	}

	msg := err.Error()
	if strings.Contains(msg, "no such table") {
		return ErrSchemaMissing
	}
	if strings.Contains(msg, "relation") && strings.Contains(msg, "does not exist") {
		return ErrSchemaMissing
	}
	return err
}
