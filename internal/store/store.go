// Package store is the PostgreSQL backend for teachers, accounts and the
// appointment ledger.
package store

import (
	"embed"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed migrations/*.sql
var Migrations embed.FS

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	checkViolation      = "23514"
)

type Store struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func pgCode(err error) (code, constraint string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}
	return "", ""
}

// isUnique reports a unique violation, on a specific constraint when one is
// named.
func isUnique(err error, constraint string) bool {
	code, name := pgCode(err)
	return code == uniqueViolation && (constraint == "" || name == constraint)
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
