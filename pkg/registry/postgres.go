package registry

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/urislug/pkg/pg"
)

// PgxQuerier is the subset of pgx used for slug lookups.
// *pgxpool.Pool, *pgx.Conn and pgx.Tx satisfy it.
type PgxQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PgTable checks and claims slugs stored in a PostgreSQL column.
type PgTable struct {
	db          PgxQuerier
	existsQuery string
	claimQuery  string
}

// Postgres returns a registry over table.column. The table may be schema
// qualified ("public.articles"); identifiers are quoted.
func Postgres(db PgxQuerier, table, column string) *PgTable {
	t := pgx.Identifier(strings.Split(table, ".")).Sanitize()
	c := pgx.Identifier{column}.Sanitize()
	return &PgTable{
		db:          db,
		existsQuery: fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)", t, c),
		claimQuery:  fmt.Sprintf("INSERT INTO %s (%s) VALUES ($1)", t, c),
	}
}

// Available is a slug.Predicate accepting candidates absent from the column.
func (p *PgTable) Available(ctx context.Context, candidate string) (bool, error) {
	var exists bool
	if err := p.db.QueryRow(ctx, p.existsQuery, candidate).Scan(&exists); err != nil {
		return false, errors.Join(ErrLookupFailed, err)
	}
	return !exists, nil
}

// Claim is a slug.Predicate that inserts the candidate; a unique violation
// means the slug is taken. The column needs a unique constraint.
func (p *PgTable) Claim(ctx context.Context, candidate string) (bool, error) {
	_, err := p.db.Exec(ctx, p.claimQuery, candidate)
	switch {
	case err == nil:
		return true, nil
	case pg.IsDuplicateKeyError(err):
		return false, nil
	default:
		return false, errors.Join(ErrClaimFailed, err)
	}
}
