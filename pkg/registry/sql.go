package registry

import (
	"context"
	"database/sql"
	"errors"
)

// SQLQuery checks slugs with an arbitrary database/sql query.
type SQLQuery struct {
	db    *sql.DB
	query string
}

// SQL returns a registry running query with the candidate as its only
// argument. The query must return a single boolean column that is true when
// the slug is taken, for example:
//
//	SELECT EXISTS (SELECT 1 FROM articles WHERE slug = ?)
func SQL(db *sql.DB, query string) *SQLQuery {
	return &SQLQuery{db: db, query: query}
}

// Available is a slug.Predicate accepting candidates the query reports as free.
func (q *SQLQuery) Available(ctx context.Context, candidate string) (bool, error) {
	var taken bool
	if err := q.db.QueryRowContext(ctx, q.query, candidate).Scan(&taken); err != nil {
		return false, errors.Join(ErrLookupFailed, err)
	}
	return !taken, nil
}
