// Package pg connects to PostgreSQL with pgx/v5 and prepares the schema used
// for slug claims.
//
// Config is populated from PG_* environment variables via pkg/config.
// Connect opens a *pgxpool.Pool with retries and Migrate applies the embedded
// goose migrations (a "slugs" table with a primary key on "slug"). Migrate is
// a no-op when PG_SLUG_TABLE or PG_SLUG_COLUMN points at a table managed
// elsewhere.
//
//	var cfg pg.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//	if err := pg.Migrate(ctx, pool, cfg, log); err != nil {
//		return err
//	}
//	claims := registry.Postgres(pool, cfg.SlugTable, cfg.SlugColumn)
package pg
