// Package registry provides slug.Predicate implementations backed by common
// stores. The slug package itself never looks slugs up; plug one of these in
// when generating:
//
//	claims := registry.Redis(client, "slugs")
//	s, err := slug.GenerateUnique(ctx, []string{"John Doe"}, claims.Claim)
//
// Stores: Memory, Redis (go-redis), Postgres (pgx), SQL (database/sql) and
// Mongo (mongo-driver v2).
//
// Two kinds of predicates are offered:
//
//   - Available only checks whether a candidate is free. Another writer can
//     take the slug before the caller stores it.
//   - Claim checks and reserves in one atomic step (SADD, INSERT ... ON
//     CONFLICT DO NOTHING, a duplicate _id insert, or a mutex for Memory).
//     SQL offers only Available.
//
// Store failures are returned joined with ErrLookupFailed or ErrClaimFailed
// and pass through slug.GenerateUnique unchanged.
package registry
