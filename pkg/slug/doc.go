// Package slug turns human-readable names into well-formed URI path segments
// and optionally makes them unique with a caller-supplied predicate.
//
// Characters outside the unreserved set (letters, digits and _ . - ! ~ * ' ( ) /
// plus space) are percent-encoded byte by byte in the target encoding. Spaces
// and slashes inside a name are then replaced with the space string so that
// only the separator delimits names.
//
// # Usage
//
//	import "github.com/dmitrymomot/urislug/pkg/slug"
//
//	s, err := slug.Generate([]string{"Arthur Russell", "Calling Out of Context"})
//	// s == "Arthur-Russell/Calling-Out-of-Context"
//
//	s, err = slug.Generate([]string{"Träd, Gräs och Stenar"})
//	// s == "Tr%C3%A4d%2C-Gr%C3%A4s-och-Stenar"
//
// # Uniqueness
//
// GenerateUnique calls the predicate with the base slug first and then with up
// to MaxAttempts disambiguated candidates:
//
//	s, err := slug.GenerateUnique(ctx, []string{"John Doe"}, isFree,
//		slug.WithMultiplier(slug.Repeater("*")),
//	)
//	// "John-Doe", "John-Doe-*", "John-Doe-**", ...
//
// If every candidate is rejected the base slug is returned without error.
// Enable StrictExhaustion to receive ErrExhausted instead.
//
// The package never stores slugs; see pkg/registry for predicates backed by
// Redis, PostgreSQL, database/sql and memory.
//
// # Options
//
//   - Space: replacement for whitespace and '/' inside names (default "-")
//   - Separator: string between names (default "/")
//   - Modifier: appended as "{space}({modifier})"
//   - WithMultiplier: Numeric(n) or Repeater(unit) (default Numeric(1))
//   - Encoding: IANA charset used for percent-encoding (default "UTF-8")
//   - Fallback: name source for empty input (default randomname.Token)
//
// All functions are safe for concurrent use; concurrency of the predicate is
// the caller's responsibility.
package slug
