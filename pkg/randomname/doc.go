// Package randomname generates names for resources that were created without
// one, so they can still be turned into slugs.
//
// Token returns an opaque 22-character [A-Za-z0-9] identifier derived from an
// MD5 digest of the current time and random letters. It is the default
// fallback of pkg/slug:
//
//	randomname.Token() // "hMAkUyhyqdPkSDWHaUtptQ"
//
// Words and Simple produce readable names from built-in dictionaries:
//
//	randomname.Simple() // "brave otter"
//	randomname.Words(&randomname.Options{
//		Pattern: []randomname.WordType{randomname.Adjective, randomname.Color, randomname.Noun},
//		Suffix:  randomname.Numeric4,
//	}) // "calm teal heron 4829"
//
// Neither generator guarantees uniqueness; pass the result through
// slug.GenerateUnique when collisions matter. All functions are safe for
// concurrent use.
package randomname
