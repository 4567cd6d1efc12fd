package slug

import (
	"context"
	"strings"
)

// Assemble escapes each name, joins them with the separator and appends the
// modifier, if any. Empty names are dropped; when nothing is left the
// fallback generator supplies the only name.
func Assemble(names []string, opts ...Option) (string, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return "", err
	}
	return assemble(names, cfg)
}

func assemble(names []string, cfg *config) (string, error) {
	enc, err := lookupEncoding(cfg.encoding)
	if err != nil {
		return "", err
	}

	segments := make([]string, 0, len(names))
	for _, name := range names {
		if name != "" {
			segments = append(segments, name)
		}
	}
	if len(segments) == 0 {
		segments = append(segments, cfg.fallback())
	}

	for i, name := range segments {
		if segments[i], err = escape(name, cfg.space, enc); err != nil {
			return "", err
		}
	}

	result := strings.Join(segments, cfg.separator)
	if cfg.modifier != "" {
		modifier, err := escape(cfg.modifier, cfg.space, enc)
		if err != nil {
			return "", err
		}
		result += cfg.space + "(" + modifier + ")"
	}

	return result, nil
}

// Generate builds a slug from names without any uniqueness check.
//
//	slug.Generate([]string{"Arthur Russell"})                           // "Arthur-Russell"
//	slug.Generate([]string{"Arthur Russell"}, slug.Space("_"))          // "Arthur_Russell"
//	slug.Generate([]string{"Rihanna", "Loud"}, slug.Modifier("Explicit")) // "Rihanna/Loud-(Explicit)"
func Generate(names []string, opts ...Option) (string, error) {
	return Assemble(names, opts...)
}

// GenerateUnique builds a slug and resolves collisions with check.
// A nil check behaves like Generate.
//
//	taken := map[string]bool{"John-Doe": true}
//	slug.GenerateUnique(ctx, []string{"John Doe"}, slug.Check(func(s string) bool {
//		return !taken[s]
//	})) // "John-Doe-1"
func GenerateUnique(ctx context.Context, names []string, check Predicate, opts ...Option) (string, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return "", err
	}

	base, err := assemble(names, cfg)
	if err != nil {
		return "", err
	}
	if check == nil {
		return base, nil
	}
	return resolve(ctx, base, check, cfg)
}

// MustGenerate is like Generate with default options but panics on error.
// It is meant for constant input known to be valid.
func MustGenerate(names ...string) string {
	s, err := Generate(names)
	if err != nil {
		panic(err)
	}
	return s
}
