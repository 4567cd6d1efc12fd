package slug

import (
	"context"

	"github.com/dmitrymomot/urislug/pkg/logger"
)

// Predicate reports whether a candidate slug is acceptable, typically
// "not already in use". Errors are returned to the caller unchanged.
type Predicate func(ctx context.Context, candidate string) (bool, error)

// Check adapts a plain boolean function into a Predicate.
func Check(fn func(candidate string) bool) Predicate {
	return func(_ context.Context, candidate string) (bool, error) {
		return fn(candidate), nil
	}
}

// Resolve probes base and then base+space+disambiguator for attempts
// 1..MaxAttempts, returning the first candidate the predicate accepts.
//
// When every probe is rejected the unmodified base is returned with a nil
// error, unless StrictExhaustion is enabled, in which case ErrExhausted is
// returned alongside the base. A nil check accepts base as is.
func Resolve(ctx context.Context, base string, check Predicate, opts ...Option) (string, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return "", err
	}
	if check == nil {
		return base, nil
	}
	return resolve(ctx, base, check, cfg)
}

func resolve(ctx context.Context, base string, check Predicate, cfg *config) (string, error) {
	ok, err := check(ctx, base)
	if err != nil {
		return "", err
	}
	if ok {
		return base, nil
	}

	for i := 1; i <= MaxAttempts; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		candidate := base + cfg.space + cfg.multiplier.Disambiguator(i)
		ok, err := check(ctx, candidate)
		if err != nil {
			return "", err
		}
		if ok {
			cfg.log.DebugContext(ctx, "slug resolved",
				logger.Base(base),
				logger.Slug(candidate),
				logger.Attempt(i),
			)
			return candidate, nil
		}
	}

	cfg.log.WarnContext(ctx, "slug probes exhausted",
		logger.Base(base),
		logger.Attempt(MaxAttempts),
	)
	if cfg.strict {
		return base, ErrExhausted
	}
	return base, nil
}
