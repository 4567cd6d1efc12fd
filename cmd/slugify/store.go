package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/urislug/pkg/config"
	"github.com/dmitrymomot/urislug/pkg/mongo"
	"github.com/dmitrymomot/urislug/pkg/pg"
	"github.com/dmitrymomot/urislug/pkg/redis"
	"github.com/dmitrymomot/urislug/pkg/registry"
	"github.com/dmitrymomot/urislug/pkg/slug"
)

// claimer is implemented by every registry store.
type claimer interface {
	Available(ctx context.Context, candidate string) (bool, error)
	Claim(ctx context.Context, candidate string) (bool, error)
}

func predicate(store claimer, claim bool) slug.Predicate {
	if claim {
		return store.Claim
	}
	return store.Available
}

// openStore returns the predicate for the selected store and a function
// releasing its resources. The "none" store yields a nil predicate.
func openStore(ctx context.Context, f *flags, log *slog.Logger) (slug.Predicate, func(), error) {
	noop := func() {}

	switch f.store {
	case "", "none":
		return nil, noop, nil

	case "memory":
		return predicate(registry.NewMemory(0, f.taken...), f.claim), noop, nil

	case "redis":
		var cfg redis.Config
		if err := config.Load(&cfg, f.envFiles...); err != nil {
			return nil, noop, fmt.Errorf("load redis config: %w", err)
		}
		client, err := redis.Connect(ctx, cfg)
		if err != nil {
			return nil, noop, err
		}
		log.DebugContext(ctx, "redis store ready", slog.String("key", cfg.SlugKey))
		return predicate(registry.Redis(client, cfg.SlugKey), f.claim), func() { _ = client.Close() }, nil

	case "postgres":
		var cfg pg.Config
		if err := config.Load(&cfg, f.envFiles...); err != nil {
			return nil, noop, fmt.Errorf("load postgres config: %w", err)
		}
		pool, err := pg.Connect(ctx, cfg)
		if err != nil {
			return nil, noop, err
		}
		if err := pg.Migrate(ctx, pool, cfg, log); err != nil {
			pool.Close()
			return nil, noop, err
		}
		log.DebugContext(ctx, "postgres store ready", slog.String("table", cfg.SlugTable))
		return predicate(registry.Postgres(pool, cfg.SlugTable, cfg.SlugColumn), f.claim), pool.Close, nil

	case "mongo":
		var cfg mongo.Config
		if err := config.Load(&cfg, f.envFiles...); err != nil {
			return nil, noop, fmt.Errorf("load mongo config: %w", err)
		}
		client, err := mongo.Connect(ctx, cfg)
		if err != nil {
			return nil, noop, err
		}
		log.DebugContext(ctx, "mongo store ready", slog.String("collection", cfg.SlugCollection))
		disconnect := func() { _ = client.Disconnect(context.WithoutCancel(ctx)) }
		return predicate(registry.Mongo(mongo.SlugCollection(client, cfg)), f.claim), disconnect, nil

	default:
		return nil, noop, fmt.Errorf("unknown store %q: must be none, memory, redis, postgres or mongo", f.store)
	}
}
