// Package redis connects to a Redis server with go-redis and retries until it
// answers PING.
//
// Config is populated from REDIS_* environment variables via pkg/config; the
// SlugKey field names the set used by registry.Redis.
//
//	var cfg redis.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//	claims := registry.Redis(client, cfg.SlugKey)
//
// Errors wrap the go-redis cause with errors.Join and can be matched with
// errors.Is.
package redis
