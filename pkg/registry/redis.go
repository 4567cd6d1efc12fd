package registry

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisSetClient is the subset of go-redis used for slug sets.
// *redis.Client, *redis.ClusterClient and redis.UniversalClient satisfy it.
type RedisSetClient interface {
	SAdd(ctx context.Context, key string, members ...any) *redis.IntCmd
	SIsMember(ctx context.Context, key string, member any) *redis.BoolCmd
}

// RedisSet keeps taken slugs in a single Redis set.
type RedisSet struct {
	client RedisSetClient
	key    string
}

// Redis returns a slug registry backed by the set stored at key.
func Redis(client RedisSetClient, key string) *RedisSet {
	return &RedisSet{client: client, key: key}
}

// Claim is a slug.Predicate built on SADD: the candidate is accepted only
// when this call added it, which makes the claim atomic across processes.
func (r *RedisSet) Claim(ctx context.Context, candidate string) (bool, error) {
	added, err := r.client.SAdd(ctx, r.key, candidate).Result()
	if err != nil {
		return false, errors.Join(ErrClaimFailed, err)
	}
	return added == 1, nil
}

// Available is a slug.Predicate built on SISMEMBER. It does not reserve.
func (r *RedisSet) Available(ctx context.Context, candidate string) (bool, error) {
	taken, err := r.client.SIsMember(ctx, r.key, candidate).Result()
	if err != nil {
		return false, errors.Join(ErrLookupFailed, err)
	}
	return !taken, nil
}
