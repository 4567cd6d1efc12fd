package registry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/urislug/pkg/registry"
	"github.com/dmitrymomot/urislug/pkg/slug"
)

// fakeSetClient emulates SADD and SISMEMBER on in-memory sets.
type fakeSetClient struct {
	sets map[string]map[string]bool
	err  error
}

func newFakeSetClient() *fakeSetClient {
	return &fakeSetClient{sets: make(map[string]map[string]bool)}
}

func (f *fakeSetClient) SAdd(_ context.Context, key string, members ...any) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	set, ok := f.sets[key]
	if !ok {
		set = make(map[string]bool)
		f.sets[key] = set
	}
	var added int64
	for _, m := range members {
		s := m.(string)
		if !set[s] {
			set[s] = true
			added++
		}
	}
	return redis.NewIntResult(added, nil)
}

func (f *fakeSetClient) SIsMember(_ context.Context, key string, member any) *redis.BoolCmd {
	if f.err != nil {
		return redis.NewBoolResult(false, f.err)
	}
	return redis.NewBoolResult(f.sets[key][member.(string)], nil)
}

func TestRedisSet_Claim(t *testing.T) {
	ctx := context.Background()
	client := newFakeSetClient()
	set := registry.Redis(client, "slugs")

	for _, expected := range []string{"John-Doe", "John-Doe-1", "John-Doe-2"} {
		result, err := slug.GenerateUnique(ctx, []string{"John Doe"}, set.Claim)
		require.NoError(t, err)
		assert.Equal(t, expected, result)
	}
	assert.Len(t, client.sets["slugs"], 3)
}

func TestRedisSet_Available(t *testing.T) {
	ctx := context.Background()
	client := newFakeSetClient()
	client.sets["slugs"] = map[string]bool{"John-Doe": true, "John-Doe-*": true}
	set := registry.Redis(client, "slugs")

	result, err := slug.GenerateUnique(ctx, []string{"John Doe"}, set.Available,
		slug.WithMultiplier(slug.Repeater("*")))
	require.NoError(t, err)
	assert.Equal(t, "John-Doe-**", result)
	assert.Len(t, client.sets["slugs"], 2)
}

func TestRedisSet_Errors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection refused")
	client := newFakeSetClient()
	client.err = boom
	set := registry.Redis(client, "slugs")

	_, err := slug.GenerateUnique(ctx, []string{"John Doe"}, set.Claim)
	require.ErrorIs(t, err, registry.ErrClaimFailed)
	require.ErrorIs(t, err, boom)

	_, err = set.Available(ctx, "John-Doe")
	require.ErrorIs(t, err, registry.ErrLookupFailed)
}
