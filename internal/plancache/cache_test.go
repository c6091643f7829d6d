package plancache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mojocode_server/internal/types"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return client, mr
}

func samplePlan() types.ProjectPlan {
	return types.ProjectPlan{
		ProjectName:         "Pet Finder",
		Description:         "Find pets",
		Features:            []string{"Search", "Map view"},
		TechStack:           []string{"HTML5"},
		FileStructure:       []string{"index.html"},
		Clarifications:      []string{},
		EstimatedComplexity: types.ComplexityComplex,
		Prompt:              "pets",
	}
}

func runCacheContract(t *testing.T, c Cache) {
	ctx := context.Background()

	stored, err := c.Put(ctx, "u1", samplePlan())
	require.NoError(t, err)
	require.NotEmpty(t, stored.ID)

	t.Run("owner reads back the same plan", func(t *testing.T) {
		got, err := c.Get(ctx, "u1", stored.ID)
		require.NoError(t, err)
		assert.Equal(t, stored, got)
	})

	t.Run("another user cannot see it", func(t *testing.T) {
		_, err := c.Get(ctx, "u2", stored.ID)
		assert.ErrorIs(t, err, types.ErrPlanNotFound)
		assert.ErrorIs(t, c.Delete(ctx, "u2", stored.ID), types.ErrPlanNotFound)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := c.Get(ctx, "u1", "does-not-exist")
		assert.ErrorIs(t, err, types.ErrPlanNotFound)
	})

	t.Run("pending lists the user's plans", func(t *testing.T) {
		ids, err := c.Pending(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, []string{stored.ID}, ids)

		ids, err = c.Pending(ctx, "u2")
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("explicit id is kept", func(t *testing.T) {
		p := samplePlan()
		p.ID = "fixed-id"
		out, err := c.Put(ctx, "u1", p)
		require.NoError(t, err)
		assert.Equal(t, "fixed-id", out.ID)
		require.NoError(t, c.Delete(ctx, "u1", "fixed-id"))
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, c.Delete(ctx, "u1", stored.ID))
		_, err := c.Get(ctx, "u1", stored.ID)
		assert.ErrorIs(t, err, types.ErrPlanNotFound)
	})
}

func TestRedis_Contract(t *testing.T) {
	client, _ := setupTestRedis(t)
	runCacheContract(t, NewRedis(client, time.Hour))
}

func TestMemory_Contract(t *testing.T) {
	runCacheContract(t, NewMemory(time.Hour))
}

func TestRedis_Expiry(t *testing.T) {
	client, mr := setupTestRedis(t)
	c := NewRedis(client, time.Minute)
	ctx := context.Background()

	stored, err := c.Put(ctx, "u1", samplePlan())
	require.NoError(t, err)
	assert.Equal(t, time.Minute, mr.TTL(planKeyPrefix+stored.ID))

	mr.FastForward(2 * time.Minute)

	_, err = c.Get(ctx, "u1", stored.ID)
	assert.ErrorIs(t, err, types.ErrPlanNotFound)
}

func TestRedis_StoreUnavailable(t *testing.T) {
	client, mr := setupTestRedis(t)
	c := NewRedis(client, time.Minute)
	mr.Close()

	_, err := c.Put(context.Background(), "u1", samplePlan())
	assert.ErrorIs(t, err, types.ErrDataStore)
}

func TestMemory_Expiry(t *testing.T) {
	c := NewMemory(time.Minute)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	ctx := context.Background()

	stored, err := c.Put(ctx, "u1", samplePlan())
	require.NoError(t, err)

	now = now.Add(59 * time.Second)
	_, err = c.Get(ctx, "u1", stored.ID)
	require.NoError(t, err)

	now = now.Add(time.Second)
	_, err = c.Get(ctx, "u1", stored.ID)
	assert.ErrorIs(t, err, types.ErrPlanNotFound)

	ids, err := c.Pending(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestDefaultTTL(t *testing.T) {
	assert.Equal(t, DefaultTTL, NewMemory(0).ttl)
	client, _ := setupTestRedis(t)
	assert.Equal(t, DefaultTTL, NewRedis(client, -1).ttl)
}
