package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return NewRedisStoreWithClient(client, "syncline:"), mr
}

func TestNewRedisStore(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	config := DefaultRedisConfig()
	config.Addr = mr.Addr()

	s, err := NewRedisStore(config)
	require.NoError(t, err)
	assert.NotNil(t, s)
	defer s.Close()
}

func TestNewRedisStore_ConnectionError(t *testing.T) {
	config := DefaultRedisConfig()
	config.Addr = "localhost:1" // nothing listens here

	_, err := NewRedisStore(config)
	assert.Error(t, err)
}

func TestRedisStore_WriteAndRead(t *testing.T) {
	s, mr := setupTestRedis(t)
	defer mr.Close()
	defer s.Close()

	ctx := context.Background()

	entity := Entity{"id": "123", "city": "Paris"}
	require.NoError(t, s.WriteEntity(ctx, "person", "123", entity))

	got, err := s.ReadEntity(ctx, "person", "123")
	require.NoError(t, err)
	assert.Equal(t, entity, got)
}

func TestRedisStore_ReadMiss(t *testing.T) {
	s, mr := setupTestRedis(t)
	defer mr.Close()
	defer s.Close()

	_, err := s.ReadEntity(context.Background(), "person", "missing")
	require.Error(t, err)
	assert.True(t, IsEntityMiss(err))
}

func TestRedisStore_MergeUpsert(t *testing.T) {
	s, mr := setupTestRedis(t)
	defer mr.Close()
	defer s.Close()

	ctx := context.Background()

	require.NoError(t, s.WriteEntity(ctx, "person", "1", Entity{"id": "1", "city": "Paris"}))
	require.NoError(t, s.WriteEntity(ctx, "person", "1", Entity{"id": "1", "jobTitle": "CTO"}))

	got, err := s.ReadEntity(ctx, "person", "1")
	require.NoError(t, err)
	assert.Equal(t, Entity{"id": "1", "city": "Paris", "jobTitle": "CTO"}, got)
}

func TestRedisStore_KeyPrefix(t *testing.T) {
	s, mr := setupTestRedis(t)
	defer mr.Close()
	defer s.Close()

	ctx := context.Background()
	require.NoError(t, s.WriteEntity(ctx, "person", "1", Entity{"id": "1"}))

	assert.True(t, mr.Exists("syncline:person:1"))
}

func TestRedisStore_DeleteAndExists(t *testing.T) {
	s, mr := setupTestRedis(t)
	defer mr.Close()
	defer s.Close()

	ctx := context.Background()

	require.NoError(t, s.WriteEntity(ctx, "person", "1", Entity{"id": "1"}))

	exists, err := s.Exists(ctx, "person", "1")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, s.DeleteEntity(ctx, "person", "1"))

	exists, err = s.Exists(ctx, "person", "1")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRedisStore_Clear(t *testing.T) {
	s, mr := setupTestRedis(t)
	defer mr.Close()
	defer s.Close()

	ctx := context.Background()

	require.NoError(t, s.WriteEntity(ctx, "person", "1", Entity{"id": "1"}))
	require.NoError(t, s.WriteEntity(ctx, "company", "2", Entity{"id": "2"}))
	require.NoError(t, s.Clear(ctx))

	_, err := s.ReadEntity(ctx, "person", "1")
	assert.True(t, IsEntityMiss(err))
	_, err = s.ReadEntity(ctx, "company", "2")
	assert.True(t, IsEntityMiss(err))
}
