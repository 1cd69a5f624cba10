package main

import (
	"github.com/syncline-io/syncline/internal/cli/config"
	"github.com/syncline-io/syncline/store"
)

// openStore builds the entity store the CLI works against: Redis when an
// address is configured, the in-memory store otherwise. The returned closer
// is a no-op for the memory store.
func openStore(cfg *config.Config) (store.EntityStore, func() error, error) {
	if cfg.Redis.Addr == "" {
		return store.NewMemoryStore(), func() error { return nil }, nil
	}

	redisStore, err := store.NewRedisStore(store.RedisConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		Prefix:   cfg.Redis.Prefix,
	})
	if err != nil {
		return nil, nil, err
	}
	return redisStore, redisStore.Close, nil
}
