package app

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/unite-hq/mentorlaunch/internal/adapter/cache/rediscache"
)

// BuildReadinessChecks returns ping functions for the configured backends.
// A nil pool or cache yields a nil check, which /readyz reports as disabled.
func BuildReadinessChecks(pool *pgxpool.Pool, cache *rediscache.Cache) (dbCheck, redisCheck func(context.Context) error) {
	if pool != nil {
		dbCheck = func(ctx context.Context) error { return pool.Ping(ctx) }
	}
	if cache != nil {
		redisCheck = func(ctx context.Context) error { return cache.Ping(ctx) }
	}
	return dbCheck, redisCheck
}
