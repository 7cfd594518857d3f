package integration

import (
	"context"

	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/modules/redis"
)

// Env holds the disposable backing services integration tests run against.
type Env struct {
	PG       *postgres.PostgresContainer
	Redis    *redis.RedisContainer
	PGURL    string
	RedisURL string
}

func Setup(ctx context.Context) (*Env, error) {
	pgC, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("storefront"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		return nil, err
	}

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = pgC.Terminate(ctx)
		return nil, err
	}

	redisC, err := redis.Run(ctx, "redis:7-alpine")
	if err != nil {
		_ = pgC.Terminate(ctx)
		return nil, err
	}

	redisURL, err := redisC.ConnectionString(ctx)
	if err != nil {
		_ = redisC.Terminate(ctx)
		_ = pgC.Terminate(ctx)
		return nil, err
	}

	return &Env{
		PG:       pgC,
		Redis:    redisC,
		PGURL:    pgURL,
		RedisURL: redisURL,
	}, nil
}

func (e *Env) Teardown(ctx context.Context) {
	_ = e.Redis.Terminate(ctx)
	_ = e.PG.Terminate(ctx)
}
