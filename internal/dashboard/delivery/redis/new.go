package redis

import (
	"context"
	"sync"

	goredis "github.com/redis/go-redis/v9"

	"escalation-srv/internal/dashboard"
	"escalation-srv/pkg/log"
	pkgRedis "escalation-srv/pkg/redis"
)

// Pattern matches every channel the dashboard listens on.
const Pattern = "dashboard:*"

type Subscriber interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

type subscriber struct {
	redis  pkgRedis.IRedis
	uc     dashboard.UseCase
	logger log.Logger

	pubsub *goredis.PubSub
	wg     sync.WaitGroup
	quit   chan struct{}
	once   sync.Once
}

func New(redis pkgRedis.IRedis, uc dashboard.UseCase, logger log.Logger) Subscriber {
	return &subscriber{
		redis:  redis,
		uc:     uc,
		logger: logger,
		quit:   make(chan struct{}),
	}
}
