package usecase

import (
	"context"
	"time"

	"escalation-srv/internal/dashboard"
	"escalation-srv/pkg/log"
)

type Config struct {
	MaxConnections int
	PongWait       time.Duration
	PingPeriod     time.Duration
	WriteWait      time.Duration
	SendBuffer     int
}

func (c Config) withDefaults() Config {
	if c.PongWait <= 0 {
		c.PongWait = 60 * time.Second
	}
	if c.PingPeriod <= 0 || c.PingPeriod >= c.PongWait {
		c.PingPeriod = c.PongWait * 9 / 10
	}
	if c.WriteWait <= 0 {
		c.WriteWait = 10 * time.Second
	}
	if c.SendBuffer <= 0 {
		c.SendBuffer = 256
	}
	return c
}

type implUseCase struct {
	hub    *Hub
	logger log.Logger
	cfg    Config
	alerts dashboard.AlertSource
	clock  func() time.Time
}

// New builds the dashboard hub. alerts may be nil, in which case new
// clients get an empty snapshot.
func New(logger log.Logger, cfg Config, alerts dashboard.AlertSource) dashboard.UseCase {
	cfg = cfg.withDefaults()
	return &implUseCase{
		hub:    newHub(logger, cfg.MaxConnections),
		logger: logger,
		cfg:    cfg,
		alerts: alerts,
		clock:  time.Now,
	}
}

func (uc *implUseCase) Run() {
	uc.hub.run()
}

func (uc *implUseCase) Shutdown(ctx context.Context) error {
	return uc.hub.shutdown(ctx)
}

func (uc *implUseCase) Stats(ctx context.Context) dashboard.Stats {
	return uc.hub.stats()
}
