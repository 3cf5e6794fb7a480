package usecase

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"escalation-srv/internal/audit"
	"escalation-srv/internal/complaint"
	"escalation-srv/internal/escalation"
	"escalation-srv/internal/hierarchy"
	"escalation-srv/internal/model"
	"escalation-srv/internal/monitor"
	"escalation-srv/internal/notification"
	"escalation-srv/internal/rule"
	"escalation-srv/pkg/log"
)

const defaultInterval = 60 * time.Second

type Config struct {
	Interval time.Duration
	// DismissCooldown keeps a dismissed complaint out of the alert set for
	// this long. Zero lets it come back on the next cycle.
	DismissCooldown time.Duration
	AutoStart       bool
	// Workers bounds parallel evaluation inside one cycle.
	Workers int
}

type Deps struct {
	Engine     escalation.UseCase
	Rules      *rule.Set
	Directory  hierarchy.Directory
	Complaints complaint.UseCase
	Audit      audit.UseCase
	Notifier   notification.UseCase
	Registerer prometheus.Registerer
}

type implUseCase struct {
	logger     log.Logger
	cfg        Config
	engine     escalation.UseCase
	rules      *rule.Set
	directory  hierarchy.Directory
	complaints complaint.UseCase
	audit      audit.UseCase
	notifier   notification.UseCase
	metrics    *metrics
	clock      func() time.Time

	// loopMu guards the schedule state.
	loopMu sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}

	// cycleMu serializes cycles.
	cycleMu sync.Mutex

	mu        sync.RWMutex
	alerts    []model.EscalationAlert
	dismissed map[string]time.Time
	stats     monitor.Stats

	// inflight holds complaint ids with an Escalate call in progress.
	inflight sync.Map

	notifyWG sync.WaitGroup
}

func New(logger log.Logger, cfg Config, deps Deps) monitor.UseCase {
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}

	return &implUseCase{
		logger:     logger,
		cfg:        cfg,
		engine:     deps.Engine,
		rules:      deps.Rules,
		directory:  deps.Directory,
		complaints: deps.Complaints,
		audit:      deps.Audit,
		notifier:   deps.Notifier,
		metrics:    newMetrics(deps.Registerer),
		clock:      time.Now,
		dismissed:  make(map[string]time.Time),
		stats:      monitor.Stats{Interval: cfg.Interval},
	}
}
