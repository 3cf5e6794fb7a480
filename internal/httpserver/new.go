package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"escalation-srv/config"
	"escalation-srv/internal/dashboard"
	dashboardRedis "escalation-srv/internal/dashboard/delivery/redis"
	"escalation-srv/internal/model"
	"escalation-srv/internal/monitor"
	"escalation-srv/pkg/discord"
	"escalation-srv/pkg/log"
	pkgRedis "escalation-srv/pkg/redis"
)

// HTTPServer represents the HTTP server with all dependencies.
// New() only wires dependencies and validates them.
// Run() (in httpserver.go) is responsible for starting background services and HTTP serving.
type HTTPServer struct {
	// Server configuration
	gin             *gin.Engine
	logger          log.Logger
	host            string
	port            int
	environment     string
	allowedOrigins  []string
	shutdownTimeout time.Duration

	// Escalation configuration
	rules          []model.EscalationRule
	groups         []model.StakeholderGroup
	monitorCfg     config.MonitorConfig
	escalationCfg  config.EscalationConfig
	wsCfg          config.WebSocketConfig
	webhookTimeout time.Duration

	// Wired in mapHandlers
	monitorUC       monitor.UseCase
	dashboardUC     dashboard.UseCase
	subscriber      dashboardRedis.Subscriber
	unsubscribeFeed func()

	// External services
	registry *prometheus.Registry
	redis    pkgRedis.IRedis
	discord  discord.IDiscord
}

// Config is the constructor input for HTTPServer.
type Config struct {
	// Server configuration
	Host            string
	Port            int
	Mode            string
	Environment     string
	AllowedOrigins  []string
	ShutdownTimeout time.Duration

	// Escalation configuration. Empty rules or groups fall back to the
	// built-in defaults.
	Rules          []model.EscalationRule
	Groups         []model.StakeholderGroup
	Monitor        config.MonitorConfig
	Escalation     config.EscalationConfig
	WebSocket      config.WebSocketConfig
	WebhookTimeout time.Duration

	// External services. Redis and Discord are optional.
	Registry *prometheus.Registry
	Redis    pkgRedis.IRedis
	Discord  discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
// Note: This does NOT start any goroutines. Use (*HTTPServer).Run() to start the service.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 30 * time.Second
	}
	if cfg.Registry == nil {
		cfg.Registry = prometheus.NewRegistry()
	}

	srv := &HTTPServer{
		// Server configuration
		gin:             gin.New(),
		logger:          logger,
		host:            cfg.Host,
		port:            cfg.Port,
		environment:     cfg.Environment,
		allowedOrigins:  cfg.AllowedOrigins,
		shutdownTimeout: cfg.ShutdownTimeout,

		// Escalation configuration
		rules:          cfg.Rules,
		groups:         cfg.Groups,
		monitorCfg:     cfg.Monitor,
		escalationCfg:  cfg.Escalation,
		wsCfg:          cfg.WebSocket,
		webhookTimeout: cfg.WebhookTimeout,

		// External services
		registry: cfg.Registry,
		redis:    cfg.Redis,
		discord:  cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate ensures all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.logger == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}

	return nil
}
