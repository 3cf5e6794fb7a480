package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"escalation-srv/internal/escalation"
	"escalation-srv/internal/model"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	Server ServerConfig
	Logger LoggerConfig

	// Redis Configuration
	Redis RedisConfig

	// WebSocket Configuration
	WebSocket WebSocketConfig

	// Escalation Configuration
	Monitor    MonitorConfig
	Escalation EscalationConfig
	Rules      []model.EscalationRule
	Groups     []model.StakeholderGroup

	// Monitoring & Notification Configuration
	Discord      DiscordConfig
	Notification NotificationConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// ServerConfig is the configuration for the HTTP server
type ServerConfig struct {
	Host            string
	Port            int
	Mode            string
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
}

// RedisConfig is the configuration for Redis. Redis is optional; without it
// dashboard events stay in-process.
type RedisConfig struct {
	Enabled      bool
	Host         string
	Port         int
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
}

// WebSocketConfig is the configuration for dashboard connections
type WebSocketConfig struct {
	PingInterval    time.Duration
	PongWait        time.Duration
	WriteWait       time.Duration
	ReadBufferSize  int
	WriteBufferSize int
	SendBuffer      int
	MaxConnections  int
}

// MonitorConfig is the configuration for the periodic escalation monitor
type MonitorConfig struct {
	Interval        time.Duration
	DismissCooldown time.Duration
	AutoStart       bool
	Workers         int
}

// EscalationConfig is the configuration for rule evaluation and routing
type EscalationConfig struct {
	Timezone         string
	AssigneeStrategy escalation.AssigneeStrategy
	Seed             int64
	Location         *time.Location
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// DiscordConfig is the configuration for the Discord webhook used for bug
// reports and chat channel delivery
type DiscordConfig struct {
	WebhookURL string
}

// NotificationConfig is the configuration for outbound channel senders
type NotificationConfig struct {
	WebhookTimeout time.Duration
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("escalation-config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/escalation/")

	return load(v)
}

// LoadFile reads configuration from an explicit path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	// Enable environment variable override
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	// Read config file (optional - will use env vars if file not found)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment
	cfg.Environment.Name = v.GetString("environment.name")

	// Server
	cfg.Server.Host = v.GetString("server.host")
	cfg.Server.Port = v.GetInt("server.port")
	cfg.Server.Mode = v.GetString("server.mode")
	cfg.Server.AllowedOrigins = v.GetStringSlice("server.allowed_origins")
	cfg.Server.ShutdownTimeout = v.GetDuration("server.shutdown_timeout")

	// Logger
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Redis
	cfg.Redis.Enabled = v.GetBool("redis.enabled")
	cfg.Redis.Host = v.GetString("redis.host")
	cfg.Redis.Port = v.GetInt("redis.port")
	cfg.Redis.Password = v.GetString("redis.password")
	cfg.Redis.DB = v.GetInt("redis.db")
	cfg.Redis.PoolSize = v.GetInt("redis.pool_size")
	cfg.Redis.MinIdleConns = v.GetInt("redis.min_idle_conns")
	cfg.Redis.DialTimeout = v.GetDuration("redis.dial_timeout")

	// WebSocket
	cfg.WebSocket.PingInterval = v.GetDuration("websocket.ping_interval")
	cfg.WebSocket.PongWait = v.GetDuration("websocket.pong_wait")
	cfg.WebSocket.WriteWait = v.GetDuration("websocket.write_wait")
	cfg.WebSocket.ReadBufferSize = v.GetInt("websocket.read_buffer_size")
	cfg.WebSocket.WriteBufferSize = v.GetInt("websocket.write_buffer_size")
	cfg.WebSocket.SendBuffer = v.GetInt("websocket.send_buffer")
	cfg.WebSocket.MaxConnections = v.GetInt("websocket.max_connections")

	// Monitor
	cfg.Monitor.Interval = v.GetDuration("monitor.interval")
	cfg.Monitor.DismissCooldown = v.GetDuration("monitor.dismiss_cooldown")
	cfg.Monitor.AutoStart = v.GetBool("monitor.auto_start")
	cfg.Monitor.Workers = v.GetInt("monitor.workers")

	// Escalation
	cfg.Escalation.Timezone = v.GetString("escalation.timezone")
	cfg.Escalation.AssigneeStrategy = escalation.AssigneeStrategy(v.GetString("escalation.assignee_strategy"))
	cfg.Escalation.Seed = v.GetInt64("escalation.seed")

	if err := v.UnmarshalKey("rules", &cfg.Rules); err != nil {
		return nil, fmt.Errorf("error decoding rules: %w", err)
	}
	if err := v.UnmarshalKey("stakeholder_groups", &cfg.Groups); err != nil {
		return nil, fmt.Errorf("error decoding stakeholder_groups: %w", err)
	}

	// Discord
	cfg.Discord.WebhookURL = v.GetString("discord.webhook_url")

	// Notification
	cfg.Notification.WebhookTimeout = v.GetDuration("notification.webhook_timeout")

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Environment
	v.SetDefault("environment.name", "production")

	// Server
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.shutdown_timeout", 30*time.Second)

	// Logger
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "production")
	v.SetDefault("logger.encoding", "json")
	v.SetDefault("logger.color_enabled", false)

	// Redis
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 20)
	v.SetDefault("redis.min_idle_conns", 2)
	v.SetDefault("redis.dial_timeout", 5*time.Second)

	// WebSocket
	v.SetDefault("websocket.ping_interval", 54*time.Second)
	v.SetDefault("websocket.pong_wait", 60*time.Second)
	v.SetDefault("websocket.write_wait", 10*time.Second)
	v.SetDefault("websocket.read_buffer_size", 1024)
	v.SetDefault("websocket.write_buffer_size", 1024)
	v.SetDefault("websocket.send_buffer", 256)
	v.SetDefault("websocket.max_connections", 1000)

	// Monitor
	v.SetDefault("monitor.interval", 60*time.Second)
	v.SetDefault("monitor.dismiss_cooldown", 0)
	v.SetDefault("monitor.auto_start", true)
	v.SetDefault("monitor.workers", 0)

	// Escalation
	v.SetDefault("escalation.timezone", "UTC")
	v.SetDefault("escalation.assignee_strategy", string(escalation.AssigneeStrategyRoundRobin))
	v.SetDefault("escalation.seed", 0)

	// Notification
	v.SetDefault("notification.webhook_timeout", 5*time.Second)
}

func validate(cfg *Config) error {
	// Validate Server
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}

	// Validate Redis
	if cfg.Redis.Enabled {
		if cfg.Redis.Host == "" {
			return fmt.Errorf("redis.host is required")
		}
		if cfg.Redis.Port == 0 {
			return fmt.Errorf("redis.port is required")
		}
	}

	// Validate Monitor
	if cfg.Monitor.Interval <= 0 {
		return fmt.Errorf("monitor.interval must be positive")
	}
	if cfg.Monitor.DismissCooldown < 0 {
		return fmt.Errorf("monitor.dismiss_cooldown must not be negative")
	}

	// Validate Escalation
	loc, err := time.LoadLocation(cfg.Escalation.Timezone)
	if err != nil {
		return fmt.Errorf("escalation.timezone %q: %w", cfg.Escalation.Timezone, err)
	}
	cfg.Escalation.Location = loc

	switch cfg.Escalation.AssigneeStrategy {
	case escalation.AssigneeStrategyRoundRobin, escalation.AssigneeStrategyRandom:
	default:
		return fmt.Errorf("escalation.assignee_strategy must be %q or %q",
			escalation.AssigneeStrategyRoundRobin, escalation.AssigneeStrategyRandom)
	}

	return nil
}
