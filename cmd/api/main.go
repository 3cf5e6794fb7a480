package main

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"escalation-srv/config"
	configRedis "escalation-srv/config/redis"
	"escalation-srv/internal/httpserver"
	"escalation-srv/pkg/discord"
	"escalation-srv/pkg/log"
	pkgRedis "escalation-srv/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config:", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Info(ctx, "Starting Escalation Service...")

	// Initialize Discord webhook (optional)
	var discordClient discord.IDiscord
	if cfg.Discord.WebhookURL != "" {
		discordClient, err = discord.New(logger, cfg.Discord.WebhookURL)
		if err != nil {
			logger.Warnf(ctx, "Failed to initialize Discord webhook: %v", err)
			discordClient = nil
		} else {
			logger.Info(ctx, "Discord webhook initialized")
		}
	}

	// Redis - Pub/Sub for the dashboard stream (optional)
	var redisClient pkgRedis.IRedis
	if cfg.Redis.Enabled {
		redisClient, err = configRedis.Connect(ctx, cfg.Redis)
		if err != nil {
			logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
			return
		}
		defer configRedis.Disconnect()
		logger.Infof(ctx, "Redis connected to %s:%d", cfg.Redis.Host, cfg.Redis.Port)
	}

	// Metrics registry
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Host:            cfg.Server.Host,
		Port:            cfg.Server.Port,
		Mode:            cfg.Server.Mode,
		Environment:     cfg.Environment.Name,
		AllowedOrigins:  cfg.Server.AllowedOrigins,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,

		// Escalation Configuration
		Rules:          cfg.Rules,
		Groups:         cfg.Groups,
		Monitor:        cfg.Monitor,
		Escalation:     cfg.Escalation,
		WebSocket:      cfg.WebSocket,
		WebhookTimeout: cfg.Notification.WebhookTimeout,

		// Monitoring & Notification Configuration
		Registry: registry,
		Redis:    redisClient,
		Discord:  discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}
}
