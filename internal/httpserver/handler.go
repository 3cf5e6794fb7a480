package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	auditUC "escalation-srv/internal/audit/usecase"
	complaintHTTP "escalation-srv/internal/complaint/delivery/http"
	complaintRepo "escalation-srv/internal/complaint/repository/memory"
	complaintUC "escalation-srv/internal/complaint/usecase"
	dashboardHTTP "escalation-srv/internal/dashboard/delivery/http"
	dashboardRedis "escalation-srv/internal/dashboard/delivery/redis"
	dashboardUC "escalation-srv/internal/dashboard/usecase"
	"escalation-srv/internal/escalation"
	escalationUC "escalation-srv/internal/escalation/usecase"
	"escalation-srv/internal/hierarchy"
	hierarchyHTTP "escalation-srv/internal/hierarchy/delivery/http"
	"escalation-srv/internal/middleware"
	monitorHTTP "escalation-srv/internal/monitor/delivery/http"
	monitorUC "escalation-srv/internal/monitor/usecase"
	"escalation-srv/internal/notification"
	notificationHTTP "escalation-srv/internal/notification/delivery/http"
	notificationUC "escalation-srv/internal/notification/usecase"
	"escalation-srv/internal/rule"
	ruleHTTP "escalation-srv/internal/rule/delivery/http"
)

const (
	Api = "/api/v1"

	dashboardFeedID = "dashboard"
)

func (srv *HTTPServer) mapHandlers() error {
	ctx := context.Background()

	// Rules and hierarchy
	rules := srv.rules
	if len(rules) == 0 {
		rules = rule.Defaults()
	}
	ruleSet, err := rule.NewSet(rules)
	if err != nil {
		return fmt.Errorf("rules: %w", err)
	}

	groups := srv.groups
	if len(groups) == 0 {
		groups = hierarchy.Defaults()
	}
	directory, err := hierarchy.New(groups)
	if err != nil {
		return fmt.Errorf("stakeholder_groups: %w", err)
	}

	// Escalation engine
	picker := escalationUC.NewRoundRobinPicker()
	if srv.escalationCfg.AssigneeStrategy == escalation.AssigneeStrategyRandom {
		picker = escalationUC.NewRandomPicker(srv.escalationCfg.Seed)
	}
	engine := escalationUC.New(srv.logger, ruleSet, directory, escalationUC.Config{
		Location: srv.escalationCfg.Location,
		Picker:   picker,
	})

	// Complaints and audit
	complaints := complaintUC.New(srv.logger, complaintRepo.New(srv.logger))
	auditor := auditUC.New(srv.logger)

	// Notifications
	senders := map[notification.Channel]notification.Sender{
		notification.ChannelEmail:   notificationUC.NewLogSender(srv.logger),
		notification.ChannelSMS:     notificationUC.NewLogSender(srv.logger),
		notification.ChannelWebhook: notificationUC.NewWebhookSender(srv.webhookTimeout),
	}
	if srv.discord != nil {
		senders[notification.ChannelSlack] = notificationUC.NewChatSender(srv.discord, "Slack")
		senders[notification.ChannelTeams] = notificationUC.NewChatSender(srv.discord, "Teams")
	}
	var publisher notification.Publisher
	if srv.redis != nil {
		publisher = srv.redis
	}
	notifier := notificationUC.New(srv.logger, publisher, senders)

	// Monitor
	srv.monitorUC = monitorUC.New(srv.logger, monitorUC.Config{
		Interval:        srv.monitorCfg.Interval,
		DismissCooldown: srv.monitorCfg.DismissCooldown,
		AutoStart:       srv.monitorCfg.AutoStart,
		Workers:         srv.monitorCfg.Workers,
	}, monitorUC.Deps{
		Engine:     engine,
		Rules:      ruleSet,
		Directory:  directory,
		Complaints: complaints,
		Audit:      auditor,
		Notifier:   notifier,
		Registerer: srv.registry,
	})

	complaints.AddListener(notifier)
	complaints.AddListener(auditor)
	complaints.AddListener(srv.monitorUC)

	// Dashboard
	srv.dashboardUC = dashboardUC.New(srv.logger, dashboardUC.Config{
		MaxConnections: srv.wsCfg.MaxConnections,
		PongWait:       srv.wsCfg.PongWait,
		PingPeriod:     srv.wsCfg.PingInterval,
		WriteWait:      srv.wsCfg.WriteWait,
		SendBuffer:     srv.wsCfg.SendBuffer,
	}, srv.monitorUC)

	// With Redis, escalation events reach the dashboard through pub/sub.
	var feed notification.Filter
	if srv.redis != nil {
		feed.Types = []notification.Type{
			notification.TypeNewComplaint,
			notification.TypeStatusUpdate,
			notification.TypeSystemAlert,
		}
		srv.subscriber = dashboardRedis.New(srv.redis, srv.dashboardUC, srv.logger)
	}
	srv.unsubscribeFeed = notifier.Subscribe(dashboardFeedID, feed, func(n notification.Notification) {
		srv.dashboardUC.Publish(ctx, n)
	})

	// Middleware
	mw := middleware.New(srv.logger, srv.discord)
	srv.gin.Use(
		mw.Recovery(),
		mw.Logger(),
		middleware.CORS(middleware.DefaultCORSConfig(srv.allowedOrigins...)),
		mw.Actor(),
	)

	// Health check endpoints
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", gin.WrapH(promhttp.HandlerFor(srv.registry, promhttp.HandlerOpts{Registry: srv.registry})))

	// Dashboard stream
	dashboardHTTP.New(srv.logger, srv.dashboardUC, dashboardHTTP.Config{
		ReadBufferSize:  srv.wsCfg.ReadBufferSize,
		WriteBufferSize: srv.wsCfg.WriteBufferSize,
		AllowedOrigins:  srv.allowedOrigins,
	}).RegisterRoutes(srv.gin)

	// API routes
	api := srv.gin.Group(Api)
	complaintHTTP.New(srv.logger, complaints, engine, auditor, srv.discord).RegisterRoutes(api)
	monitorHTTP.New(srv.logger, srv.monitorUC, srv.discord).RegisterRoutes(api)
	ruleHTTP.New(srv.logger, ruleSet, srv.discord).RegisterRoutes(api)
	hierarchyHTTP.New(directory).RegisterRoutes(api)
	notificationHTTP.New(srv.logger, notifier, srv.discord).RegisterRoutes(api)

	srv.logger.Infof(ctx, "internal.httpserver.mapHandlers: %d rules, %d groups, redis=%t",
		len(rules), len(groups), srv.redis != nil)
	return nil
}
