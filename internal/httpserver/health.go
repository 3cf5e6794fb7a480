package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"escalation-srv/pkg/errors"
	"escalation-srv/pkg/response"
)

const (
	serviceName    = "escalation-srv"
	serviceVersion = "1.0.0"

	redisDisabled  = "disabled"
	redisConnected = "connected"
)

func (srv *HTTPServer) redisState(c *gin.Context) (string, bool) {
	if srv.redis == nil {
		return redisDisabled, true
	}
	if err := srv.redis.Ping(c.Request.Context()); err != nil {
		srv.logger.Warnf(c.Request.Context(), "internal.httpserver.redisState.Ping: %v", err)
		return "unreachable", false
	}
	return redisConnected, true
}

// healthCheck reports the monitor and dashboard state along with Redis.
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	redis, ok := srv.redisState(c)
	if !ok {
		response.Error(c, errors.NewHTTPError(http.StatusServiceUnavailable, "Redis connection failed", http.StatusServiceUnavailable), nil)
		return
	}

	monitorStats := srv.monitorUC.Stats(ctx)
	hubStats := srv.dashboardUC.Stats(ctx)

	response.OK(c, gin.H{
		"status":                "healthy",
		"service":               serviceName,
		"version":               serviceVersion,
		"environment":           srv.environment,
		"redis":                 redis,
		"monitoring":            monitorStats.Monitoring,
		"alerts":                monitorStats.Alerts,
		"cycles":                monitorStats.Cycles,
		"dashboard_connections": hubStats.Connections,
		"dashboard_clients":     hubStats.Clients,
	})
}

func (srv *HTTPServer) readyCheck(c *gin.Context) {
	redis, ok := srv.redisState(c)
	if !ok {
		response.Error(c, errors.NewHTTPError(http.StatusServiceUnavailable, "Redis connection not available", http.StatusServiceUnavailable), nil)
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"service": serviceName,
		"version": serviceVersion,
		"redis":   redis,
	})
}

func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": serviceName,
		"version": serviceVersion,
	})
}
