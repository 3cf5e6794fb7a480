package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// ActorHeader names the caller on audited mutations.
const ActorHeader = "X-Actor"

const actorKey = "actor"

// Actor stores the X-Actor header for handlers. Missing header leaves the
// use case default in place.
func (m Middleware) Actor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if actor := strings.TrimSpace(c.GetHeader(ActorHeader)); actor != "" {
			c.Set(actorKey, actor)
		}
		c.Next()
	}
}

// GetActor returns the actor stored by Actor, or "".
func GetActor(c *gin.Context) string {
	return c.GetString(actorKey)
}

// Logger writes one line per request.
func (m Middleware) Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		latency := time.Since(start)
		switch {
		case status >= 500:
			m.l.Errorf(ctx, "%s %s | %d | %s", c.Request.Method, c.Request.URL.Path, status, latency)
		case status >= 400:
			m.l.Warnf(ctx, "%s %s | %d | %s", c.Request.Method, c.Request.URL.Path, status, latency)
		default:
			m.l.Debugf(ctx, "%s %s | %d | %s", c.Request.Method, c.Request.URL.Path, status, latency)
		}
	}
}
