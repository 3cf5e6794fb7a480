package http

import (
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"escalation-srv/internal/dashboard"
	"escalation-srv/pkg/log"
)

type Config struct {
	ReadBufferSize  int
	WriteBufferSize int
	// AllowedOrigins accepts exact origins and "*". Empty allows same-host,
	// localhost and private network origins only.
	AllowedOrigins []string
}

type Handler struct {
	uc       dashboard.UseCase
	l        log.Logger
	upgrader websocket.Upgrader
}

func New(l log.Logger, uc dashboard.UseCase, cfg Config) *Handler {
	return &Handler{
		uc: uc,
		l:  l,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			CheckOrigin:     checkOrigin(cfg.AllowedOrigins),
		},
	}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/ws", h.Connect)
}
