package http

import (
	"github.com/gin-gonic/gin"

	"escalation-srv/internal/notification"
	"escalation-srv/pkg/discord"
	"escalation-srv/pkg/log"
)

type Handler struct {
	uc      notification.UseCase
	l       log.Logger
	discord discord.IDiscord
}

func New(l log.Logger, uc notification.UseCase, d discord.IDiscord) *Handler {
	return &Handler{uc: uc, l: l, discord: d}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	n := r.Group("/notifications")
	{
		n.GET("", h.List)
		n.POST("/:id/read", h.MarkRead)
		n.DELETE("", h.Clear)
	}
}
