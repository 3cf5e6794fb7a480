package http

import (
	"github.com/gin-gonic/gin"

	"escalation-srv/internal/rule"
	"escalation-srv/pkg/discord"
	"escalation-srv/pkg/log"
)

// Handler edits the live rule set. Changes apply from the next evaluation.
type Handler struct {
	rules   *rule.Set
	l       log.Logger
	discord discord.IDiscord
}

func New(l log.Logger, rules *rule.Set, d discord.IDiscord) *Handler {
	return &Handler{rules: rules, l: l, discord: d}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	rules := r.Group("/rules")
	{
		rules.GET("", h.List)
		rules.GET("/:id", h.Detail)
		rules.POST("", h.Create)
		rules.PUT("/:id", h.Update)
		rules.DELETE("/:id", h.Delete)
	}
}
