package http

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	esc := r.Group("/escalation")
	{
		esc.GET("/alerts", h.Alerts)
		esc.POST("/alerts/:complaint_id/dismiss", h.Dismiss)
		esc.POST("/complaints/:complaint_id/escalate", h.Escalate)

		esc.GET("/monitor", h.Status)
		esc.POST("/monitor/start", h.Start)
		esc.POST("/monitor/stop", h.Stop)
		esc.POST("/monitor/run", h.Run)
	}
}
