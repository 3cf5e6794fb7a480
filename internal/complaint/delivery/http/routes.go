package http

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	complaints := r.Group("/complaints")
	{
		complaints.POST("", h.Submit)
		complaints.GET("", h.List)
		complaints.GET("/:id", h.Detail)
		complaints.GET("/:id/route", h.Route)
		complaints.GET("/:id/evaluate", h.Evaluate)
		complaints.GET("/:id/audit", h.Audit)
	}
}
