package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"escalation-srv/internal/middleware"
	"escalation-srv/pkg/response"
)

func (h *Handler) Alerts(c *gin.Context) {
	alerts := h.uc.Alerts(c.Request.Context())
	response.OK(c, alertsResp{Alerts: alerts, Total: len(alerts)})
}

func (h *Handler) Dismiss(c *gin.Context) {
	id := c.Param("complaint_id")
	if err := h.uc.Dismiss(c.Request.Context(), id); err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}
	response.OK(c, gin.H{"complaint_id": id, "dismissed": true})
}

// Escalate commits an escalation. A lost race answers 200 with committed=false.
func (h *Handler) Escalate(c *gin.Context) {
	ctx := c.Request.Context()

	var req escalateReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.l.Warnf(ctx, "internal.monitor.delivery.http.Escalate.ShouldBindJSON: %v", err)
		response.Error(c, errWrongBody, h.discord)
		return
	}

	out, err := h.uc.Escalate(ctx, req.toInput(c.Param("complaint_id"), middleware.GetActor(c)))
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}
	response.OK(c, out)
}

func (h *Handler) Status(c *gin.Context) {
	response.OK(c, newStatusResp(h.uc.Stats(c.Request.Context())))
}

func (h *Handler) Start(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.uc.Start(ctx); err != nil {
		response.Error(c, err, h.discord)
		return
	}
	response.OK(c, newStatusResp(h.uc.Stats(ctx)))
}

func (h *Handler) Stop(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.uc.Stop(ctx); err != nil {
		response.Error(c, err, h.discord)
		return
	}
	response.OK(c, newStatusResp(h.uc.Stats(ctx)))
}

// Run executes one cycle now, whether or not the schedule is running.
func (h *Handler) Run(c *gin.Context) {
	res, err := h.uc.Refresh(c.Request.Context())
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}
	response.OK(c, res)
}
