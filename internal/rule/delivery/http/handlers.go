package http

import (
	"github.com/gin-gonic/gin"

	"escalation-srv/internal/model"
	"escalation-srv/pkg/response"
)

type listResp struct {
	Rules []model.EscalationRule `json:"rules"`
	Total int                    `json:"total"`
}

// List returns rules in evaluation order.
func (h *Handler) List(c *gin.Context) {
	rules := h.rules.All()
	response.OK(c, listResp{Rules: rules, Total: len(rules)})
}

func (h *Handler) Detail(c *gin.Context) {
	r, err := h.rules.Get(c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}
	response.OK(c, r)
}

func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req model.EscalationRule
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.rule.delivery.http.Create.ShouldBindJSON: %v", err)
		response.Error(c, errWrongBody, h.discord)
		return
	}
	if err := h.rules.Add(req); err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	h.l.Infof(ctx, "internal.rule.delivery.http.Create: rule %s added", req.ID)
	response.Created(c, req)
}

func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	var req model.EscalationRule
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.rule.delivery.http.Update.ShouldBindJSON: %v", err)
		response.Error(c, errWrongBody, h.discord)
		return
	}
	if err := h.rules.Update(id, req); err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	updated, err := h.rules.Get(id)
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}
	h.l.Infof(ctx, "internal.rule.delivery.http.Update: rule %s updated", id)
	response.OK(c, updated)
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.rules.Remove(id); err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	h.l.Infof(c.Request.Context(), "internal.rule.delivery.http.Delete: rule %s removed", id)
	response.OK(c, gin.H{"id": id, "deleted": true})
}
