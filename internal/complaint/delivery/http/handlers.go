package http

import (
	"github.com/gin-gonic/gin"

	"escalation-srv/pkg/response"
)

func (h *Handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	var req submitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.complaint.delivery.http.Submit.ShouldBindJSON: %v", err)
		response.Error(c, errWrongBody, h.discord)
		return
	}
	if coll := req.validate(); coll.HasError() {
		h.l.Warnf(ctx, "internal.complaint.delivery.http.Submit.validate: %v", coll)
		response.Error(c, coll, h.discord)
		return
	}

	out, err := h.uc.Submit(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.Created(c, out)
}

func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "internal.complaint.delivery.http.List.ShouldBindQuery: %v", err)
		response.Error(c, errWrongQuery, h.discord)
		return
	}

	out, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newListResp(out, req.Query))
}

func (h *Handler) Detail(c *gin.Context) {
	out, err := h.uc.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, out)
}

// Route previews assignment for the complaint's next level without committing.
func (h *Handler) Route(c *gin.Context) {
	ctx := c.Request.Context()

	cpl, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.engine.Route(ctx, cpl))
}

func (h *Handler) Evaluate(c *gin.Context) {
	cpl, err := h.uc.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	d, err := h.engine.Evaluate(cpl, h.clock())
	if err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, d)
}

func (h *Handler) Audit(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	if _, err := h.uc.Detail(ctx, id); err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.audit.List(ctx, id))
}
