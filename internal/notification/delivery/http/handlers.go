package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"escalation-srv/internal/notification"
	pkgErrors "escalation-srv/pkg/errors"
	"escalation-srv/pkg/response"
)

var (
	errWrongQuery           = pkgErrors.NewHTTPError(150001, "Wrong query", http.StatusBadRequest)
	errNotificationNotFound = pkgErrors.NewHTTPError(150002, "Notification not found", http.StatusNotFound)
)

func (h *Handler) mapError(err error) error {
	if errors.Is(err, notification.ErrNotificationNotFound) {
		return errNotificationNotFound
	}
	panic(err)
}

type listReq struct {
	Limit      int  `form:"limit" binding:"min=0,max=100"`
	UnreadOnly bool `form:"unread"`
}

type listResp struct {
	Notifications []notification.Notification `json:"notifications"`
	Total         int                         `json:"total"`
}

// List returns the newest notifications first.
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "internal.notification.delivery.http.List.ShouldBindQuery: %v", err)
		response.Error(c, errWrongQuery, h.discord)
		return
	}

	out := h.uc.List(ctx, notification.ListInput{Limit: req.Limit, UnreadOnly: req.UnreadOnly})
	response.OK(c, listResp{Notifications: out, Total: len(out)})
}

func (h *Handler) MarkRead(c *gin.Context) {
	id := c.Param("id")
	if err := h.uc.MarkRead(c.Request.Context(), id); err != nil {
		response.Error(c, h.mapError(err), h.discord)
		return
	}
	response.OK(c, gin.H{"id": id, "read": true})
}

func (h *Handler) Clear(c *gin.Context) {
	h.uc.Clear(c.Request.Context())
	response.OK(c, gin.H{"cleared": true})
}
