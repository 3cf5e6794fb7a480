package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"escalation-srv/internal/dashboard"
)

type connectReq struct {
	ClientID string `form:"client_id"`
	Roles    string `form:"roles"`
}

func (r connectReq) toInput() dashboard.RegisterInput {
	ip := dashboard.RegisterInput{ClientID: strings.TrimSpace(r.ClientID)}
	if ip.ClientID == "" {
		ip.ClientID = uuid.NewString()
	}
	for _, role := range strings.Split(r.Roles, ",") {
		if role = strings.TrimSpace(role); role != "" {
			ip.Roles = append(ip.Roles, role)
		}
	}
	return ip
}

// Connect upgrades to a websocket. The first frame is a snapshot of held
// alerts, then live notification and escalation frames follow.
func (h *Handler) Connect(c *gin.Context) {
	ctx := c.Request.Context()

	var req connectReq
	if err := c.ShouldBindQuery(&req); err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		h.l.Warnf(ctx, "internal.dashboard.delivery.http.Connect.Upgrade: %v", err)
		return
	}

	ip := req.toInput()
	ip.Conn = conn
	if err := h.uc.Register(ctx, ip); err != nil {
		if errors.Is(err, dashboard.ErrMaxConnectionsReached) {
			h.l.Warnf(ctx, "internal.dashboard.delivery.http.Connect.Register: %v", err)
			return
		}
		h.l.Errorf(ctx, "internal.dashboard.delivery.http.Connect.Register: %v", err)
	}
}
