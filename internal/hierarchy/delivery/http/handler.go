package http

import (
	"github.com/gin-gonic/gin"

	"escalation-srv/internal/hierarchy"
	"escalation-srv/internal/model"
	"escalation-srv/pkg/response"
)

type Handler struct {
	directory hierarchy.Directory
}

func New(directory hierarchy.Directory) *Handler {
	return &Handler{directory: directory}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/hierarchy", h.List)
}

type levelResp struct {
	Level int                    `json:"level"`
	Info  hierarchy.LevelInfo    `json:"info"`
	Group model.StakeholderGroup `json:"group"`
}

type listResp struct {
	Levels   []levelResp `json:"levels"`
	MaxLevel int         `json:"max_level"`
}

// List returns every configured group with its level's display info.
func (h *Handler) List(c *gin.Context) {
	groups := h.directory.Groups()
	out := listResp{Levels: make([]levelResp, 0, len(groups)), MaxLevel: h.directory.MaxLevel()}
	for _, g := range groups {
		out.Levels = append(out.Levels, levelResp{Level: g.Level, Info: hierarchy.Level(g.Level), Group: g})
	}
	response.OK(c, out)
}
