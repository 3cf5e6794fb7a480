package http

import (
	"time"

	"escalation-srv/internal/audit"
	"escalation-srv/internal/complaint"
	"escalation-srv/internal/escalation"
	"escalation-srv/pkg/discord"
	"escalation-srv/pkg/log"
)

type Handler struct {
	uc      complaint.UseCase
	engine  escalation.UseCase
	audit   audit.UseCase
	l       log.Logger
	discord discord.IDiscord
	clock   func() time.Time
}

func New(l log.Logger, uc complaint.UseCase, engine escalation.UseCase, auditUC audit.UseCase, d discord.IDiscord) *Handler {
	return &Handler{
		uc:      uc,
		engine:  engine,
		audit:   auditUC,
		l:       l,
		discord: d,
		clock:   time.Now,
	}
}
