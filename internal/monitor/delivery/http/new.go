package http

import (
	"escalation-srv/internal/monitor"
	"escalation-srv/pkg/discord"
	"escalation-srv/pkg/log"
)

type Handler struct {
	uc      monitor.UseCase
	l       log.Logger
	discord discord.IDiscord
}

func New(l log.Logger, uc monitor.UseCase, d discord.IDiscord) *Handler {
	return &Handler{uc: uc, l: l, discord: d}
}
