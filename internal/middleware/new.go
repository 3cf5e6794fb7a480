package middleware

import (
	"escalation-srv/pkg/discord"
	"escalation-srv/pkg/log"
)

type Middleware struct {
	l       log.Logger
	discord discord.IDiscord
}

// New builds the shared middleware set. discord may be nil.
func New(l log.Logger, d discord.IDiscord) Middleware {
	return Middleware{l: l, discord: d}
}
