package discord

import "errors"

var (
	errWebhookRequired = errors.New("discord: webhook URL is required")
	errInvalidWebhook  = errors.New("discord: webhook URL must be <base>/{id}/{token}")
	ErrMessageTooLong  = errors.New("discord: message too long")
	ErrEmbedTooLong    = errors.New("discord: embed too long")
)
