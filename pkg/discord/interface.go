package discord

import (
	"context"
	"strings"

	"escalation-srv/pkg/log"
)

// IDiscord posts messages to a chat webhook. Slack and Teams channels of a
// stakeholder group are rendered through it as embeds.
type IDiscord interface {
	SendMessage(ctx context.Context, content string) error
	SendEmbed(ctx context.Context, options MessageOptions) error
	SendError(ctx context.Context, title, description string, err error) error
	ReportBug(ctx context.Context, message string) error
	GetWebhookURL() string
	Close() error
}

func parseWebhookURL(base, webhookURL string) (id, token string, err error) {
	webhookURL = strings.TrimSpace(webhookURL)
	prefix := strings.TrimSuffix(base, "/") + "/"
	if !strings.HasPrefix(webhookURL, prefix) {
		return "", "", errInvalidWebhook
	}
	parts := strings.SplitN(strings.TrimPrefix(webhookURL, prefix), "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", errInvalidWebhook
	}
	return parts[0], parts[1], nil
}

// New builds a client for a https://discord.com/api/webhooks/{id}/{token} URL.
func New(l log.Logger, webhookURL string) (IDiscord, error) {
	return NewWithConfig(l, webhookURL, DefaultConfig())
}

func NewWithConfig(l log.Logger, webhookURL string, cfg Config) (IDiscord, error) {
	if webhookURL == "" {
		return nil, errWebhookRequired
	}
	if cfg.WebhookBaseURL == "" {
		cfg.WebhookBaseURL = defaultWebhookBaseURL
	}
	id, token, err := parseWebhookURL(cfg.WebhookBaseURL, webhookURL)
	if err != nil {
		return nil, err
	}
	return &discordImpl{
		l:       l,
		webhook: webhookInfo{id: id, token: token},
		config:  cfg,
		client:  newHTTPClient(cfg.Timeout),
	}, nil
}
