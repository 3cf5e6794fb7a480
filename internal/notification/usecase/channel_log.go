package usecase

import (
	"context"
	"strings"

	"escalation-srv/internal/notification"
	"escalation-srv/pkg/log"
)

type logSender struct {
	logger log.Logger
}

// NewLogSender returns a sender that records deliveries in the service log.
// Email and SMS use it until a real gateway is configured.
func NewLogSender(logger log.Logger) notification.Sender {
	return &logSender{logger: logger}
}

func (s *logSender) Send(ctx context.Context, msg notification.Message) error {
	s.logger.Infof(ctx, "internal.notification.usecase.logSender.Send: channel=%s to=[%s] subject=%q",
		msg.Channel, strings.Join(msg.Recipients, ", "), msg.Subject)
	return nil
}
