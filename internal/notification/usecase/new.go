package usecase

import (
	"sync"
	"time"

	"escalation-srv/internal/notification"
	"escalation-srv/pkg/log"
)

// DashboardChannel is the pub/sub channel live dashboard events go to.
const DashboardChannel = "dashboard:escalation"

type subscriber struct {
	filter notification.Filter
	fn     func(notification.Notification)
}

type implUseCase struct {
	logger    log.Logger
	publisher notification.Publisher
	senders   map[notification.Channel]notification.Sender
	clock     func() time.Time

	mu            sync.RWMutex
	notifications []notification.Notification
	subscribers   map[string]subscriber
}

// New builds the center and dispatcher. The dashboard channel is served by
// the center itself and, when publisher is set, mirrored to pub/sub. Other
// channels without a sender are reported as skipped.
func New(logger log.Logger, publisher notification.Publisher, senders map[notification.Channel]notification.Sender) notification.UseCase {
	uc := &implUseCase{
		logger:      logger,
		publisher:   publisher,
		senders:     make(map[notification.Channel]notification.Sender, len(senders)),
		clock:       time.Now,
		subscribers: make(map[string]subscriber),
	}
	for ch, s := range senders {
		if s != nil {
			uc.senders[ch] = s
		}
	}
	return uc
}
