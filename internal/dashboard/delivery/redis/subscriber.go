package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"escalation-srv/internal/dashboard"
)

func (s *subscriber) Start(ctx context.Context) error {
	s.pubsub = s.redis.PSubscribe(ctx, Pattern)
	if _, err := s.pubsub.Receive(ctx); err != nil {
		_ = s.pubsub.Close()
		return fmt.Errorf("subscribe %s: %w", Pattern, err)
	}

	s.wg.Add(1)
	go s.listen(context.WithoutCancel(ctx))

	s.logger.Infof(ctx, "internal.dashboard.delivery.redis.Start: subscribed to %s", Pattern)
	return nil
}

func (s *subscriber) listen(ctx context.Context) {
	defer s.wg.Done()

	ch := s.pubsub.Channel()
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				s.logger.Warnf(ctx, "internal.dashboard.delivery.redis.listen: pubsub channel closed")
				return
			}
			s.handleMessage(ctx, msg)
		case <-s.quit:
			return
		}
	}
}

func (s *subscriber) handleMessage(ctx context.Context, msg *goredis.Message) {
	err := s.uc.HandleEvent(ctx, dashboard.EventInput{
		Channel: msg.Channel,
		Payload: []byte(msg.Payload),
	})
	if err != nil {
		s.logger.Warnf(ctx, "internal.dashboard.delivery.redis.handleMessage: channel=%s err=%v", msg.Channel, err)
	}
}

func (s *subscriber) Shutdown(ctx context.Context) error {
	s.once.Do(func() { close(s.quit) })
	if s.pubsub != nil {
		if err := s.pubsub.Close(); err != nil {
			s.logger.Errorf(ctx, "internal.dashboard.delivery.redis.Shutdown: %v", err)
		}
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}

	s.logger.Infof(ctx, "internal.dashboard.delivery.redis.Shutdown: stopped")
	return nil
}
