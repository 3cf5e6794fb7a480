package usecase

import (
	"context"
	"time"

	"escalation-srv/internal/model"
)

func (uc *implUseCase) Start(ctx context.Context) error {
	uc.loopMu.Lock()
	defer uc.loopMu.Unlock()

	if uc.cancel != nil {
		return nil
	}

	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	done := make(chan struct{})
	uc.cancel = cancel
	uc.done = done
	uc.setMonitoring(true)

	if _, err := uc.Refresh(loopCtx); err != nil {
		uc.logger.Errorf(ctx, "internal.monitor.usecase.Start.Refresh: %v", err)
	}

	go uc.loop(loopCtx, done)

	uc.logger.Infof(ctx, "internal.monitor.usecase.Start: monitoring every %s", uc.cfg.Interval)
	return nil
}

func (uc *implUseCase) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(uc.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := uc.Refresh(ctx); err != nil && ctx.Err() == nil {
				uc.logger.Errorf(ctx, "internal.monitor.usecase.loop.Refresh: %v", err)
			}
		}
	}
}

func (uc *implUseCase) Stop(ctx context.Context) error {
	uc.loopMu.Lock()
	defer uc.loopMu.Unlock()

	if uc.cancel == nil {
		return nil
	}

	done := uc.done
	uc.cancel()
	uc.cancel = nil
	uc.done = nil
	uc.setMonitoring(false)

	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}

	uc.logger.Infof(ctx, "internal.monitor.usecase.Stop: monitoring stopped")
	return nil
}

func (uc *implUseCase) IsMonitoring() bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.stats.Monitoring
}

func (uc *implUseCase) setMonitoring(on bool) {
	uc.mu.Lock()
	uc.stats.Monitoring = on
	uc.mu.Unlock()

	if on {
		uc.metrics.monitoring.Set(1)
	} else {
		uc.metrics.monitoring.Set(0)
	}
}

func (uc *implUseCase) ComplaintSubmitted(ctx context.Context, c model.Complaint) {
	if !uc.cfg.AutoStart || uc.IsMonitoring() {
		return
	}
	if err := uc.Start(ctx); err != nil {
		uc.logger.Errorf(ctx, "internal.monitor.usecase.ComplaintSubmitted.Start: %v", err)
	}
}

func (uc *implUseCase) Shutdown(ctx context.Context) error {
	if err := uc.Stop(ctx); err != nil {
		return err
	}

	waited := make(chan struct{})
	go func() {
		uc.notifyWG.Wait()
		close(waited)
	}()
	select {
	case <-waited:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
