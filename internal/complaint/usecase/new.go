package usecase

import (
	"sync"
	"time"

	"escalation-srv/internal/complaint"
	"escalation-srv/internal/complaint/repository"
	pkgLog "escalation-srv/pkg/log"
)

type usecase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	clock func() time.Time

	mu        sync.RWMutex
	listeners []complaint.Listener
}

func New(l pkgLog.Logger, repo repository.Repository) complaint.UseCase {
	return &usecase{
		l:     l,
		repo:  repo,
		clock: time.Now,
	}
}

func (uc *usecase) AddListener(l complaint.Listener) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.listeners = append(uc.listeners, l)
}

func (uc *usecase) snapshotListeners() []complaint.Listener {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	out := make([]complaint.Listener, len(uc.listeners))
	copy(out, uc.listeners)
	return out
}
