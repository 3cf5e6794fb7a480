package usecase

import (
	"sync"
	"time"

	"escalation-srv/internal/audit"
	pkgLog "escalation-srv/pkg/log"
)

type implUseCase struct {
	l     pkgLog.Logger
	clock func() time.Time

	mu      sync.RWMutex
	entries []audit.Entry
}

func New(l pkgLog.Logger) audit.UseCase {
	return &implUseCase{
		l:     l,
		clock: time.Now,
	}
}
