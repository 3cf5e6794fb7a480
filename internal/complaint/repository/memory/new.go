package memory

import (
	"sync"

	"escalation-srv/internal/complaint/repository"
	"escalation-srv/internal/model"
	pkgLog "escalation-srv/pkg/log"
)

type implRepository struct {
	l pkgLog.Logger

	mu    sync.RWMutex
	items map[string]*model.Complaint
	order []string

	locks keyedMutex
}

var _ repository.Repository = &implRepository{}

// New returns an in-memory complaint store. Complaints live as long as the
// process.
func New(l pkgLog.Logger) *implRepository {
	return &implRepository{
		l:     l,
		items: make(map[string]*model.Complaint),
	}
}
