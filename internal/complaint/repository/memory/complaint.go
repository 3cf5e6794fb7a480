package memory

import (
	"context"
	"fmt"
	"slices"

	"escalation-srv/internal/complaint/repository"
	"escalation-srv/internal/model"
)

func (r *implRepository) Create(ctx context.Context, opts repository.CreateOptions) (model.Complaint, error) {
	c := opts.Complaint.Clone()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[c.ID]; ok {
		r.l.Warnf(ctx, "internal.complaint.repository.memory.Create: duplicate id %s", c.ID)
		return model.Complaint{}, repository.ErrAlreadyExists
	}
	r.items[c.ID] = &c
	r.order = append(r.order, c.ID)

	return c.Clone(), nil
}

func (r *implRepository) Detail(ctx context.Context, id string) (model.Complaint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.items[id]
	if !ok {
		return model.Complaint{}, repository.ErrNotFound
	}
	return c.Clone(), nil
}

// List returns matching complaints in submission order.
func (r *implRepository) List(ctx context.Context, opts repository.ListOptions) ([]model.Complaint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]model.Complaint, 0, len(r.order))
	for _, id := range r.order {
		c := r.items[id]
		if !matches(*c, opts.Filter) {
			continue
		}
		res = append(res, c.Clone())
	}
	return res, nil
}

func (r *implRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}

func (r *implRepository) Escalate(ctx context.Context, opts repository.EscalateOptions) (model.Complaint, error) {
	unlock := r.locks.Lock(opts.ID)
	defer unlock()

	r.mu.RLock()
	stored, ok := r.items[opts.ID]
	var current model.Complaint
	if ok {
		current = stored.Clone()
	}
	r.mu.RUnlock()

	if !ok {
		return model.Complaint{}, repository.ErrNotFound
	}
	if current.EscalationLevel != opts.ExpectedLevel {
		return current, fmt.Errorf("%w: expected %d, found %d", repository.ErrLevelMismatch, opts.ExpectedLevel, current.EscalationLevel)
	}
	if opts.NewLevel <= current.EscalationLevel {
		return current, fmt.Errorf("%w: %d <= %d", repository.ErrNotHigher, opts.NewLevel, current.EscalationLevel)
	}

	current.EscalationLevel = opts.NewLevel
	current.Status = opts.Status
	if opts.AssignedTo != "" {
		current.AssignedTo = opts.AssignedTo
	}
	current.History = append(current.History, opts.History)

	r.mu.Lock()
	r.items[opts.ID] = &current
	r.mu.Unlock()

	r.l.Infof(ctx, "internal.complaint.repository.memory.Escalate: %s level %d -> %d", opts.ID, opts.ExpectedLevel, opts.NewLevel)
	return current.Clone(), nil
}

func matches(c model.Complaint, f repository.Filter) bool {
	if len(f.IDs) > 0 && !slices.Contains(f.IDs, c.ID) {
		return false
	}
	if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, c.Status) {
		return false
	}
	if len(f.Priorities) > 0 && !slices.Contains(f.Priorities, c.Priority) {
		return false
	}
	if len(f.Categories) > 0 && !slices.Contains(f.Categories, c.Category) {
		return false
	}
	return true
}
