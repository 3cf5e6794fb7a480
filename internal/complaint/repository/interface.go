package repository

import (
	"context"

	"escalation-srv/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	Create(ctx context.Context, opts CreateOptions) (model.Complaint, error)
	Detail(ctx context.Context, id string) (model.Complaint, error)
	List(ctx context.Context, opts ListOptions) ([]model.Complaint, error)
	Count(ctx context.Context) (int, error)
	// Escalate mutates level, status, assignee and history in one step.
	Escalate(ctx context.Context, opts EscalateOptions) (model.Complaint, error)
}
