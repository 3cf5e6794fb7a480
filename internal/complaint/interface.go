package complaint

import (
	"context"

	"escalation-srv/internal/model"
)

// Listener is told about every successfully submitted complaint.
type Listener interface {
	ComplaintSubmitted(ctx context.Context, c model.Complaint)
}

//go:generate mockery --name UseCase
type UseCase interface {
	Submit(ctx context.Context, ip SubmitInput) (model.Complaint, error)
	Detail(ctx context.Context, id string) (model.Complaint, error)
	List(ctx context.Context, ip ListInput) ([]model.Complaint, error)
	// Commit applies an escalation. It is serialized per complaint id and
	// fails with ErrAlreadyEscalated when the complaint is no longer at
	// FromLevel.
	Commit(ctx context.Context, ip CommitInput) (CommitOutput, error)
	AddListener(l Listener)
}
