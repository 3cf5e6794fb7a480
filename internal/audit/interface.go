package audit

import (
	"context"

	"escalation-srv/internal/model"
)

// UseCase is an append-only audit trail.
type UseCase interface {
	Record(ctx context.Context, complaintID, action, actor string, details map[string]any) Entry
	// List returns entries in insertion order. An empty id returns everything.
	List(ctx context.Context, complaintID string) []Entry
	Verify(entry Entry) bool
	// ComplaintSubmitted records a complaint_submitted entry.
	ComplaintSubmitted(ctx context.Context, c model.Complaint)
}
