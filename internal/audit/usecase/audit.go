package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"maps"
	"time"

	"github.com/google/uuid"

	"escalation-srv/internal/audit"
	"escalation-srv/internal/model"
)

func (uc *implUseCase) Record(ctx context.Context, complaintID, action, actor string, details map[string]any) audit.Entry {
	e := audit.Entry{
		ID:          uuid.NewString(),
		ComplaintID: complaintID,
		Timestamp:   uc.clock().UTC(),
		Action:      action,
		PerformedBy: actor,
		Details:     maps.Clone(details),
	}
	if e.Details == nil {
		e.Details = map[string]any{}
	}
	e.Hash = hashEntry(e)

	uc.mu.Lock()
	uc.entries = append(uc.entries, e)
	uc.mu.Unlock()

	uc.l.Debugf(ctx, "internal.audit.usecase.Record: %s %s by %s", complaintID, action, actor)
	return e
}

func (uc *implUseCase) List(ctx context.Context, complaintID string) []audit.Entry {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	res := make([]audit.Entry, 0, len(uc.entries))
	for _, e := range uc.entries {
		if complaintID != "" && e.ComplaintID != complaintID {
			continue
		}
		res = append(res, e)
	}
	return res
}

func (uc *implUseCase) Verify(e audit.Entry) bool {
	return e.Hash != "" && hashEntry(e) == e.Hash
}

type hashPayload struct {
	ComplaintID string         `json:"complaintId"`
	Action      string         `json:"action"`
	PerformedBy string         `json:"performedBy"`
	Details     map[string]any `json:"details"`
	Timestamp   string         `json:"timestamp"`
}

// hashEntry hashes the canonical JSON of the entry. encoding/json sorts map
// keys, which keeps the output stable.
func hashEntry(e audit.Entry) string {
	b, err := json.Marshal(hashPayload{
		ComplaintID: e.ComplaintID,
		Action:      e.Action,
		PerformedBy: e.PerformedBy,
		Details:     e.Details,
		Timestamp:   e.Timestamp.Format(time.RFC3339Nano),
	})
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

func (uc *implUseCase) ComplaintSubmitted(ctx context.Context, c model.Complaint) {
	uc.Record(ctx, c.ID, audit.ActionComplaintSubmitted, audit.ActorSystem, map[string]any{
		"priority": string(c.Priority),
		"category": c.Category,
	})
}
