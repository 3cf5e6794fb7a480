package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"escalation-srv/internal/complaint"
	"escalation-srv/internal/complaint/repository"
	"escalation-srv/internal/model"
)

func (uc *usecase) Submit(ctx context.Context, ip complaint.SubmitInput) (model.Complaint, error) {
	if err := validateSubmit(ip); err != nil {
		uc.l.Warnf(ctx, "internal.complaint.usecase.Submit.validateSubmit: %v", err)
		return model.Complaint{}, err
	}

	c := model.Complaint{
		ID:              ip.ID,
		Title:           strings.TrimSpace(ip.Title),
		Description:     ip.Description,
		Category:        strings.ToLower(strings.TrimSpace(ip.Category)),
		Priority:        ip.Priority,
		Status:          model.StatusNew,
		CreatedAt:       ip.CreatedAt,
		EscalationLevel: 0,
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = uc.clock()
	}

	created, err := uc.repo.Create(ctx, repository.CreateOptions{Complaint: c})
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return model.Complaint{}, complaint.ErrComplaintExists
		}
		uc.l.Errorf(ctx, "internal.complaint.usecase.Submit.Create: %v", err)
		return model.Complaint{}, err
	}

	for _, l := range uc.snapshotListeners() {
		l.ComplaintSubmitted(ctx, created)
	}

	return created, nil
}

func (uc *usecase) Detail(ctx context.Context, id string) (model.Complaint, error) {
	c, err := uc.repo.Detail(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Complaint{}, complaint.ErrComplaintNotFound
		}
		uc.l.Errorf(ctx, "internal.complaint.usecase.Detail.Detail: %v", err)
		return model.Complaint{}, err
	}
	return c, nil
}

func (uc *usecase) List(ctx context.Context, ip complaint.ListInput) ([]model.Complaint, error) {
	res, err := uc.repo.List(ctx, repository.ListOptions{
		Filter: repository.Filter{
			Statuses:   ip.Statuses,
			Priorities: ip.Priorities,
			Categories: ip.Categories,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.complaint.usecase.List.List: %v", err)
		return nil, err
	}
	return res, nil
}

func (uc *usecase) Commit(ctx context.Context, ip complaint.CommitInput) (complaint.CommitOutput, error) {
	if ip.ComplaintID == "" {
		return complaint.CommitOutput{}, fmt.Errorf("%w: complaint_id", complaint.ErrFieldRequired)
	}
	if ip.ToLevel <= 0 {
		return complaint.CommitOutput{}, complaint.ErrInvalidLevel
	}
	if ip.Status == "" {
		ip.Status = model.StatusEscalated
	}
	if ip.TriggeredBy == "" {
		ip.TriggeredBy = model.TriggeredBySystem
	}

	history := model.EscalationHistory{
		Timestamp:     uc.clock(),
		FromLevel:     ip.FromLevel,
		ToLevel:       ip.ToLevel,
		Reason:        ip.Reason,
		TriggeredBy:   ip.TriggeredBy,
		NotifiedUsers: ip.NotifiedUsers,
	}

	c, err := uc.repo.Escalate(ctx, repository.EscalateOptions{
		ID:            ip.ComplaintID,
		ExpectedLevel: ip.FromLevel,
		NewLevel:      ip.ToLevel,
		Status:        ip.Status,
		AssignedTo:    ip.AssignedTo,
		History:       history,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return complaint.CommitOutput{}, complaint.ErrComplaintNotFound
		case errors.Is(err, repository.ErrLevelMismatch), errors.Is(err, repository.ErrNotHigher):
			uc.l.Infof(ctx, "internal.complaint.usecase.Commit.Escalate: %s: %v", ip.ComplaintID, err)
			return complaint.CommitOutput{Complaint: c}, complaint.ErrAlreadyEscalated
		}
		uc.l.Errorf(ctx, "internal.complaint.usecase.Commit.Escalate: %v", err)
		return complaint.CommitOutput{}, err
	}

	return complaint.CommitOutput{Complaint: c, History: history}, nil
}

func validateSubmit(ip complaint.SubmitInput) error {
	if strings.TrimSpace(ip.Title) == "" {
		return fmt.Errorf("%w: title", complaint.ErrFieldRequired)
	}
	if strings.TrimSpace(ip.Category) == "" {
		return fmt.Errorf("%w: category", complaint.ErrFieldRequired)
	}
	if !ip.Priority.IsValid() {
		return fmt.Errorf("%w: %q", complaint.ErrInvalidPriority, ip.Priority)
	}
	return nil
}
