package complaint

import "errors"

var (
	ErrComplaintNotFound = errors.New("complaint not found")
	ErrComplaintExists   = errors.New("complaint already exists")
	ErrFieldRequired     = errors.New("field required")
	ErrInvalidPriority   = errors.New("invalid priority")
	ErrInvalidLevel      = errors.New("invalid escalation level")
	// ErrAlreadyEscalated means another commit changed the complaint's level
	// first. Callers treat it as a no-op.
	ErrAlreadyEscalated = errors.New("complaint already escalated")
)
