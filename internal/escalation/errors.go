package escalation

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedComplaint = errors.New("malformed complaint")
	ErrNoEligibleAssignee = errors.New("no eligible assignee")
)

// EvaluationError reports a complaint that cannot be evaluated. It is
// scoped to one complaint; callers skip that complaint and carry on.
type EvaluationError struct {
	ComplaintID string
	Field       string
	Reason      string
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("complaint %q: %s: %s", e.ComplaintID, e.Field, e.Reason)
}

func (e *EvaluationError) Unwrap() error {
	return ErrMalformedComplaint
}
