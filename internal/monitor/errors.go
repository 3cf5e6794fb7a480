package monitor

import "errors"

var (
	ErrAlertNotFound  = errors.New("alert not found")
	ErrInvalidLevel   = errors.New("invalid target level")
	ErrInvalidTrigger = errors.New("invalid triggered_by")
	ErrFieldRequired  = errors.New("field required")
)
