package response

import (
	"escalation-srv/pkg/errors"
)

type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// ErrorMapping maps domain sentinels to their HTTP answer.
type ErrorMapping map[error]*errors.HTTPError
