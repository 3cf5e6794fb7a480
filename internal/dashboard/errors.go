package dashboard

import "errors"

var (
	ErrInvalidMessage        = errors.New("invalid dashboard message")
	ErrMissingConnection     = errors.New("missing websocket connection")
	ErrMaxConnectionsReached = errors.New("maximum connections reached")
	ErrHubClosed             = errors.New("dashboard hub closed")
)
