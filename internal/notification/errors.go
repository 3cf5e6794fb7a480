package notification

import "errors"

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNoRecipients         = errors.New("no recipients")
	ErrDeliveryFailed       = errors.New("delivery failed")
)
