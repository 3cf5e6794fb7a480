package dashboard

import (
	"time"

	"github.com/gorilla/websocket"

	"escalation-srv/internal/model"
)

type FrameType string

const (
	FrameSnapshot     FrameType = "snapshot"
	FrameNotification FrameType = "notification"
	FrameEscalation   FrameType = "escalation"
)

type RegisterInput struct {
	ClientID string
	// Roles limits escalation frames to matching roles. Empty receives all.
	Roles []string
	Conn  *websocket.Conn
}

type EventInput struct {
	Channel string
	Payload []byte
}

type Stats struct {
	Connections int   `json:"connections"`
	Clients     int   `json:"clients"`
	Sent        int64 `json:"sent"`
	Dropped     int64 `json:"dropped"`
}

// Frame is the JSON document written to a client.
type Frame struct {
	Type      FrameType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

type SnapshotPayload struct {
	Alerts []model.EscalationAlert `json:"alerts"`
}
