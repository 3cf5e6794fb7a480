package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"escalation-srv/internal/notification"
)

const webhookUserAgent = "Escalation-Webhook/1.0"

type webhookPayload struct {
	Event       string    `json:"event"`
	ComplaintID string    `json:"complaint_id"`
	Title       string    `json:"title"`
	Priority    string    `json:"priority"`
	Category    string    `json:"category"`
	Group       string    `json:"group"`
	FromLevel   int       `json:"from_level"`
	ToLevel     int       `json:"to_level"`
	Reason      string    `json:"reason"`
	NotifyRoles []string  `json:"notify_roles,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

type webhookSender struct {
	client *http.Client
}

// NewWebhookSender POSTs a JSON payload to each recipient URL.
func NewWebhookSender(timeout time.Duration) notification.Sender {
	return &webhookSender{client: &http.Client{Timeout: timeout}}
}

func (s *webhookSender) Send(ctx context.Context, msg notification.Message) error {
	body, err := json.Marshal(webhookPayload{
		Event:       "complaint.escalated",
		ComplaintID: msg.Complaint.ID,
		Title:       msg.Complaint.Title,
		Priority:    string(msg.Complaint.Priority),
		Category:    msg.Complaint.Category,
		Group:       msg.GroupName,
		FromLevel:   msg.FromLevel,
		ToLevel:     msg.ToLevel,
		Reason:      msg.Reason,
		NotifyRoles: msg.NotifyRoles,
		Timestamp:   msg.Timestamp,
	})
	if err != nil {
		return err
	}

	for _, url := range msg.Recipients {
		if err := s.post(ctx, url, body); err != nil {
			return err
		}
	}
	return nil
}

func (s *webhookSender) post(ctx context.Context, url string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", notification.ErrDeliveryFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", webhookUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", notification.ErrDeliveryFailed, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: webhook returned status %d", notification.ErrDeliveryFailed, resp.StatusCode)
	}
	return nil
}
