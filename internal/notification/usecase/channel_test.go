package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"escalation-srv/internal/model"
	"escalation-srv/internal/notification"
	"escalation-srv/pkg/discord"
)

func testMessage(ch notification.Channel, recipients ...string) notification.Message {
	return notification.Message{
		Channel:    ch,
		Recipients: recipients,
		Subject:    "Complaint c1 escalated to level 2",
		Complaint:  model.Complaint{ID: "c1", Title: "Outage", Priority: model.PriorityHigh, Category: "technical"},
		GroupName:  "Department Managers",
		FromLevel:  0,
		ToLevel:    2,
		Reason:     "r",
		Timestamp:  time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC),
	}
}

func TestWebhookSender(t *testing.T) {
	var got webhookPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	s := NewWebhookSender(time.Second)
	require.NoError(t, s.Send(context.Background(), testMessage(notification.ChannelWebhook, srv.URL)))
	assert.Equal(t, "complaint.escalated", got.Event)
	assert.Equal(t, "c1", got.ComplaintID)
	assert.Equal(t, 2, got.ToLevel)
	assert.Equal(t, "Department Managers", got.Group)
}

func TestWebhookSenderBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	err := NewWebhookSender(time.Second).Send(context.Background(), testMessage(notification.ChannelWebhook, srv.URL))
	assert.ErrorIs(t, err, notification.ErrDeliveryFailed)
}

type mockDiscord struct {
	mock.Mock
}

func (m *mockDiscord) SendMessage(ctx context.Context, content string) error {
	return m.Called(ctx, content).Error(0)
}

func (m *mockDiscord) SendEmbed(ctx context.Context, options discord.MessageOptions) error {
	return m.Called(ctx, options).Error(0)
}

func (m *mockDiscord) SendError(ctx context.Context, title, description string, err error) error {
	return m.Called(ctx, title, description, err).Error(0)
}

func (m *mockDiscord) ReportBug(ctx context.Context, message string) error {
	return m.Called(ctx, message).Error(0)
}

func (m *mockDiscord) GetWebhookURL() string { return "" }

func (m *mockDiscord) Close() error { return nil }

func TestChatSender(t *testing.T) {
	d := &mockDiscord{}
	d.On("SendEmbed", mock.Anything, mock.MatchedBy(func(o discord.MessageOptions) bool {
		return o.Title == "#escalations Complaint c1 escalated to level 2" &&
			o.Type == discord.MessageTypeWarning &&
			o.Footer != nil && o.Footer.Text == "Escalation Service • Slack"
	})).Return(nil).Once()

	s := NewChatSender(d, "Slack")
	require.NoError(t, s.Send(context.Background(), testMessage(notification.ChannelSlack, "#escalations")))
	d.AssertExpectations(t)

	failing := &mockDiscord{}
	failing.On("SendEmbed", mock.Anything, mock.Anything).Return(errors.New("429"))
	err := NewChatSender(failing, "Teams").Send(context.Background(), testMessage(notification.ChannelTeams, "Ops"))
	assert.ErrorIs(t, err, notification.ErrDeliveryFailed)
}

func TestBuildField(t *testing.T) {
	f := buildField("Reason", "", false)
	assert.Equal(t, "N/A", f.Value)

	long := buildField("Reason", string(make([]byte, 2000)), false)
	assert.Len(t, long.Value, discord.MaxFieldValueLen)
}
