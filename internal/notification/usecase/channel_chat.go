package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"escalation-srv/internal/model"
	"escalation-srv/internal/notification"
	"escalation-srv/pkg/discord"
)

type chatSender struct {
	discord discord.IDiscord
	service string
}

// NewChatSender renders Slack or Teams channel notifications as chat
// webhook embeds. service names the chat product in the embed footer.
func NewChatSender(d discord.IDiscord, service string) notification.Sender {
	return &chatSender{discord: d, service: service}
}

func (s *chatSender) Send(ctx context.Context, msg notification.Message) error {
	fields := []discord.EmbedField{
		buildField("Complaint", msg.Complaint.ID, true),
		buildField("Priority", strings.ToUpper(string(msg.Complaint.Priority)), true),
		buildField("Category", msg.Complaint.Category, true),
		buildField("From Level", strconv.Itoa(msg.FromLevel), true),
		buildField("To Level", strconv.Itoa(msg.ToLevel), true),
		buildField("Group", msg.GroupName, true),
		buildField("Reason", msg.Reason, false),
	}
	if len(msg.NotifyRoles) > 0 {
		fields = append(fields, buildField("Notify Roles", strings.Join(msg.NotifyRoles, ", "), false))
	}

	for _, channel := range msg.Recipients {
		err := s.discord.SendEmbed(ctx, discord.MessageOptions{
			Type:        messageTypeFor(msg.Complaint.Priority),
			Title:       fmt.Sprintf("%s %s", channel, msg.Subject),
			Description: msg.Complaint.Title,
			Fields:      fields,
			Timestamp:   msg.Timestamp,
			Footer: &discord.EmbedFooter{
				Text: fmt.Sprintf("Escalation Service • %s", s.service),
			},
		})
		if err != nil {
			return fmt.Errorf("%w: %s %s: %v", notification.ErrDeliveryFailed, s.service, channel, err)
		}
	}
	return nil
}

func messageTypeFor(p model.Priority) discord.MessageType {
	switch p {
	case model.PriorityCritical:
		return discord.MessageTypeError
	case model.PriorityHigh:
		return discord.MessageTypeWarning
	default:
		return discord.MessageTypeInfo
	}
}

func buildField(name, value string, inline bool) discord.EmbedField {
	if value == "" {
		value = "N/A"
	}
	return discord.EmbedField{
		Name:   name,
		Value:  discord.Truncate(value, discord.MaxFieldValueLen),
		Inline: inline,
	}
}
