package discord

import "time"

const (
	defaultWebhookBaseURL = "https://discord.com/api/webhooks"

	ColorBlue   = 3447003
	ColorGreen  = 3066993
	ColorYellow = 16776960
	ColorRed    = 15158332
	ColorOrange = 15105570
	ColorGray   = 9807270

	ColorInfo    = ColorBlue
	ColorSuccess = ColorGreen
	ColorWarning = ColorYellow
	ColorError   = ColorRed

	MaxMessageLength = 2000
	MaxEmbedLength   = 6000

	MaxTitleLen       = 256
	MaxDescriptionLen = 4096
	MaxFieldValueLen  = 1024
	ReportBugDescLen  = 4096
)

const (
	DefaultTimeout    = 10 * time.Second
	DefaultRetryCount = 3
	DefaultRetryDelay = 1 * time.Second
)

const (
	DefaultUsername = "Escalation Bot"
	UserAgent       = "Escalation-Bot/1.0"
	ReportBugTitle  = "Escalation Service Error Report"
)
