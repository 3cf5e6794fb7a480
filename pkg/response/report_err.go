package response

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"escalation-srv/pkg/discord"
)

// reportBug sends the report to Discord in the background.
func reportBug(c *gin.Context, d discord.IDiscord, message string) {
	if d == nil || message == "" {
		return
	}
	go func() {
		for _, msg := range splitMessage(message) {
			if err := d.ReportBug(context.Background(), msg); err != nil {
				// No request-scoped logger survives this goroutine.
				log.Printf("pkg.response.reportBug.ReportBug: %v\n", err)
			}
		}
	}()
}

func splitMessage(message string) []string {
	var chunks []string
	var current string
	for _, line := range strings.Split(message, "\n") {
		line += "\n"
		if len(current)+len(line) > DiscordMaxMessageLen {
			if current != "" {
				chunks = append(chunks, strings.TrimSuffix(current, "\n"))
				current = ""
			}
			for len(line) > DiscordMaxMessageLen {
				chunks = append(chunks, line[:DiscordMaxMessageLen])
				line = line[DiscordMaxMessageLen:]
			}
		}
		current += line
	}
	if current != "" {
		chunks = append(chunks, strings.TrimSuffix(current, "\n"))
	}
	return chunks
}

func buildReport(c *gin.Context, errString string, backtrace []string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "================ %s ================\n", reportTitle)
	fmt.Fprintf(&sb, "Route   : %s\n", c.Request.URL.String())
	fmt.Fprintf(&sb, "Method  : %s\n", c.Request.Method)
	sb.WriteString("----------------------------------------------------\n")

	if params := c.Request.URL.Query().Encode(); params != "" {
		fmt.Fprintf(&sb, "Params  : %s\n", params)
	}

	if c.Request.Body != nil {
		bodyBytes, err := io.ReadAll(c.Request.Body)
		if err == nil && len(bodyBytes) > 0 {
			c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
			sb.WriteString("Body    :\n")
			var pretty bytes.Buffer
			if err := json.Indent(&pretty, bodyBytes, "    ", "  "); err == nil {
				sb.WriteString(pretty.String() + "\n")
			} else {
				sb.WriteString("    " + string(bodyBytes) + "\n")
			}
			sb.WriteString("----------------------------------------------------\n")
		}
	}

	fmt.Fprintf(&sb, "Error   : %s\n", errString)
	if len(backtrace) > 0 {
		sb.WriteString("\nBacktrace:\n")
		for i, line := range backtrace {
			fmt.Fprintf(&sb, "[%d]: %s\n", i, line)
		}
	}
	return sb.String()
}
