package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"escalation-srv/internal/model"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func priorityColor(p model.Priority) *color.Color {
	switch p {
	case model.PriorityCritical:
		return color.New(color.FgHiRed, color.Bold)
	case model.PriorityHigh:
		return color.New(color.FgYellow)
	case model.PriorityMedium:
		return color.New(color.FgCyan)
	default:
		return color.New(color.FgWhite)
	}
}

// colorPriority pads before coloring so escape codes don't skew tab stops.
func colorPriority(p model.Priority, width int) string {
	return priorityColor(p).Sprint(fmt.Sprintf("%-*s", width, strings.ToUpper(string(p))))
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func joinOrDash(items []string) string {
	return dash(strings.Join(items, ","))
}
