package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"escalation-srv/internal/model"
)

func rulesCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List escalation rules in evaluation order",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := o.load()
			if err != nil {
				return err
			}

			rules := e.rules.All()
			w := newTable(cmd.OutOrStdout())
			fmt.Fprintln(w, "#\tID\tPRIORITY\tCATEGORY\tAFTER(H)\tSTATUS\tTO\tFLAGS")
			fmt.Fprintln(w, "-\t--\t--------\t--------\t--------\t------\t--\t-----")
			for i, r := range rules {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%g\t%s\tL%d\t%s\n",
					i+1,
					r.ID,
					priorities(r.Conditions.Priority),
					joinOrDash(r.Conditions.Category),
					r.Conditions.TimeThresholdHours,
					statuses(r.Conditions.StatusRequired),
					r.Actions.EscalateToLevel,
					ruleFlags(r),
				)
			}
			return w.Flush()
		},
	}
}

func priorities(ps []model.Priority) string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = string(p)
	}
	return joinOrDash(out)
}

func statuses(ss []model.Status) string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = string(s)
	}
	return joinOrDash(out)
}

func ruleFlags(r model.EscalationRule) string {
	var flags []string
	if r.Conditions.BusinessHoursOnly {
		flags = append(flags, "business-hours")
	}
	if r.Conditions.ExcludeWeekends {
		flags = append(flags, "weekdays")
	}
	if r.Actions.AutoAssign {
		flags = append(flags, "auto-assign")
	}
	if r.Actions.RequireApproval {
		flags = append(flags, "approval")
	}
	if r.Actions.UpdateStatus != "" {
		flags = append(flags, "status="+string(r.Actions.UpdateStatus))
	}
	return dash(strings.Join(flags, " "))
}
