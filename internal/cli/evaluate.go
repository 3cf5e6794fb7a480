package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"escalation-srv/internal/model"
)

type evaluation struct {
	ComplaintID  string         `yaml:"complaint_id"`
	Priority     model.Priority `yaml:"priority"`
	Status       model.Status   `yaml:"status"`
	Level        int            `yaml:"level"`
	HoursElapsed float64        `yaml:"hours_elapsed"`
	Escalate     bool           `yaml:"escalate"`
	NewLevel     int            `yaml:"new_level,omitempty"`
	RuleID       string         `yaml:"rule_id,omitempty"`
	Reason       string         `yaml:"reason,omitempty"`
	NotifyRoles  []string       `yaml:"notify_roles,omitempty"`
	Error        string         `yaml:"error,omitempty"`
}

func evaluateCmd(o *options) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "evaluate [complaint-id...]",
		Short: "Evaluate fixture complaints against the rule set",
		Long: `Evaluate every complaint in the fixture, or only the given ids, and show
which rule fires and the level it escalates to. Nothing is committed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := o.load()
			if err != nil {
				return err
			}

			complaints := e.fixture.Complaints
			if len(args) > 0 {
				complaints = make([]model.Complaint, 0, len(args))
				for _, id := range args {
					c, err := e.fixture.complaint(id)
					if err != nil {
						return err
					}
					complaints = append(complaints, c)
				}
			}

			results := make([]evaluation, 0, len(complaints))
			for _, c := range complaints {
				r := evaluation{
					ComplaintID: c.ID,
					Priority:    c.Priority,
					Status:      c.Status,
					Level:       c.EscalationLevel,
				}
				d, err := e.engine.Evaluate(c, e.now)
				if err != nil {
					r.Error = err.Error()
				} else {
					r.HoursElapsed = d.HoursElapsed
					r.Escalate = d.ShouldEscalate
					r.NewLevel = d.NewLevel
					r.RuleID = d.RuleID
					r.Reason = d.Reason
					r.NotifyRoles = d.NotifyRoles
				}
				results = append(results, r)
			}

			switch output {
			case "yaml":
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				defer enc.Close()
				return enc.Encode(results)
			case "table":
				printEvaluations(cmd.OutOrStdout(), results)
				return nil
			default:
				return fmt.Errorf("--output must be table or yaml")
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format: table or yaml")
	return cmd
}

func printEvaluations(out io.Writer, results []evaluation) {
	if len(results) == 0 {
		fmt.Fprintln(out, "No complaints to evaluate.")
		return
	}

	escalate, failed := 0, 0
	w := newTable(out)
	fmt.Fprintln(w, "ID\tPRIORITY\tSTATUS\tLEVEL\tAGE(H)\tRULE\tDECISION")
	fmt.Fprintln(w, "--\t--------\t------\t-----\t------\t----\t--------")
	for _, r := range results {
		var decision string
		switch {
		case r.Error != "":
			failed++
			decision = color.New(color.FgRed).Sprint("invalid: " + r.Error)
		case r.Escalate:
			escalate++
			decision = color.New(color.FgHiRed).Sprintf("ESCALATE -> L%d", r.NewLevel)
		default:
			decision = color.New(color.FgHiBlack).Sprint("hold")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.1f\t%s\t%s\n",
			r.ComplaintID,
			colorPriority(r.Priority, 8),
			dash(string(r.Status)),
			r.Level,
			r.HoursElapsed,
			dash(r.RuleID),
			decision,
		)
	}
	w.Flush()

	fmt.Fprintf(out, "\n%d complaints, %d to escalate, %d invalid\n", len(results), escalate, failed)
}
