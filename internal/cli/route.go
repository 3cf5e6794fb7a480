package cli

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"escalation-srv/internal/hierarchy"
)

func pathCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "path [complaint-id]",
		Short: "Show the levels a complaint could still escalate to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := o.load()
			if err != nil {
				return err
			}
			c, err := e.fixture.complaint(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Escalation path for %s (%s, level %d):\n",
				c.ID, colorPriority(c.Priority, 0), c.EscalationLevel)

			levels := e.engine.EscalationPath(c)
			if len(levels) == 0 {
				fmt.Fprintln(out, "  no further escalation possible")
				return nil
			}

			w := newTable(out)
			for _, level := range levels {
				group := color.New(color.FgHiBlack).Sprint("(no stakeholder group)")
				if g, err := e.engine.ResolveGroup(level); err == nil {
					group = g.Name
				} else if !errors.Is(err, hierarchy.ErrGroupNotFound) {
					return err
				}
				fmt.Fprintf(w, "  L%d\t%s\t%s\t~%dh\n",
					level, hierarchy.Level(level).Name, group, e.engine.EstimateResolutionTime(c, level))
			}
			return w.Flush()
		},
	}
}

func estimateCmd(o *options) *cobra.Command {
	var level int

	cmd := &cobra.Command{
		Use:   "estimate [complaint-id]",
		Short: "Estimate resolution hours for a complaint",
		Long: `Estimate resolution hours from the complaint's priority and a hierarchy
level. The level defaults to the complaint's current escalation level.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := o.load()
			if err != nil {
				return err
			}
			c, err := e.fixture.complaint(args[0])
			if err != nil {
				return err
			}

			at := c.EscalationLevel
			if cmd.Flags().Changed("level") {
				if level < 0 {
					return fmt.Errorf("--level must not be negative")
				}
				at = level
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s at level %d (%s): %dh\n",
				c.ID, at, hierarchy.Level(at).Name, e.engine.EstimateResolutionTime(c, at))
			return nil
		},
	}

	cmd.Flags().IntVarP(&level, "level", "l", 0, "hierarchy level to estimate at")
	return cmd
}
