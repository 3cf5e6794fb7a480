package cli

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"escalation-srv/internal/escalation"
	escalationUC "escalation-srv/internal/escalation/usecase"
	"escalation-srv/internal/hierarchy"
	"escalation-srv/internal/rule"
	"escalation-srv/pkg/log"
)

type options struct {
	fixturePath string
	now         string
	timezone    string
	strategy    string
	seed        int64
	noColor     bool
}

// env is what every subcommand works against once flags are parsed.
type env struct {
	fixture Fixture
	rules   *rule.Set
	engine  escalation.UseCase
	now     time.Time
}

// NewRootCmd builds the escalationctl command tree.
func NewRootCmd() *cobra.Command {
	o := &options{}

	root := &cobra.Command{
		Use:   "escalationctl",
		Short: "Inspect escalation rules and complaints offline",
		Long: `escalationctl evaluates complaints from a YAML fixture against an
escalation rule set and stakeholder hierarchy, without a running service.
Rules and groups missing from the fixture fall back to the built-in defaults.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if o.noColor {
				color.NoColor = true
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&o.fixturePath, "fixture", "f", "", "YAML fixture with rules, stakeholder_groups and complaints")
	flags.StringVar(&o.now, "now", "", "evaluation time (RFC3339), overrides the fixture's now")
	flags.StringVar(&o.timezone, "timezone", "", "timezone for weekend checks, overrides the fixture's timezone")
	flags.StringVar(&o.strategy, "assignee", string(escalation.AssigneeStrategyRoundRobin), "assignee strategy: round_robin or random")
	flags.Int64Var(&o.seed, "seed", 0, "seed for the random assignee strategy")
	flags.BoolVar(&o.noColor, "no-color", false, "disable colored output")

	root.AddCommand(evaluateCmd(o))
	root.AddCommand(pathCmd(o))
	root.AddCommand(estimateCmd(o))
	root.AddCommand(rulesCmd(o))

	return root
}

func (o *options) load() (*env, error) {
	f, err := LoadFixture(o.fixturePath)
	if err != nil {
		return nil, err
	}

	rules, err := rule.NewSet(f.Rules)
	if err != nil {
		return nil, fmt.Errorf("rules: %w", err)
	}
	directory, err := hierarchy.New(f.Groups)
	if err != nil {
		return nil, fmt.Errorf("stakeholder_groups: %w", err)
	}

	tz := f.Timezone
	if o.timezone != "" {
		tz = o.timezone
	}
	loc := time.UTC
	if tz != "" {
		if loc, err = time.LoadLocation(tz); err != nil {
			return nil, fmt.Errorf("timezone %q: %w", tz, err)
		}
	}

	now := time.Now()
	if f.Now != nil {
		now = *f.Now
	}
	if o.now != "" {
		if now, err = time.Parse(time.RFC3339, o.now); err != nil {
			return nil, fmt.Errorf("--now: %w", err)
		}
	}

	var picker escalationUC.Picker
	switch escalation.AssigneeStrategy(o.strategy) {
	case escalation.AssigneeStrategyRoundRobin:
		picker = escalationUC.NewRoundRobinPicker()
	case escalation.AssigneeStrategyRandom:
		picker = escalationUC.NewRandomPicker(o.seed)
	default:
		return nil, fmt.Errorf("--assignee must be %q or %q",
			escalation.AssigneeStrategyRoundRobin, escalation.AssigneeStrategyRandom)
	}

	return &env{
		fixture: f,
		rules:   rules,
		engine: escalationUC.New(log.NewNop(), rules, directory, escalationUC.Config{
			Location: loc,
			Picker:   picker,
		}),
		now: now,
	}, nil
}
