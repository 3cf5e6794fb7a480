package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"escalation-srv/internal/hierarchy"
	"escalation-srv/internal/model"
	"escalation-srv/internal/rule"
)

var ErrComplaintNotFound = errors.New("complaint not found in fixture")

// Fixture is an offline snapshot of rules, groups and complaints. Rules and
// groups left out fall back to the built-in defaults.
type Fixture struct {
	Now        *time.Time               `yaml:"now"`
	Timezone   string                   `yaml:"timezone"`
	Rules      []model.EscalationRule   `yaml:"rules"`
	Groups     []model.StakeholderGroup `yaml:"stakeholder_groups"`
	Complaints []model.Complaint        `yaml:"complaints"`
}

// LoadFixture reads a YAML fixture. An empty path yields the defaults with
// no complaints.
func LoadFixture(path string) (Fixture, error) {
	var f Fixture
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Fixture{}, fmt.Errorf("read fixture: %w", err)
		}
		if err := yaml.Unmarshal(data, &f); err != nil {
			return Fixture{}, fmt.Errorf("parse fixture %s: %w", path, err)
		}
	}

	if len(f.Rules) == 0 {
		f.Rules = rule.Defaults()
	}
	if len(f.Groups) == 0 {
		f.Groups = hierarchy.Defaults()
	}
	for i := range f.Complaints {
		if f.Complaints[i].Status == "" {
			f.Complaints[i].Status = model.StatusNew
		}
	}
	return f, nil
}

func (f Fixture) complaint(id string) (model.Complaint, error) {
	for _, c := range f.Complaints {
		if c.ID == id {
			return c, nil
		}
	}
	return model.Complaint{}, fmt.Errorf("%w: %s", ErrComplaintNotFound, id)
}
