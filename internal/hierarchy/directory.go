// Package hierarchy is the read-only lookup from escalation level to the
// stakeholder group responsible for it.
package hierarchy

import (
	"fmt"
	"sort"

	"escalation-srv/internal/model"
)

// Directory resolves escalation levels to stakeholder groups.
type Directory interface {
	Lookup(level int) (model.StakeholderGroup, error)
	Groups() []model.StakeholderGroup
	MaxLevel() int
}

type directory struct {
	byLevel  map[int]model.StakeholderGroup
	levels   []int
	maxLevel int
}

// New builds a Directory. Exactly one group per level is allowed.
func New(groups []model.StakeholderGroup) (Directory, error) {
	if len(groups) == 0 {
		return nil, ErrNoGroups
	}

	d := &directory{byLevel: make(map[int]model.StakeholderGroup, len(groups))}
	for _, g := range groups {
		if _, ok := d.byLevel[g.Level]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateLevel, g.Level)
		}
		d.byLevel[g.Level] = cloneGroup(g)
		d.levels = append(d.levels, g.Level)
	}
	sort.Ints(d.levels)
	d.maxLevel = d.levels[len(d.levels)-1]

	return d, nil
}

func (d *directory) Lookup(level int) (model.StakeholderGroup, error) {
	g, ok := d.byLevel[level]
	if !ok {
		return model.StakeholderGroup{}, fmt.Errorf("%w: %d", ErrGroupNotFound, level)
	}
	return cloneGroup(g), nil
}

// Groups returns all groups ordered by level.
func (d *directory) Groups() []model.StakeholderGroup {
	out := make([]model.StakeholderGroup, 0, len(d.levels))
	for _, lvl := range d.levels {
		out = append(out, cloneGroup(d.byLevel[lvl]))
	}
	return out
}

func (d *directory) MaxLevel() int {
	return d.maxLevel
}

func cloneGroup(g model.StakeholderGroup) model.StakeholderGroup {
	out := g
	out.Members = append([]model.StakeholderMember(nil), g.Members...)
	out.BusinessHours.Workdays = append([]int(nil), g.BusinessHours.Workdays...)
	return out
}
