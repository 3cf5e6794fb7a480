package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"escalation-srv/internal/model"
)

func TestDirectoryLookup(t *testing.T) {
	d, err := New(Defaults())
	require.NoError(t, err)

	g, err := d.Lookup(2)
	require.NoError(t, err)
	assert.Equal(t, "managers", g.ID)
	assert.Equal(t, 3, d.MaxLevel())

	_, err = d.Lookup(7)
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func TestDirectoryGroupsOrderedByLevel(t *testing.T) {
	groups := Defaults()
	groups[0], groups[3] = groups[3], groups[0]

	d, err := New(groups)
	require.NoError(t, err)

	var levels []int
	for _, g := range d.Groups() {
		levels = append(levels, g.Level)
	}
	assert.Equal(t, []int{0, 1, 2, 3}, levels)
}

func TestDirectoryRejectsBadConfig(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrNoGroups)

	_, err = New([]model.StakeholderGroup{{ID: "a", Level: 1}, {ID: "b", Level: 1}})
	assert.ErrorIs(t, err, ErrDuplicateLevel)
}

func TestDirectoryIsReadOnly(t *testing.T) {
	d, err := New(Defaults())
	require.NoError(t, err)

	g, err := d.Lookup(0)
	require.NoError(t, err)
	g.Members[0].IsActive = false

	again, err := d.Lookup(0)
	require.NoError(t, err)
	assert.True(t, again.Members[0].IsActive)
}

func TestLevel(t *testing.T) {
	assert.Equal(t, "Management Level", Level(2).Name)
	assert.Equal(t, "Unknown Level", Level(9).Name)
	assert.Empty(t, Level(9).Roles)
}
