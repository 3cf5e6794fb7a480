package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"escalation-srv/internal/escalation"
	"escalation-srv/internal/model"
)

func TestLoadFile_Shipped(t *testing.T) {
	cfg, err := LoadFile("escalation-config.yaml")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 60*time.Second, cfg.Monitor.Interval)
	assert.True(t, cfg.Monitor.AutoStart)
	assert.Equal(t, time.Duration(0), cfg.Monitor.DismissCooldown)
	assert.Equal(t, time.UTC.String(), cfg.Escalation.Location.String())

	require.Len(t, cfg.Rules, 4)
	assert.Equal(t, "critical-immediate", cfg.Rules[0].ID)
	assert.Equal(t, []model.Priority{model.PriorityCritical}, cfg.Rules[0].Conditions.Priority)
	assert.Equal(t, []model.Status{model.StatusNew, model.StatusInProgress}, cfg.Rules[0].Conditions.StatusRequired)
	assert.Equal(t, 2, cfg.Rules[0].Actions.EscalateToLevel)
	assert.True(t, cfg.Rules[2].Conditions.ExcludeWeekends)

	require.Len(t, cfg.Groups, 4)
	assert.Equal(t, 2, cfg.Groups[2].Level)
	assert.Equal(t, "#management", cfg.Groups[2].NotificationPreferences.SlackChannel)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, cfg.Groups[2].BusinessHours.Workdays)
	require.Len(t, cfg.Groups[3].Members, 2)
	assert.True(t, cfg.Groups[3].Members[0].IsActive)
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "escalation-config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFile_Defaults(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, "environment:\n  name: test\n"))
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Environment.Name)
	assert.Equal(t, escalation.AssigneeStrategyRoundRobin, cfg.Escalation.AssigneeStrategy)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Empty(t, cfg.Rules)
	assert.Empty(t, cfg.Groups)
}

func TestLoadFile_Invalid(t *testing.T) {
	tcs := map[string]string{
		"bad timezone":      "escalation:\n  timezone: Mars/Olympus\n",
		"bad strategy":      "escalation:\n  assignee_strategy: oldest\n",
		"zero interval":     "monitor:\n  interval: 0s\n",
		"negative cool":     "monitor:\n  dismiss_cooldown: -1m\n",
		"redis no host":     "redis:\n  enabled: true\n  host: \"\"\n",
		"port out of range": "server:\n  port: 70000\n",
	}

	for name, body := range tcs {
		t.Run(name, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
