package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"escalation-srv/internal/dashboard"
	"escalation-srv/pkg/log"
)

func TestRolesMatch(t *testing.T) {
	tcs := map[string]struct {
		have, want []string
		match      bool
	}{
		"no filter":        {nil, []string{"manager"}, true},
		"untargeted event": {[]string{"manager"}, nil, true},
		"case insensitive": {[]string{"Manager"}, []string{"manager"}, true},
		"disjoint":         {[]string{"agent"}, []string{"manager", "supervisor"}, false},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.match, rolesMatch(tc.have, tc.want))
		})
	}
}

func TestRegisterRequiresConnection(t *testing.T) {
	uc := New(log.NewNop(), Config{}, nil)
	assert.ErrorIs(t, uc.Register(context.Background(), dashboard.RegisterInput{ClientID: "x"}), dashboard.ErrMissingConnection)
}

func TestShutdownClosesHub(t *testing.T) {
	uc := New(log.NewNop(), Config{}, nil)
	go uc.Run()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, uc.Shutdown(ctx))

	err := uc.HandleEvent(ctx, dashboard.EventInput{Payload: []byte(`{"complaint_id":"c-1"}`)})
	assert.ErrorIs(t, err, dashboard.ErrHubClosed)
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{PongWait: 10 * time.Second, PingPeriod: 20 * time.Second}.withDefaults()
	assert.Equal(t, 9*time.Second, cfg.PingPeriod)
	assert.Equal(t, 256, cfg.SendBuffer)
	assert.Equal(t, 10*time.Second, cfg.WriteWait)
}
