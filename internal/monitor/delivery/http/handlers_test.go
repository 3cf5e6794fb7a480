package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"escalation-srv/internal/middleware"
	"escalation-srv/internal/model"
	"escalation-srv/internal/monitor"
	"escalation-srv/internal/monitor/mocks"
	"escalation-srv/pkg/log"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Data      json.RawMessage `json:"data"`
}

func setup(t *testing.T) (*gin.Engine, *mocks.UseCase) {
	t.Helper()
	l := log.NewNop()
	uc := mocks.NewUseCase(t)
	mw := middleware.New(l, nil)

	r := gin.New()
	r.Use(mw.Recovery(), mw.Actor())
	New(l, uc, nil).RegisterRoutes(r.Group("/api/v1"))
	return r, uc
}

func call(r *gin.Engine, method, path, body string, header map[string]string) (*httptest.ResponseRecorder, envelope) {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestAlerts(t *testing.T) {
	r, uc := setup(t)
	uc.On("Alerts", mock.Anything).Return([]model.EscalationAlert{
		{ComplaintID: "c-1", SuggestedLevel: 2, Urgency: model.UrgencyCritical},
	})

	w, env := call(r, http.MethodGet, "/api/v1/escalation/alerts", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var out alertsResp
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.Equal(t, 1, out.Total)
	assert.Equal(t, "c-1", out.Alerts[0].ComplaintID)
}

func TestDismiss(t *testing.T) {
	r, uc := setup(t)
	uc.On("Dismiss", mock.Anything, "c-1").Return(nil)
	uc.On("Dismiss", mock.Anything, "c-2").Return(monitor.ErrAlertNotFound)

	w, _ := call(r, http.MethodPost, "/api/v1/escalation/alerts/c-1/dismiss", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, env := call(r, http.MethodPost, "/api/v1/escalation/alerts/c-2/dismiss", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, errAlertNotFound.Code, env.ErrorCode)
}

func TestEscalate(t *testing.T) {
	r, uc := setup(t)
	from := 1
	uc.On("Escalate", mock.Anything, monitor.EscalateInput{
		ComplaintID: "c-1",
		NewLevel:    3,
		Reason:      "customer called CEO",
		FromLevel:   &from,
		Actor:       "ops-lead",
		WaitNotify:  true,
	}).Return(monitor.EscalateOutput{Committed: true, Complaint: model.Complaint{ID: "c-1", EscalationLevel: 3}}, nil)

	w, env := call(r, http.MethodPost, "/api/v1/escalation/complaints/c-1/escalate",
		`{"new_level":3,"reason":"customer called CEO","from_level":1,"wait":true}`,
		map[string]string{middleware.ActorHeader: "ops-lead"})
	require.Equal(t, http.StatusOK, w.Code)
	var out monitor.EscalateOutput
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.True(t, out.Committed)
	assert.Equal(t, 3, out.Complaint.EscalationLevel)
}

func TestEscalateEmptyBodyUsesAlert(t *testing.T) {
	r, uc := setup(t)
	uc.On("Escalate", mock.Anything, monitor.EscalateInput{ComplaintID: "c-1"}).
		Return(monitor.EscalateOutput{}, monitor.ErrInvalidLevel)

	w, env := call(r, http.MethodPost, "/api/v1/escalation/complaints/c-1/escalate", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, errInvalidLevel.Code, env.ErrorCode)
}

func TestEscalateUnknownErrorIs500(t *testing.T) {
	r, uc := setup(t)
	uc.On("Escalate", mock.Anything, mock.Anything).Return(monitor.EscalateOutput{}, errors.New("disk on fire"))

	w, _ := call(r, http.MethodPost, "/api/v1/escalation/complaints/c-1/escalate", `{"new_level":1}`, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestMonitorLifecycle(t *testing.T) {
	r, uc := setup(t)
	uc.On("Start", mock.Anything).Return(nil)
	uc.On("Stop", mock.Anything).Return(nil)
	uc.On("Refresh", mock.Anything).Return(monitor.CycleResult{Evaluated: 4, Alerts: 1}, nil)
	uc.On("Stats", mock.Anything).Return(monitor.Stats{Monitoring: true, Interval: time.Minute, Cycles: 2})

	w, env := call(r, http.MethodPost, "/api/v1/escalation/monitor/start", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var st statusResp
	require.NoError(t, json.Unmarshal(env.Data, &st))
	assert.True(t, st.Monitoring)
	assert.Equal(t, "1m0s", st.Interval)
	assert.Nil(t, st.LastCycleAt)

	w, env = call(r, http.MethodPost, "/api/v1/escalation/monitor/run", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var res monitor.CycleResult
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, 4, res.Evaluated)

	w, _ = call(r, http.MethodPost, "/api/v1/escalation/monitor/stop", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = call(r, http.MethodGet, "/api/v1/escalation/monitor", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
