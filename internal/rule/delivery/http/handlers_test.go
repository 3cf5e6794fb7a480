package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"escalation-srv/internal/middleware"
	"escalation-srv/internal/model"
	"escalation-srv/internal/rule"
	"escalation-srv/pkg/log"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Data      json.RawMessage `json:"data"`
}

func setup(t *testing.T) (*gin.Engine, *rule.Set) {
	t.Helper()
	set, err := rule.NewSet(rule.Defaults())
	require.NoError(t, err)

	l := log.NewNop()
	r := gin.New()
	r.Use(middleware.New(l, nil).Recovery())
	New(l, set, nil).RegisterRoutes(r.Group("/api/v1"))
	return r, set
}

func call(r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func vipRule() model.EscalationRule {
	return model.EscalationRule{
		ID:   "vip",
		Name: "VIP customers",
		Conditions: model.RuleConditions{
			Priority:           []model.Priority{model.PriorityHigh},
			Category:           []string{"billing"},
			TimeThresholdHours: 2,
			StatusRequired:     []model.Status{model.StatusNew},
		},
		Actions: model.RuleActions{EscalateToLevel: 2, NotifyRoles: []string{"manager"}},
	}
}

func TestRuleCRUD(t *testing.T) {
	r, set := setup(t)
	before := set.Len()

	w, _ := call(r, http.MethodPost, "/api/v1/rules", vipRule())
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, before+1, set.Len())
	assert.Equal(t, "vip", set.All()[before].ID)

	w, env := call(r, http.MethodPost, "/api/v1/rules", vipRule())
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, errDuplicateRule.Code, env.ErrorCode)

	upd := vipRule()
	upd.Actions.EscalateToLevel = 3
	w, env = call(r, http.MethodPut, "/api/v1/rules/vip", upd)
	require.Equal(t, http.StatusOK, w.Code)
	var got model.EscalationRule
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, 3, got.Actions.EscalateToLevel)

	w, _ = call(r, http.MethodDelete, "/api/v1/rules/vip", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, before, set.Len())

	w, env = call(r, http.MethodGet, "/api/v1/rules/vip", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, errRuleNotFound.Code, env.ErrorCode)
}

func TestCreateInvalidRule(t *testing.T) {
	r, _ := setup(t)
	bad := vipRule()
	bad.Actions.EscalateToLevel = 0

	w, env := call(r, http.MethodPost, "/api/v1/rules", bad)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, errInvalidRule.Code, env.ErrorCode)
}

func TestListKeepsOrder(t *testing.T) {
	r, _ := setup(t)
	w, env := call(r, http.MethodGet, "/api/v1/rules", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var out listResp
	require.NoError(t, json.Unmarshal(env.Data, &out))
	require.Equal(t, 4, out.Total)
	assert.Equal(t, "critical-immediate", out.Rules[0].ID)
}

func TestDeleteLastRule(t *testing.T) {
	set, err := rule.NewSet([]model.EscalationRule{vipRule()})
	require.NoError(t, err)

	l := log.NewNop()
	r := gin.New()
	r.Use(middleware.New(l, nil).Recovery())
	New(l, set, nil).RegisterRoutes(r.Group("/api/v1"))

	w, env := call(r, http.MethodDelete, "/api/v1/rules/vip", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, errLastRule.Code, env.ErrorCode)
	assert.Equal(t, 1, set.Len())
}
