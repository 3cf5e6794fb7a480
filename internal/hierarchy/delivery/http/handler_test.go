package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"escalation-srv/internal/hierarchy"
)

func TestList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dir, err := hierarchy.New(hierarchy.Defaults())
	require.NoError(t, err)

	r := gin.New()
	New(dir).RegisterRoutes(r.Group("/api/v1"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/hierarchy", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var env struct {
		Data listResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, 3, env.Data.MaxLevel)
	require.Len(t, env.Data.Levels, 4)
	assert.Equal(t, "Management Level", env.Data.Levels[2].Info.Name)
	assert.Equal(t, "managers", env.Data.Levels[2].Group.ID)
}
