package apiserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newParseRouter() *gin.Engine {
	router := gin.New()
	router.POST("/v1/parse", ParseHandler())
	return router
}

func doParseRequest(t *testing.T, router *gin.Engine, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/parse", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestParseHandler_ReturnsSortedElements(t *testing.T) {
	router := newParseRouter()
	rec := doParseRequest(t, router, map[string]interface{}{
		"filename": "[SubsPlease] Sousou no Frieren - 12 [1080p].mkv",
	})

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	items, ok := resp.Data.([]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, items)
}

func TestParseHandler_RespectsOptions(t *testing.T) {
	router := newParseRouter()
	rec := doParseRequest(t, router, map[string]interface{}{
		"filename": "[Group] Show Name - 01 [720p].mkv",
		"options": map[string]interface{}{
			"parse_release_group": false,
			"parse_title":         false,
		},
	})

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"release_group"`)
}

func TestParseHandler_MissingFilenameIsBadRequest(t *testing.T) {
	router := newParseRouter()
	rec := doParseRequest(t, router, map[string]interface{}{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
