package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unite-hq/mentorlaunch/internal/adapter/ai/stub"
	"github.com/unite-hq/mentorlaunch/internal/adapter/httpserver"
	"github.com/unite-hq/mentorlaunch/internal/config"
	"github.com/unite-hq/mentorlaunch/internal/usecase"
)

func TestParseOrigins(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{"*"}},
		{"*", []string{"*"}},
		{"https://a.example", []string{"https://a.example"}},
		{"https://a.example, https://b.example", []string{"https://a.example", "https://b.example"}},
		{" , ", []string{"*"}},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ParseOrigins(tc.in), "input %q", tc.in)
	}
}

func testRouter() http.Handler {
	cfg := config.Config{
		RequestTimeout:  5 * time.Second,
		RateLimitPerMin: 100,
	}
	svc := usecase.NewSuggestService(stub.New(), nil, nil, 0)
	srv := httpserver.NewServer(cfg, svc, nil, nil, nil)
	return BuildRouter(cfg, srv)
}

func TestRouterHealthz(t *testing.T) {
	rr := httptest.NewRecorder()
	testRouter().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, rr.Header().Get("X-Request-Id"))
}

func TestRouterReadyz(t *testing.T) {
	rr := httptest.NewRecorder()
	testRouter().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Ready  bool              `json:"ready"`
		Checks map[string]string `json:"checks"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.True(t, body.Ready)
	assert.Equal(t, "disabled", body.Checks["db"])
	assert.Equal(t, "disabled", body.Checks["redis"])
}

func TestRouterSuggestEndpoint(t *testing.T) {
	body := `{"kind":"careers","grade":"Grade 10","career_interest":"Data Science"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/suggestions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	testRouter().ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var out struct {
		Source string            `json:"source"`
		Items  []json.RawMessage `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	assert.Equal(t, "ai", out.Source)
	assert.NotEmpty(t, out.Items)
}

func TestRouterSavedWithoutPersistence(t *testing.T) {
	rr := httptest.NewRecorder()
	testRouter().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/v1/suggestions/u-1", nil))
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRouterUnknownRoute(t *testing.T) {
	rr := httptest.NewRecorder()
	testRouter().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))
	require.Equal(t, http.StatusNotFound, rr.Code)
}
