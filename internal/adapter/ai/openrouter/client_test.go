package openrouter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/unite-hq/mentorlaunch/internal/config"
	"github.com/unite-hq/mentorlaunch/internal/domain"
)

func newTestClient(baseURL string) *Client {
	return New(config.Config{
		OpenRouterAPIKey:  "test-key",
		OpenRouterBaseURL: baseURL,
		OpenRouterModel:   "openrouter/auto",
	})
}

func TestNew_InstrumentsTransport(t *testing.T) {
	c := newTestClient("http://localhost:0")
	_, ok := c.hc.Transport.(*otelhttp.Transport)
	assert.True(t, ok, "outbound AI calls must carry trace spans")
}

func TestComplete_Success(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/chat/completions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"[{\"title\":\"Data Analyst\"}]"}}]}`))
	}))
	defer ts.Close()

	reply, err := newTestClient(ts.URL).Complete(context.Background(), "system", "user", 500)
	require.NoError(t, err)
	assert.Equal(t, `[{"title":"Data Analyst"}]`, reply)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "openrouter/auto", gotBody["model"])
	assert.Equal(t, float64(500), gotBody["max_tokens"])

	msgs, ok := gotBody["messages"].([]any)
	require.True(t, ok)
	require.Len(t, msgs, 2)
}

func TestComplete_RateLimited(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	_, err := newTestClient(ts.URL).Complete(context.Background(), "s", "u", 100)
	require.ErrorIs(t, err, domain.ErrUpstreamRateLimit)
}

func TestComplete_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream exploded", http.StatusInternalServerError)
	}))
	defer ts.Close()

	_, err := newTestClient(ts.URL).Complete(context.Background(), "s", "u", 100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat status 500")
}

func TestComplete_EmptyChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer ts.Close()

	_, err := newTestClient(ts.URL).Complete(context.Background(), "s", "u", 100)
	require.Error(t, err)
}

func TestComplete_MalformedEnvelope(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json at all`))
	}))
	defer ts.Close()

	_, err := newTestClient(ts.URL).Complete(context.Background(), "s", "u", 100)
	require.Error(t, err)
}

func TestComplete_MissingAPIKey(t *testing.T) {
	c := New(config.Config{OpenRouterBaseURL: "http://localhost:0"})
	_, err := c.Complete(context.Background(), "s", "u", 100)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}
