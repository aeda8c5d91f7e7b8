// Package openrouter implements the LLM completion collaborator against the
// OpenRouter (OpenAI-compatible) chat completions API.
package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/unite-hq/mentorlaunch/internal/adapter/observability"
	"github.com/unite-hq/mentorlaunch/internal/config"
	"github.com/unite-hq/mentorlaunch/internal/domain"
)

// Client calls OpenRouter chat completions. The pipeline makes exactly one
// attempt per run; retries are deliberately absent here so a degraded
// provider costs at most one call before the fallback path takes over.
type Client struct {
	cfg config.Config
	hc  *http.Client
}

// New constructs a client with the configured bounded timeout. The outbound
// call carries a trace span so the one external dependency of the pipeline
// shows up in traces alongside the repo spans.
func New(cfg config.Config) *Client {
	timeout := cfg.LLMTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	transport := otelhttp.NewTransport(http.DefaultTransport,
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return fmt.Sprintf("OpenRouter %s %s", r.Method, r.URL.Host)
		}),
	)
	return &Client{cfg: cfg, hc: &http.Client{Timeout: timeout, Transport: transport}}
}

// Complete sends one chat completion request and returns the raw reply text.
// Network errors, non-2xx statuses, and malformed envelopes are all mapped
// to errors the orchestrator treats as a uniform unavailable signal.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error) {
	if c.cfg.OpenRouterAPIKey == "" {
		return "", fmt.Errorf("%w: OPENROUTER_API_KEY missing", domain.ErrInvalidArgument)
	}

	body := map[string]any{
		"model":       c.cfg.OpenRouterModel,
		"temperature": 0.2,
		"max_tokens":  maxTokens,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": userPrompt},
		},
	}
	b, _ := json.Marshal(body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.OpenRouterBaseURL+"/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("op=openrouter.complete: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.OpenRouterAPIKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(req)
	observability.AIRequestsTotal.WithLabelValues("openrouter", "chat").Inc()
	observability.AIRequestDuration.WithLabelValues("openrouter", "chat").Observe(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("op=openrouter.complete: %w", domain.ErrUpstreamTimeout)
		}
		return "", fmt.Errorf("op=openrouter.complete: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("op=openrouter.complete: read body: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		slog.Warn("ai provider rate limited", slog.String("provider", "openrouter"), slog.Int("status", resp.StatusCode))
		return "", fmt.Errorf("op=openrouter.complete: %w", domain.ErrUpstreamRateLimit)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet := string(payload)
		if len(snippet) > 512 {
			snippet = snippet[:512]
		}
		slog.Warn("ai provider non-2xx", slog.String("provider", "openrouter"), slog.Int("status", resp.StatusCode), slog.String("body", snippet))
		return "", fmt.Errorf("op=openrouter.complete: chat status %d", resp.StatusCode)
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(payload, &out); err != nil {
		return "", fmt.Errorf("op=openrouter.complete: decode: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", errors.New("op=openrouter.complete: empty choices")
	}
	return out.Choices[0].Message.Content, nil
}
