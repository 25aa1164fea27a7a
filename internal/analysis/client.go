package analysis

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	DefaultModel     = "gpt-4o-mini"
	DefaultTimeout   = 60 * time.Second
	DefaultCacheSize = 64

	maxErrorBody = 2048
)

const systemPrompt = "You assess the feasibility of personal goals. " +
	"Reply with one JSON object with keys feasibility, summary, phases (name, weeks, focus) and daily_tasks."

var ErrNotConfigured = errors.New("analysis endpoint is not configured")

// StatusError is a non-2xx reply from the service.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("analysis service returned %d", e.Code)
	}
	return fmt.Sprintf("analysis service returned %d: %s", e.Code, e.Body)
}

// Retryable reports whether the request may succeed when sent again.
func (e *StatusError) Retryable() bool {
	return e.Code == http.StatusTooManyRequests || e.Code >= 500
}

type Config struct {
	Endpoint  string
	APIKey    string
	Model     string
	Timeout   time.Duration
	CacheSize int
}

// Client calls an OpenAI-compatible chat completions endpoint.
type Client struct {
	cfg          Config
	http         *http.Client
	cache        *lru.Cache[string, Plan]
	buildBackoff func() backoff.BackOff
	log          *slog.Logger
}

type ClientOption func(*Client)

func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

func WithBackOff(factory func() backoff.BackOff) ClientOption {
	return func(c *Client) {
		if factory != nil {
			c.buildBackoff = factory
		}
	}
}

func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

func NewClient(cfg Config, opts ...ClientOption) (*Client, error) {
	cfg.Endpoint = strings.TrimSpace(cfg.Endpoint)
	if cfg.Endpoint == "" {
		return nil, ErrNotConfigured
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	c := &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		buildBackoff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 500 * time.Millisecond
			b.MaxElapsedTime = 2 * cfg.Timeout
			return b
		},
		log: slog.Default(),
	}
	if cfg.CacheSize > 0 {
		cache, err := lru.New[string, Plan](cfg.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("analysis cache: %w", err)
		}
		c.cache = cache
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string            `json:"model"`
	Messages       []chatMessage     `json:"messages"`
	ResponseFormat map[string]string `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Analyze sends req to the service and decodes the plan in its reply.
// Identical requests are answered from the cache.
func (c *Client) Analyze(ctx context.Context, req Request) (*Plan, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	key := cacheKey(c.cfg.Model, payload)
	if c.cache != nil {
		if p, ok := c.cache.Get(key); ok {
			c.log.Debug("analysis cache hit", "key", key[:12])
			return clonePlan(p), nil
		}
	}

	body, err := json.Marshal(chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: string(payload)},
		},
		ResponseFormat: map[string]string{"type": "json_object"},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal chat request: %w", err)
	}

	var text string
	attempt := 0
	op := func() error {
		attempt++
		t, err := c.send(ctx, body)
		if err != nil {
			var se *StatusError
			if errors.As(err, &se) && !se.Retryable() {
				return backoff.Permanent(err)
			}
			if ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			c.log.Warn("analysis request failed", "attempt", attempt, "error", err)
			return err
		}
		text = t
		return nil
	}
	if err := backoff.Retry(op, backoff.WithContext(c.buildBackoff(), ctx)); err != nil {
		return nil, err
	}

	plan, err := decodePlan(text)
	if err != nil {
		return nil, err
	}
	if c.cache != nil {
		c.cache.Add(key, *clonePlan(*plan))
	}
	return plan, nil
}

func (c *Client) send(ctx context.Context, body []byte) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("analysis request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", ErrInvalidPlan)
	}
	return out.Choices[0].Message.Content, nil
}

func cacheKey(model string, payload []byte) string {
	h := sha256.New()
	h.Write([]byte(model))
	h.Write([]byte{0})
	h.Write(payload)
	return hex.EncodeToString(h.Sum(nil))
}

func clonePlan(p Plan) *Plan {
	out := p
	out.Phases = append([]Phase(nil), p.Phases...)
	out.DailyTasks = append([]string(nil), p.DailyTasks...)
	return &out
}
