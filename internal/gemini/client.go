package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type Client struct {
	baseURL string
	model   string
	log     *slog.Logger
	client  *http.Client
}

type Part struct {
	Text string `json:"text"`
}

type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// GenerateRequest is the generateContent body.
type GenerateRequest struct {
	Contents          []Content `json:"contents"`
	SystemInstruction *Content  `json:"systemInstruction,omitempty"`
}

func NewClient(baseURL, model string, log *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		log:     log,
		// no timeout: the widget offers no cancellation, the request context governs
		client: &http.Client{},
	}
}

// WithHTTPClient swaps the underlying client.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.client = hc
	return c
}

func (c *Client) Model() string { return c.model }

func (c *Client) endpoint(apiKey string) string {
	q := url.Values{}
	q.Set("key", apiKey)
	return fmt.Sprintf("%s/v1beta/models/%s:generateContent?%s", c.baseURL, url.PathEscape(c.model), q.Encode())
}

// Generate posts a non-streaming generateContent call. The key travels as the
// "key" query parameter. A non-2xx status yields *APIError carrying the raw body.
func (c *Client) Generate(ctx context.Context, apiKey string, in GenerateRequest) (Result, time.Duration, error) {
	b, err := json.Marshal(in)
	if err != nil {
		return Result{}, 0, fmt.Errorf("gemini marshal: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(apiKey), bytes.NewReader(b))
	if err != nil {
		return Result{}, 0, fmt.Errorf("gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	res, err := c.client.Do(req)
	if err != nil {
		// url.Error embeds the full URL, key included
		return Result{}, 0, fmt.Errorf("gemini generate: %w", redact(err, apiKey))
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return Result{}, 0, fmt.Errorf("gemini read body: %w", err)
	}
	latency := time.Since(start)
	c.log.Debug("gemini response", "status", res.StatusCode, "bytes", len(body), "latency_ms", latency.Milliseconds())

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return Result{}, latency, &APIError{StatusCode: res.StatusCode, Body: string(body)}
	}

	out, err := ParseResponse(body)
	if err != nil {
		return Result{}, latency, err
	}
	return out, latency, nil
}

type redactedError struct {
	msg string
	err error
}

func (e *redactedError) Error() string { return e.msg }
func (e *redactedError) Unwrap() error { return e.err }

func redact(err error, secret string) error {
	if secret == "" || !strings.Contains(err.Error(), secret) {
		return err
	}
	return &redactedError{msg: strings.ReplaceAll(err.Error(), secret, "REDACTED"), err: err}
}
