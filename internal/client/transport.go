// Package client posts the widget's conversation to a running server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/varsilias/openclaw-setup/pkg/types"
)

// HTTPTransport sends the full history to POST {base}/api/chat.
type HTTPTransport struct {
	baseURL string
	client  *http.Client
}

func NewHTTPTransport(baseURL string, hc *http.Client) *HTTPTransport {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &HTTPTransport{baseURL: strings.TrimRight(baseURL, "/"), client: hc}
}

// Send returns an error for transport failures and any non-2xx status; the
// widget turns those into its own fallback bubble.
func (t *HTTPTransport) Send(ctx context.Context, history []types.Message) (types.Message, error) {
	b, err := json.Marshal(types.ChatRequest{Messages: history})
	if err != nil {
		return types.Message{}, fmt.Errorf("marshal chat request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/api/chat", bytes.NewReader(b))
	if err != nil {
		return types.Message{}, fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := t.client.Do(req)
	if err != nil {
		return types.Message{}, fmt.Errorf("chat request: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return types.Message{}, fmt.Errorf("chat api failed: %s", res.Status)
	}

	var out types.Message
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return types.Message{}, fmt.Errorf("decode chat response: %w", err)
	}
	out.Role = types.RoleModel
	return out, nil
}
