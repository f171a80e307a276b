package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/varsilias/openclaw-setup/internal/gemini"
	"github.com/varsilias/openclaw-setup/pkg/types"
)

// SDKEngine goes through the official genai client. A client is built per call
// because the credential is resolved per request.
type SDKEngine struct {
	model   string
	baseURL string
}

func NewSDKEngine(model, baseURL string) *SDKEngine {
	return &SDKEngine{model: model, baseURL: baseURL}
}

func (e *SDKEngine) Generate(ctx context.Context, apiKey string, history []types.Message) (gemini.Result, time.Duration, error) {
	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if e.baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: e.baseURL}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return gemini.Result{}, 0, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	start := time.Now()
	resp, err := client.Models.GenerateContent(ctx, e.model, toGenaiContents(history), &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: SystemPrompt}}},
	})
	latency := time.Since(start)
	if err != nil {
		return gemini.Result{}, latency, fromSDKError(err)
	}
	return firstText(resp), latency, nil
}

func toGenaiContents(history []types.Message) []*genai.Content {
	out := make([]*genai.Content, 0, len(history))
	for _, m := range history {
		out = append(out, &genai.Content{
			Role:  string(m.Role.ProviderRole()),
			Parts: []*genai.Part{{Text: m.Content}},
		})
	}
	return out
}

func firstText(resp *genai.GenerateContentResponse) gemini.Result {
	if resp == nil || len(resp.Candidates) == 0 {
		return gemini.Result{}
	}
	c := resp.Candidates[0]
	if c == nil || c.Content == nil || len(c.Content.Parts) == 0 || c.Content.Parts[0] == nil {
		return gemini.Result{}
	}
	return gemini.TextResult(c.Content.Parts[0].Text)
}

// fromSDKError rewrites provider status errors as *gemini.APIError and
// undecodable 2xx bodies as gemini.ErrMalformedResponse, so both engines
// classify the same way.
func fromSDKError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &gemini.APIError{StatusCode: apiErr.Code, Body: apiErr.Message}
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return &gemini.APIError{StatusCode: apiErrPtr.Code, Body: apiErrPtr.Message}
	}
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return fmt.Errorf("%w: %v", gemini.ErrMalformedResponse, err)
	}
	return fmt.Errorf("genai generate: %w", err)
}
