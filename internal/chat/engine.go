package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/varsilias/openclaw-setup/internal/gemini"
	"github.com/varsilias/openclaw-setup/pkg/types"
)

// Engine produces the next model turn for a conversation. A non-2xx provider
// status must surface as *gemini.APIError.
type Engine interface {
	Generate(ctx context.Context, apiKey string, history []types.Message) (gemini.Result, time.Duration, error)
}

// credentialFree is implemented by engines that never call out.
type credentialFree interface {
	CredentialFree() bool
}

type EchoEngine struct {
	minLatency time.Duration
}

func NewEchoEngine(minLatency time.Duration) *EchoEngine { return &EchoEngine{minLatency: minLatency} }

func (e *EchoEngine) CredentialFree() bool { return true }

func (e *EchoEngine) Generate(ctx context.Context, _ string, history []types.Message) (gemini.Result, time.Duration, error) {
	start := time.Now()
	if e.minLatency > 0 {
		select {
		case <-time.After(e.minLatency):
		case <-ctx.Done():
			return gemini.Result{}, time.Since(start), ctx.Err()
		}
	}
	last := ""
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == types.RoleUser {
			last = history[i].Content
			break
		}
	}
	return gemini.TextResult(fmt.Sprintf("(demo) you said: %s", last)), time.Since(start), nil
}

// toContents maps the widget log onto provider turns, collapsing every
// non-user role into "model".
func toContents(history []types.Message) []gemini.Content {
	out := make([]gemini.Content, 0, len(history))
	for _, m := range history {
		out = append(out, gemini.Content{
			Role:  string(m.Role.ProviderRole()),
			Parts: []gemini.Part{{Text: m.Content}},
		})
	}
	return out
}

func systemInstruction() *gemini.Content {
	return &gemini.Content{Parts: []gemini.Part{{Text: SystemPrompt}}}
}
