package chat

import (
	"context"
	"time"

	"github.com/varsilias/openclaw-setup/internal/gemini"
	"github.com/varsilias/openclaw-setup/pkg/types"
)

// RESTEngine calls generateContent over raw HTTPS.
type RESTEngine struct {
	c *gemini.Client
}

func NewRESTEngine(c *gemini.Client) *RESTEngine {
	return &RESTEngine{c: c}
}

func (e *RESTEngine) Generate(ctx context.Context, apiKey string, history []types.Message) (gemini.Result, time.Duration, error) {
	return e.c.Generate(ctx, apiKey, gemini.GenerateRequest{
		Contents:          toContents(history),
		SystemInstruction: systemInstruction(),
	})
}
