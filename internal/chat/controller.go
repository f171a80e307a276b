package chat

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/varsilias/openclaw-setup/internal/config"
	"github.com/varsilias/openclaw-setup/internal/gemini"
	"github.com/varsilias/openclaw-setup/pkg/types"
)

type Controller struct {
	log  *slog.Logger
	eng  Engine
	cred config.Credential
}

func NewController(log *slog.Logger, eng Engine, cred config.Credential) *Controller {
	return &Controller{log: log, eng: eng, cred: cred}
}

// Reply answers one stateless turn: validate, resolve the credential, call the
// engine, relay the first text part. Failures come back as *Error.
func (c *Controller) Reply(ctx context.Context, history []types.Message) (types.Message, time.Duration, error) {
	if len(history) == 0 {
		return types.Message{}, 0, &Error{Kind: InternalFailure, Err: ErrEmptyConversation}
	}
	for _, m := range history {
		if !m.Valid() {
			return types.Message{}, 0, &Error{Kind: InternalFailure, Err: ErrInvalidMessage}
		}
	}

	key := c.cred()
	if key == "" && !isCredentialFree(c.eng) {
		c.log.Warn("chat", "kind", NoCredential.String(), "hint", "set "+config.CredentialEnv)
		return types.Message{}, 0, &Error{Kind: NoCredential}
	}

	res, latency, err := c.eng.Generate(ctx, key, history)
	if err != nil {
		var apiErr *gemini.APIError
		switch {
		case errors.As(err, &apiErr):
			c.log.Error("gemini api error", "status", apiErr.StatusCode, "payload", apiErr.Body)
			return types.Message{}, latency, &Error{Kind: UpstreamFailure, Err: err}
		case errors.Is(err, gemini.ErrMalformedResponse):
			c.log.Error("gemini api error", "err", err.Error())
			return types.Message{}, latency, &Error{Kind: UpstreamFailure, Err: err}
		default:
			return types.Message{}, latency, &Error{Kind: InternalFailure, Err: err}
		}
	}

	c.log.Info("chat", "turns", len(history), "latency_ms", latency.Milliseconds())
	return types.Message{Role: types.RoleModel, Content: res.Or(NotSure)}, latency, nil
}

func isCredentialFree(e Engine) bool {
	cf, ok := e.(credentialFree)
	return ok && cf.CredentialFree()
}
