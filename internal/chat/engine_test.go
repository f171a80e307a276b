package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/varsilias/openclaw-setup/internal/config"
	"github.com/varsilias/openclaw-setup/internal/gemini"
	"github.com/varsilias/openclaw-setup/internal/logging"
	"github.com/varsilias/openclaw-setup/pkg/types"
)

var mixed = []types.Message{
	{Role: types.RoleModel, Content: "Hello! I'm ClawBuddy"},
	{Role: types.RoleUser, Content: "I have a Mac"},
	{Role: "assistant", Content: "Great"},
}

func TestToContents_CollapsesRoles(t *testing.T) {
	got := toContents(mixed)
	require.Len(t, got, 3)
	assert.Equal(t, "model", got[0].Role)
	assert.Equal(t, "user", got[1].Role)
	assert.Equal(t, "model", got[2].Role)
	assert.Equal(t, "I have a Mac", got[1].Parts[0].Text)
}

func TestToGenaiContents_CollapsesRoles(t *testing.T) {
	got := toGenaiContents(mixed)
	require.Len(t, got, 3)
	assert.Equal(t, "model", got[0].Role)
	assert.Equal(t, "user", got[1].Role)
	assert.Equal(t, "model", got[2].Role)
}

func TestFirstText(t *testing.T) {
	assert.Equal(t, gemini.Result{}, firstText(nil))
	assert.Equal(t, gemini.Result{}, firstText(&genai.GenerateContentResponse{}))
	assert.Equal(t, gemini.Result{}, firstText(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{}}},
	}))

	res := firstText(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: []*genai.Part{{Text: "one"}, {Text: "two"}}}}},
	})
	text, ok := res.Text()
	assert.True(t, ok)
	assert.Equal(t, "one", text)
}

func TestRESTEngine_SendsPersonaAndMappedTurns(t *testing.T) {
	var body gemini.GenerateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`))
	}))
	defer srv.Close()

	eng := NewRESTEngine(gemini.NewClient(srv.URL, "gemini-1.5-flash", logging.Discard()))
	res, _, err := eng.Generate(context.Background(), "k", mixed)
	require.NoError(t, err)
	assert.Equal(t, "ok", res.Or(""))

	require.NotNil(t, body.SystemInstruction)
	assert.Equal(t, SystemPrompt, body.SystemInstruction.Parts[0].Text)
	require.Len(t, body.Contents, 3)
	assert.Equal(t, "model", body.Contents[2].Role)
}

func sdkServer(t *testing.T, status int, body string) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSDKEngine_NonJSONBodyIsMalformed(t *testing.T) {
	srv := sdkServer(t, http.StatusOK, "not json at all")

	_, _, err := NewSDKEngine("gemini-1.5-flash", srv.URL).Generate(context.Background(), "k", mixed)
	require.Error(t, err)
	assert.ErrorIs(t, err, gemini.ErrMalformedResponse)

	_, _, err = NewController(logging.Discard(), NewSDKEngine("gemini-1.5-flash", srv.URL), config.StaticCredential("k")).Reply(context.Background(), mixed)
	assert.Equal(t, UpstreamFailure, KindOf(err))
}

func TestSDKEngine_StatusErrorIsAPIError(t *testing.T) {
	srv := sdkServer(t, http.StatusTooManyRequests, `{"error":{"code":429,"message":"quota","status":"RESOURCE_EXHAUSTED"}}`)

	_, _, err := NewSDKEngine("gemini-1.5-flash", srv.URL).Generate(context.Background(), "k", mixed)
	var apiErr *gemini.APIError
	require.True(t, errors.As(err, &apiErr), "got %v", err)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
}

func TestFromSDKError_OtherErrorsStayInternal(t *testing.T) {
	err := fromSDKError(context.DeadlineExceeded)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NotErrorIs(t, err, gemini.ErrMalformedResponse)
}

func TestEchoEngine_EchoesLastUserTurn(t *testing.T) {
	res, _, err := NewEchoEngine(0).Generate(context.Background(), "", mixed)
	require.NoError(t, err)
	assert.Equal(t, "(demo) you said: I have a Mac", res.Or(""))
}

func TestEchoEngine_HonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := NewEchoEngine(time.Hour).Generate(ctx, "", mixed)
	assert.ErrorIs(t, err, context.Canceled)
}
