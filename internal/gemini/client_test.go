package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varsilias/openclaw-setup/internal/logging"
)

func TestGenerate_Success(t *testing.T) {
	var got GenerateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/models/gemini-1.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "secret-key", r.URL.Query().Get("key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"Hello there"}]}}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", "gemini-1.5-flash", logging.Discard())
	res, _, err := c.Generate(context.Background(), "secret-key", GenerateRequest{
		Contents:          []Content{{Role: "user", Parts: []Part{{Text: "hi"}}}},
		SystemInstruction: &Content{Parts: []Part{{Text: "persona"}}},
	})
	require.NoError(t, err)

	text, ok := res.Text()
	assert.True(t, ok)
	assert.Equal(t, "Hello there", text)
	require.Len(t, got.Contents, 1)
	assert.Equal(t, "user", got.Contents[0].Role)
	require.NotNil(t, got.SystemInstruction)
	assert.Equal(t, "persona", got.SystemInstruction.Parts[0].Text)
}

func TestGenerate_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"Invalid JSON payload received. Unknown name \"systemInstruction\""}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "gemini-pro", logging.Discard())
	_, _, err := c.Generate(context.Background(), "k", GenerateRequest{})

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "systemInstruction")
	assert.NotContains(t, apiErr.Error(), "systemInstruction")
}

func TestGenerate_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>gateway</html>`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "gemini-1.5-flash", logging.Discard())
	_, _, err := c.Generate(context.Background(), "k", GenerateRequest{})
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestGenerate_TransportErrorRedactsKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(url, "gemini-1.5-flash", logging.Discard())
	_, _, err := c.Generate(context.Background(), "super-secret", GenerateRequest{})
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "super-secret")

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		want   string
		wantOK bool
	}{
		{"first part", `{"candidates":[{"content":{"parts":[{"text":"a"},{"text":"b"}]}},{"content":{"parts":[{"text":"c"}]}}]}`, "a", true},
		{"no candidates", `{"promptFeedback":{"blockReason":"SAFETY"}}`, "", false},
		{"empty candidates", `{"candidates":[]}`, "", false},
		{"no parts", `{"candidates":[{"finishReason":"SAFETY","content":{}}]}`, "", false},
		{"empty text", `{"candidates":[{"content":{"parts":[{"text":""}]}}]}`, "", false},
		{"whitespace text", `{"candidates":[{"content":{"parts":[{"text":"  \n"}]}}]}`, "  \n", false},
		{"non string text", `{"candidates":[{"content":{"parts":[{"text":42}]}}]}`, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ParseResponse([]byte(tt.body))
			require.NoError(t, err)
			text, ok := res.Text()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, text)
		})
	}
}

func TestResult_Or(t *testing.T) {
	assert.Equal(t, "fallback", Result{}.Or("fallback"))
	assert.Equal(t, "x", TextResult("x").Or("fallback"))
	assert.Equal(t, "fallback", TextResult("").Or("fallback"))
	assert.Equal(t, "fallback", TextResult(" \n\t").Or("fallback"))
}
