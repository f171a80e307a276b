package gemini

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrMalformedResponse marks a 2xx reply whose body is not JSON, e.g. when the
// request shape does not match what the model version expects.
var ErrMalformedResponse = errors.New("gemini: malformed response body")

// APIError is a non-success HTTP status from the provider.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini: upstream status %d", e.StatusCode)
}

const firstTextPath = "candidates.0.content.parts.0.text"

// Result holds the first candidate's first text part, when there is one.
type Result struct {
	text string
	ok   bool
}

func TextResult(text string) Result {
	return Result{text: text, ok: strings.TrimSpace(text) != ""}
}

// Text reports the reply and whether the provider returned any.
func (r Result) Text() (string, bool) { return r.text, r.ok }

// Or returns the text, or fallback when no content came back.
func (r Result) Or(fallback string) string {
	if !r.ok {
		return fallback
	}
	return r.text
}

// ParseResponse extracts the first candidate's first text part.
func ParseResponse(body []byte) (Result, error) {
	if !gjson.ValidBytes(body) {
		return Result{}, ErrMalformedResponse
	}
	v := gjson.GetBytes(body, firstTextPath)
	if !v.Exists() || v.Type != gjson.String {
		return Result{}, nil
	}
	return TextResult(v.String()), nil
}
