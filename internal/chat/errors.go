package chat

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyConversation = errors.New("conversation has no messages")
	ErrInvalidMessage    = errors.New("message role and content must be non-empty")
)

// Kind classifies a failed chat turn.
type Kind int

const (
	NoCredential Kind = iota + 1
	UpstreamFailure
	InternalFailure
)

func (k Kind) String() string {
	switch k {
	case NoCredential:
		return "no-credential"
	case UpstreamFailure:
		return "upstream-failure"
	case InternalFailure:
		return "internal-failure"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf extracts the Kind; anything that is not a *Error is an internal failure.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return InternalFailure
}
