// Package widget is the chat widget state machine: visibility {open, closed},
// submission {idle, waiting} and the message log that is replayed in full on
// every submission.
package widget

import (
	"context"
	"strings"
	"sync"

	"github.com/varsilias/openclaw-setup/internal/session"
	"github.com/varsilias/openclaw-setup/pkg/types"
)

const (
	Greeting = "Hello! I'm ClawBuddy here to help you get OpenClaw set up nicely. What kind of computer are you using today?"
	// LostTrain is shown when the backend cannot be reached or answers with a non-2xx status.
	LostTrain = "Oh dear, I seem strictly to have lost my train of thought. Could you try asking me again?"
)

// Transport delivers the whole conversation and returns the model's reply.
type Transport interface {
	Send(ctx context.Context, history []types.Message) (types.Message, error)
}

type Option func(*Widget)

// WithScroller registers fn to run after every log mutation or visibility change.
func WithScroller(fn func()) Option {
	return func(w *Widget) { w.scroll = fn }
}

// WithGreeting replaces the opening model message.
func WithGreeting(text string) Option {
	return func(w *Widget) { w.greeting = text }
}

type Widget struct {
	transport Transport
	scroll    func()
	greeting  string

	mu      sync.Mutex
	log     *session.Log
	open    bool
	waiting bool
}

func New(t Transport, opts ...Option) *Widget {
	w := &Widget{transport: t, greeting: Greeting, open: true}
	for _, o := range opts {
		o(w)
	}
	w.log = session.NewLog(types.Message{Role: types.RoleModel, Content: w.greeting})
	return w
}

func (w *Widget) IsOpen() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.open
}

func (w *Widget) Waiting() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.waiting
}

func (w *Widget) Messages() []types.Message { return w.log.Snapshot() }

func (w *Widget) Title() string { return w.log.Title() }

// Toggle flips visibility and returns the new state.
func (w *Widget) Toggle() bool {
	w.mu.Lock()
	w.open = !w.open
	open := w.open
	w.mu.Unlock()
	w.notify()
	return open
}

// Begin appends the trimmed input as a user message and enters the waiting
// state. It returns the history to send, or ok=false when the input is blank or
// a submission is already outstanding.
func (w *Widget) Begin(input string) (history []types.Message, ok bool) {
	text := strings.TrimSpace(input)
	w.mu.Lock()
	if text == "" || w.waiting {
		w.mu.Unlock()
		return nil, false
	}
	w.waiting = true
	w.log.Append(types.Message{Role: types.RoleUser, Content: text})
	history = w.log.Snapshot()
	w.mu.Unlock()

	w.notify()
	return history, true
}

// Complete appends exactly one model message and returns to idle. A non-nil
// err yields the LostTrain message. Calls made while idle are ignored.
func (w *Widget) Complete(reply types.Message, err error) (types.Message, bool) {
	msg := types.Message{Role: types.RoleModel, Content: reply.Content}
	if err != nil {
		msg.Content = LostTrain
	}

	w.mu.Lock()
	if !w.waiting {
		w.mu.Unlock()
		return types.Message{}, false
	}
	w.log.Append(msg)
	w.waiting = false
	w.mu.Unlock()

	w.notify()
	return msg, true
}

// Submit runs a whole round trip synchronously. Blank input or a pending
// submission returns ok=false without touching the transport.
func (w *Widget) Submit(ctx context.Context, input string) (types.Message, bool) {
	history, ok := w.Begin(input)
	if !ok {
		return types.Message{}, false
	}
	reply, err := w.transport.Send(ctx, history)
	return w.Complete(reply, err)
}

func (w *Widget) notify() {
	if w.scroll != nil {
		w.scroll()
	}
}
