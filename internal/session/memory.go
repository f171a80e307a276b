// Package session holds the chat widget's in-memory message log. Nothing here
// outlives the process; a reload starts a fresh log.
package session

import (
	"strings"
	"sync"

	"github.com/varsilias/openclaw-setup/pkg/types"
)

// Log is an ordered, append-only sequence of messages.
type Log struct {
	mu   sync.RWMutex
	msgs []types.Message
}

func NewLog(seed ...types.Message) *Log {
	l := &Log{}
	l.msgs = append(l.msgs, seed...)
	return l
}

// Append adds m and returns the new length.
func (l *Log) Append(m types.Message) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.msgs = append(l.msgs, m)
	return len(l.msgs)
}

// Snapshot returns a copy of the log.
func (l *Log) Snapshot() []types.Message {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]types.Message, len(l.msgs))
	copy(out, l.msgs)
	return out
}

func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.msgs)
}

// Title derives a short label from the first user message.
func (l *Log) Title() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, m := range l.msgs {
		if m.Role == types.RoleUser {
			return clip(words(m.Content), 8)
		}
	}
	return ""
}

func words(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	parts := strings.Fields(s)
	if len(parts) <= 12 {
		return strings.Join(parts, " ")
	}
	return strings.Join(parts[:12], " ")
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n*2 {
		return s
	}
	return string(r[:n*2]) + "…"
}
