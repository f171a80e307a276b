package models

import (
	"context"
	"errors"
)

var ErrUnknownModel = errors.New("unknown model")

// Manager lists the generation models the server may be configured with.
type Manager interface {
	List(ctx context.Context) ([]string, error)
	Healthy(ctx context.Context, model string) error
}

// Gemini models known to accept a systemInstruction block.
var GeminiModels = []string{
	"gemini-1.5-flash",
	"gemini-1.5-pro",
	"gemini-2.0-flash",
	"gemini-2.5-flash",
	"gemini-2.5-pro",
}

type StaticManager struct{ items []string }

func NewStaticManager(items []string) *StaticManager { return &StaticManager{items: items} }

func (m *StaticManager) List(ctx context.Context) ([]string, error) {
	return append([]string(nil), m.items...), nil
}

func (m *StaticManager) Healthy(ctx context.Context, model string) error {
	for _, x := range m.items {
		if x == model {
			return nil
		}
	}
	return ErrUnknownModel
}
