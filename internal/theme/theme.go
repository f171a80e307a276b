// Package theme keeps the light/dark preference in client storage and mirrors it
// onto the document "dark" flag.
package theme

import (
	"fmt"

	"github.com/varsilias/openclaw-setup/internal/config"
	"github.com/varsilias/openclaw-setup/internal/platform"
)

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// DarkFlag is the document flag toggled alongside the preference.
const DarkFlag = "dark"

func (t Theme) Opposite() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

type Toggle struct {
	env     platform.Environment
	storage platform.Storage
	doc     platform.Document
	current Theme
}

// Load resolves the stored choice and applies it to the document. Any stored
// value other than "dark" means light; the environment's colour scheme only
// decides when nothing is stored.
func Load(env platform.Environment, storage platform.Storage, doc platform.Document) *Toggle {
	t := &Toggle{env: env, storage: storage, doc: doc, current: Light}
	stored, ok := storage.Get(config.ThemeKey)
	switch {
	case ok:
		if Theme(stored) == Dark {
			t.current = Dark
		}
	case env.PrefersDarkScheme():
		t.current = Dark
	}
	t.apply()
	return t
}

func (t *Toggle) Current() Theme { return t.current }

// Flip switches the theme, persists it and updates the document flag.
func (t *Toggle) Flip() (Theme, error) {
	next := t.current.Opposite()
	if err := t.storage.Set(config.ThemeKey, string(next)); err != nil {
		return t.current, fmt.Errorf("persist theme: %w", err)
	}
	t.current = next
	t.apply()
	return next, nil
}

func (t *Toggle) apply() {
	t.doc.SetFlag(DarkFlag, t.current == Dark)
}
