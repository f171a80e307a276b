// Package platform abstracts the client surroundings (platform string, colour-scheme
// preference, local storage and document flags) so callers never touch globals.
package platform

import (
	"net/http"
	"runtime"
	"strings"
	"sync"
)

// Environment exposes read-only facts about the client.
type Environment interface {
	PlatformSignal() string
	PrefersDarkScheme() bool
}

// Storage is client-local key/value storage.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Document holds document-level style flags such as "dark".
type Document interface {
	SetFlag(name string, on bool)
	HasFlag(name string) bool
}

// Memory implements every interface in this package in memory.
type Memory struct {
	Signal string
	Dark   bool

	mu     sync.RWMutex
	values map[string]string
	flags  map[string]bool
}

func NewMemory(signal string, dark bool) *Memory {
	return &Memory{
		Signal: signal,
		Dark:   dark,
		values: make(map[string]string),
		flags:  make(map[string]bool),
	}
}

func (m *Memory) PlatformSignal() string  { return m.Signal }
func (m *Memory) PrefersDarkScheme() bool { return m.Dark }

func (m *Memory) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *Memory) SetFlag(name string, on bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if on {
		m.flags[name] = true
		return
	}
	delete(m.flags, name)
}

func (m *Memory) HasFlag(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.flags[name]
}

type requestEnv struct {
	ua   string
	dark bool
}

// FromRequest reads the platform signal from the User-Agent header and the
// colour-scheme preference from the Sec-CH-Prefers-Color-Scheme client hint.
func FromRequest(r *http.Request) Environment {
	return requestEnv{
		ua:   r.UserAgent(),
		dark: strings.EqualFold(strings.Trim(r.Header.Get("Sec-CH-Prefers-Color-Scheme"), `"`), "dark"),
	}
}

func (e requestEnv) PlatformSignal() string  { return e.ua }
func (e requestEnv) PrefersDarkScheme() bool { return e.dark }

type hostEnv struct {
	goos        string
	goarch      string
	prefersDark func() bool
}

// Host describes the machine this process runs on, spelled the way browsers
// report navigator.platform. prefersDark may be nil.
func Host(prefersDark func() bool) Environment {
	return hostEnv{goos: runtime.GOOS, goarch: runtime.GOARCH, prefersDark: prefersDark}
}

func (h hostEnv) PlatformSignal() string { return hostSignal(h.goos, h.goarch) }

func (h hostEnv) PrefersDarkScheme() bool {
	if h.prefersDark == nil {
		return false
	}
	return h.prefersDark()
}

func hostSignal(goos, goarch string) string {
	switch goos {
	case "windows":
		return "Win32"
	case "darwin":
		return "MacIntel"
	case "linux":
		if goarch == "amd64" {
			return "Linux x86_64"
		}
		return "Linux " + goarch
	default:
		return goos
	}
}
