package platform

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStorage persists values as a flat JSON object on disk.
type FileStorage struct {
	path string

	mu     sync.Mutex
	values map[string]string
}

// DefaultPreferencesPath returns ~/.config/clawbuddy/preferences.json.
func DefaultPreferencesPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "clawbuddy", "preferences.json"), nil
}

// OpenFileStorage loads path if it exists. A missing or unreadable file starts empty.
func OpenFileStorage(path string) *FileStorage {
	fs := &FileStorage{path: path, values: make(map[string]string)}
	data, err := os.ReadFile(path)
	if err != nil {
		return fs
	}
	_ = json.Unmarshal(data, &fs.values)
	if fs.values == nil {
		fs.values = make(map[string]string)
	}
	return fs
}

func (f *FileStorage) Get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	return v, ok
}

func (f *FileStorage) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value

	if f.path == "" {
		return errors.New("file storage has no path")
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}
	data, err := json.MarshalIndent(f.values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write preferences file: %w", err)
	}
	return nil
}
