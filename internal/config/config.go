package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultModel   = "gemini-1.5-flash"
	DefaultBaseURL = "https://generativelanguage.googleapis.com"

	// CredentialEnv names the variable holding the provider API key.
	CredentialEnv = "GEMINI_API_KEY"
)

// Config holds the server and client settings loaded from the environment.
type Config struct {
	Addr        string
	LogLevel    string
	LogJSON     bool
	Engine      string // rest | sdk | echo
	Model       string
	BaseURL     string
	StaticDir   string
	ScriptsDir  string
	CORSOrigins []string
	ServerURL   string // used by the terminal client
	PrefsPath   string
}

// Load reads .env when present, then the process environment.
func Load() *Config {
	// Try to load .env, but don't fail if it's missing
	_ = godotenv.Load()

	return &Config{
		Addr:        getEnv("ADDR", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogJSON:     strings.EqualFold(getEnv("LOG_JSON", "false"), "true"),
		Engine:      strings.ToLower(getEnv("CHAT_ENGINE", "rest")),
		Model:       getEnv("GEMINI_MODEL", DefaultModel),
		BaseURL:     strings.TrimRight(getEnv("GEMINI_BASE_URL", DefaultBaseURL), "/"),
		StaticDir:   getEnv("STATIC_DIR", ""),
		ScriptsDir:  getEnv("SCRIPTS_DIR", ""),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "")),
		ServerURL:   strings.TrimRight(getEnv("CLAWBUDDY_URL", "http://localhost:8080"), "/"),
		PrefsPath:   getEnv("CLAWBUDDY_PREFS", ""),
	}
}

// Credential yields the provider key. It is consulted on every request, so
// rotating the environment takes effect without a restart.
type Credential func() string

// EnvCredential reads key from the process environment on each call.
func EnvCredential(key string) Credential {
	return func() string { return strings.TrimSpace(os.Getenv(key)) }
}

// StaticCredential always returns key; useful for tests and one-off clients.
func StaticCredential(key string) Credential {
	return func() string { return key }
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
