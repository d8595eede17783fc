package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	AppName     = "snaplist"
	EnvFileName = "config.env"
)

// LoadEnvFile loads environment variables from the config file in the user's
// config directory. Errors are ignored since the file may not exist.
func LoadEnvFile() {
	configBase, err := os.UserConfigDir()
	if err != nil {
		return
	}
	configPath := filepath.Join(configBase, AppName, EnvFileName)
	_ = godotenv.Load(configPath)
}

// Config holds the runtime configuration read from the environment.
type Config struct {
	GeminiAPIKey     string
	OpenAIAPIKey     string
	OpenRouterAPIKey string
	OpenRouterModel  string
	DBPath           string
	AttemptTimeout   time.Duration
}

// FromEnv reads the configuration from environment variables.
func FromEnv() Config {
	cfg := Config{
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenRouterAPIKey: os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterModel:  os.Getenv("OPENROUTER_MODEL"),
		DBPath:           os.Getenv("SNAPLIST_DB_PATH"),
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "snaplist.db"
	}
	if secs, err := strconv.Atoi(os.Getenv("SNAPLIST_ATTEMPT_TIMEOUT_SECONDS")); err == nil && secs > 0 {
		cfg.AttemptTimeout = time.Duration(secs) * time.Second
	}
	return cfg
}

// MissingRequired returns the names of required variables that are not
// set. GEMINI_API_KEY is the only hard requirement: the primary provider
// must be available, the fallbacks are optional.
func (c Config) MissingRequired() []string {
	var missing []string
	if c.GeminiAPIKey == "" {
		missing = append(missing, "GEMINI_API_KEY")
	}
	return missing
}
