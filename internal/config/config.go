package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"ai_manager_backend/pkg/utils"

	"gopkg.in/yaml.v3"
)

// Store drivers.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config is the server configuration, read from an optional YAML file and
// then overridden by environment variables.
type Config struct {
	Port               string   `yaml:"port"`
	LogLevel           string   `yaml:"logLevel"`
	LogFormat          string   `yaml:"logFormat"` // console or json
	CORSAllowedOrigins []string `yaml:"corsAllowedOrigins"`

	OpenAIAPIKey         string  `yaml:"openaiApiKey"`
	OpenAIBaseURL        string  `yaml:"openaiBaseURL"`
	OpenAIModel          string  `yaml:"openaiModel"`
	OpenAIMaxTokens      int     `yaml:"openaiMaxTokens"`
	OpenAITemperature    float64 `yaml:"openaiTemperature"`
	OpenAITimeoutSeconds int     `yaml:"openaiTimeoutSeconds"`

	StoreDriver  string `yaml:"storeDriver"`
	DatabaseURL  string `yaml:"databaseURL"`
	SeedDemoData bool   `yaml:"seedDemoData"`

	RedisAddr                string `yaml:"redisAddr"`
	RedisPassword            string `yaml:"redisPassword"`
	AIChatRateLimitPerMinute int    `yaml:"aiChatRateLimitPerMinute"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Port:                     "5000",
		LogLevel:                 "info",
		LogFormat:                "console",
		CORSAllowedOrigins:       []string{"http://localhost:3000", "http://localhost:3001"},
		OpenAIBaseURL:            "https://api.openai.com/v1",
		OpenAIModel:              "gpt-3.5-turbo",
		OpenAIMaxTokens:          500,
		OpenAITemperature:        0.7,
		OpenAITimeoutSeconds:     60,
		StoreDriver:              DriverMemory,
		SeedDemoData:             true,
		AIChatRateLimitPerMinute: 30,
	}
}

// Load builds the configuration. A missing file at path is not an error;
// an empty path skips the file entirely.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			utils.LogDebug("Config file not found, using defaults and environment", map[string]interface{}{"path": path})
		case err != nil:
			return cfg, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	// Override with environment variables
	cfg.Port = utils.Getenv("PORT", cfg.Port)
	cfg.LogLevel = utils.Getenv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = utils.Getenv("LOG_FORMAT", cfg.LogFormat)
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		cfg.CORSAllowedOrigins = splitList(v)
	}
	cfg.OpenAIAPIKey = utils.Getenv("OPENAI_API_KEY", cfg.OpenAIAPIKey)
	cfg.OpenAIBaseURL = utils.Getenv("OPENAI_BASE_URL", cfg.OpenAIBaseURL)
	cfg.OpenAIModel = utils.Getenv("OPENAI_MODEL", cfg.OpenAIModel)
	cfg.OpenAIMaxTokens = utils.GetenvInt("OPENAI_MAX_TOKENS", cfg.OpenAIMaxTokens)
	cfg.OpenAITemperature = utils.GetenvFloat("OPENAI_TEMPERATURE", cfg.OpenAITemperature)
	cfg.OpenAITimeoutSeconds = utils.GetenvInt("OPENAI_TIMEOUT_SECONDS", cfg.OpenAITimeoutSeconds)
	cfg.StoreDriver = strings.ToLower(utils.Getenv("STORE_DRIVER", cfg.StoreDriver))
	cfg.DatabaseURL = utils.Getenv("DATABASE_URL", cfg.DatabaseURL)
	cfg.SeedDemoData = utils.GetenvBool("SEED_DEMO_DATA", cfg.SeedDemoData)
	cfg.RedisAddr = utils.Getenv("REDIS_ADDR", cfg.RedisAddr)
	cfg.RedisPassword = utils.Getenv("REDIS_PASSWORD", cfg.RedisPassword)
	cfg.AIChatRateLimitPerMinute = utils.GetenvInt("AI_CHAT_RATE_LIMIT_PER_MINUTE", cfg.AIChatRateLimitPerMinute)

	if err := validateConfig(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func validateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.Port) == "" {
		return errors.New("config port is required")
	}
	switch cfg.StoreDriver {
	case DriverMemory:
	case DriverPostgres, DriverSQLite:
		if strings.TrimSpace(cfg.DatabaseURL) == "" {
			return fmt.Errorf("DATABASE_URL is required for store driver %q", cfg.StoreDriver)
		}
	default:
		return fmt.Errorf("unknown store driver %q (expected memory, postgres or sqlite)", cfg.StoreDriver)
	}
	if cfg.OpenAIMaxTokens <= 0 {
		return errors.New("openai max tokens must be positive")
	}
	if cfg.OpenAITemperature < 0 || cfg.OpenAITemperature > 2 {
		return errors.New("openai temperature must be between 0 and 2")
	}
	if cfg.RedisAddr != "" && cfg.AIChatRateLimitPerMinute <= 0 {
		return errors.New("AI chat rate limit must be positive when redis is configured")
	}
	return nil
}

// AIEnabled reports whether a chat model credential is configured.
func (c Config) AIEnabled() bool {
	return strings.TrimSpace(c.OpenAIAPIKey) != ""
}

// OpenAITimeout is the chat completion client timeout.
func (c Config) OpenAITimeout() time.Duration {
	return time.Duration(c.OpenAITimeoutSeconds) * time.Second
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
