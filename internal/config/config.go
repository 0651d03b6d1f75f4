package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Alexsey111/bloggpt/internal/generator"
	"github.com/Alexsey111/bloggpt/pkg/llm"
	"github.com/Alexsey111/bloggpt/pkg/news"

	"gopkg.in/yaml.v3"
)

var ErrMissingSecret = errors.New("required secret is not set")

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Logging    LoggingConfig    `yaml:"logging"`
	News       NewsConfig       `yaml:"news"`
	Generation GenerationConfig `yaml:"generation"`

	OpenAIAPIKey   string `yaml:"-"`
	CurrentsAPIKey string `yaml:"-"`
}

type ServerConfig struct {
	Host                   string   `yaml:"host"`
	Port                   int      `yaml:"port"`
	AllowedOrigins         []string `yaml:"allowed_origins"`
	ShutdownTimeoutSeconds int      `yaml:"shutdown_timeout_seconds"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type NewsConfig struct {
	BaseURL        string `yaml:"base_url"`
	Language       string `yaml:"language"`
	Limit          int    `yaml:"limit"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type GenerationConfig struct {
	Model              string `yaml:"model"`
	generator.Settings `yaml:",inline"`
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Host:                   "0.0.0.0",
			Port:                   8000,
			AllowedOrigins:         []string{"http://localhost:3000"},
			ShutdownTimeoutSeconds: 10,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		News: NewsConfig{
			BaseURL:        news.DefaultCurrentsURL,
			Language:       "en",
			Limit:          generator.DefaultNewsLimit,
			TimeoutSeconds: 10,
		},
		Generation: GenerationConfig{
			Model:    llm.DefaultModel,
			Settings: generator.DefaultSettings(),
		},
	}
}

// Load reads a YAML config file, merges it over defaults, then applies the
// environment. If the file does not exist, defaults are used without error.
// Both API keys come only from the environment; a missing one is fatal.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("invalid config file %s: %w", path, err)
			}
		case os.IsNotExist(err):
			slog.Info("no config file found, using defaults", "path", path)
		default:
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil || p <= 0 || p > 65535 {
			return fmt.Errorf("invalid PORT %q", port)
		}
		c.Server.Port = p
	}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		c.Server.AllowedOrigins = append(c.Server.AllowedOrigins, frontendURL)
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}

	c.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	if c.OpenAIAPIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY: %w", ErrMissingSecret)
	}

	c.CurrentsAPIKey = os.Getenv("CURRENTS_API_KEY")
	if c.CurrentsAPIKey == "" {
		return fmt.Errorf("CURRENTS_API_KEY: %w", ErrMissingSecret)
	}

	return nil
}

func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c Config) NewsTimeout() time.Duration {
	return time.Duration(c.News.TimeoutSeconds) * time.Second
}

func (c Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.Server.ShutdownTimeoutSeconds) * time.Second
}

func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Logging.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
