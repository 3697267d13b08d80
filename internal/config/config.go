package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration for the trainer server.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logging  LoggingConfig  `toml:"logging"`
	Remote   RemoteConfig   `toml:"remote"`
	LLM      LLMConfig      `toml:"llm"`
	Sessions SessionsConfig `toml:"sessions"`
	Storage  StorageConfig  `toml:"storage"`
	Charts   ChartsConfig   `toml:"charts"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host               string   `toml:"host"`
	Port               int      `toml:"port"`
	CORSAllowedOrigins []string `toml:"cors_allowed_origins"`
	StaticFilesDir     string   `toml:"static_files_dir"`
	MaxConnections     int      `toml:"max_connections"`
	ReadTimeoutSeconds int      `toml:"read_timeout_seconds"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// RemoteConfig holds settings for the external scenario-generation endpoint.
// An empty or placeholder endpoint disables the remote path entirely.
type RemoteConfig struct {
	Endpoint       string `toml:"endpoint"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// LLMConfig holds settings for direct OpenAI-backed generation and chat.
type LLMConfig struct {
	APIKey            string  `toml:"api_key"`
	Model             string  `toml:"model"`
	MaxResponseTokens int     `toml:"max_response_tokens"`
	Temperature       float64 `toml:"temperature"`
}

// SessionsConfig holds training session lifecycle settings.
type SessionsConfig struct {
	TTLMinutes      int `toml:"ttl_minutes"`
	SweepMinutes    int `toml:"sweep_minutes"`
	MaxHistoryTurns int `toml:"max_history_turns"`
}

// StorageConfig holds settings for the settings/progress store.
type StorageConfig struct {
	Path string `toml:"path"`
}

// ChartsConfig holds airport chart lookup settings.
type ChartsConfig struct {
	CacheMinutes int `toml:"cache_minutes"`
}

// Default returns the configuration used when no file overrides are present.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:               "0.0.0.0",
			Port:               8080,
			CORSAllowedOrigins: []string{"*"},
			StaticFilesDir:     "web",
			MaxConnections:     256,
			ReadTimeoutSeconds: 30,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Remote: RemoteConfig{
			TimeoutSeconds: 20,
		},
		LLM: LLMConfig{
			Model:             "gpt-4",
			MaxResponseTokens: 250,
			Temperature:       0.75,
		},
		Sessions: SessionsConfig{
			TTLMinutes:      60,
			SweepMinutes:    10,
			MaxHistoryTurns: 50,
		},
		Storage: StorageConfig{
			Path: "trainer.db",
		},
		Charts: ChartsConfig{
			CacheMinutes: 60,
		},
	}
}

// Load reads the TOML file at path over the defaults. A missing file is not
// an error; the defaults are returned. OPENAI_API_KEY in the environment
// overrides the configured LLM key.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		cfg.LLM.APIKey = key
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Remote.TimeoutSeconds <= 0 {
		return fmt.Errorf("remote timeout must be positive, got %d", c.Remote.TimeoutSeconds)
	}
	if c.Sessions.TTLMinutes <= 0 {
		return fmt.Errorf("session TTL must be positive, got %d", c.Sessions.TTLMinutes)
	}
	return nil
}

// Addr returns the host:port the server listens on.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
