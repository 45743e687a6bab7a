package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Default locations of the optional config sources, relative to the working
// directory.
const (
	DefaultConfigFile = "config.yaml"
	DefaultEnvFile    = ".env"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig `koanf:"server"`
	Logger LoggerConfig `koanf:"log"`
	Auth   AuthConfig   `koanf:"auth"`
	Seed   SeedConfig   `koanf:"seed"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"` // "json" or "console"
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	APIKey   string `koanf:"apikey"`
	Required bool   `koanf:"required"`
}

// SeedConfig selects the products the store starts with. An empty File means
// the built-in set.
type SeedConfig struct {
	File string   `koanf:"file"`
	S3   S3Config `koanf:"s3"`
}

// S3Config holds AWS S3 configuration for seed files.
type S3Config struct {
	Enabled bool   `koanf:"enabled"`
	Bucket  string `koanf:"bucket"`
	Region  string `koanf:"region"`
	Prefix  string `koanf:"prefix"` // Path prefix within bucket (e.g., "seeds/")
}

// envKeys maps the recognised environment variables to config keys.
var envKeys = map[string]string{
	"HOST":             "server.host",
	"PORT":             "server.port",
	"SHUTDOWN_TIMEOUT": "server.shutdown_timeout",
	"LOG_LEVEL":        "log.level",
	"LOG_FORMAT":       "log.format",
	"API_KEY":          "auth.apikey",
	"API_KEY_REQUIRED": "auth.required",
	"SEED_FILE":        "seed.file",
	"SEED_S3_ENABLED":  "seed.s3.enabled",
	"SEED_S3_BUCKET":   "seed.s3.bucket",
	"SEED_S3_REGION":   "seed.s3.region",
	"SEED_S3_PREFIX":   "seed.s3.prefix",
}

func defaults() map[string]any {
	return map[string]any{
		"server.host":             "0.0.0.0",
		"server.port":             3000,
		"server.shutdown_timeout": "30s",
		"log.level":               "info",
		"log.format":              "json",
		"auth.apikey":             "",
		"auth.required":           false,
		"seed.file":               "",
		"seed.s3.enabled":         false,
		"seed.s3.bucket":          "",
		"seed.s3.region":          "us-east-1",
		"seed.s3.prefix":          "",
	}
}

// Load loads configuration from the default config and .env files and the
// process environment.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigFile, DefaultEnvFile)
}

// LoadFrom loads configuration in increasing priority: built-in defaults, the
// YAML file at configFile, the dotenv file at envFile, then the process
// environment. Missing files are skipped.
func LoadFrom(configFile, envFile string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if exists(configFile) {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configFile, err)
		}
	}

	if exists(envFile) {
		envFileMap, err := godotenv.Read(envFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read env file %s: %w", envFile, err)
		}

		values := make(map[string]any, len(envFileMap))
		for name, value := range envFileMap {
			if key, ok := envKeys[name]; ok && value != "" {
				values[key] = value
			}
		}

		if err := k.Load(confmap.Provider(values, "."), nil); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	envProvider := env.ProviderWithValue("", ".", func(name, value string) (string, any) {
		key, ok := envKeys[name]
		if !ok || value == "" {
			return "", nil
		}
		return key, value
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive: %s", c.Server.ShutdownTimeout)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	if c.Auth.Required && c.Auth.APIKey == "" {
		return errors.New("API key is required when API key auth is enabled")
	}

	if c.Seed.S3.Enabled {
		if c.Seed.S3.Bucket == "" {
			return errors.New("S3 bucket is required when S3 seeding is enabled")
		}
		if c.Seed.S3.Region == "" {
			return errors.New("S3 region is required when S3 seeding is enabled")
		}
	}

	return nil
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
