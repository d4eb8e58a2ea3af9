// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env` file when
// present), loads them into structured Go types, and validates that
// required values are present so they can be reused across the
// application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for optional config blocks (e.g. observability).
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: triggers godotenv's autoload feature.
	// If a `.env` file exists, it gets loaded into process env
	// before any env var is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Env vars are read using the prefix TRIVIA_. After the prefix is removed
	the key is lowercased and "__" marks nesting:

		TRIVIA_SERVER__PORT         -> server.port         -> Config.Server.Port
		TRIVIA_DATABASE__SSL_MODE   -> database.ssl_mode   -> Config.Database.SSLMode

	Single underscores stay part of the key, matching the koanf tags below.
*/

// EnvPrefix is the prefix every configuration variable carries.
const EnvPrefix = "TRIVIA_"

// Config is the root configuration object for the application.
//
// Observability is a pointer so partial env overrides merge into the
// defaults from DefaultObservabilityConfig.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are whole seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required,min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
//
// ConnMaxLifetime and ConnMaxIdleTime are whole seconds.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required,oneof=disable allow prefer require verify-ca verify-full"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required,min=1"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"min=0"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"min=0"`
}

// DefaultConfig returns the configuration used for every key the
// environment does not set.
func DefaultConfig() *Config {
	return &Config{
		Primary: Primary{
			Env: "development",
		},
		Server: ServerConfig{
			Port:               "5000",
			ReadTimeout:        30,
			WriteTimeout:       30,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			Name:            "trivia",
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    2,
			ConnMaxLifetime: 3600,
			ConnMaxIdleTime: 300,
		},
		Observability: DefaultObservabilityConfig(),
	}
}

// listKeys are split on commas instead of being read as a single string.
var listKeys = map[string]bool{
	"server.cors_allowed_origins": true,
}

// envKey maps TRIVIA_DATABASE__SSL_MODE to database.ssl_mode.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

func envKeyValue(s, v string) (string, any) {
	key := envKey(s)
	if listKeys[key] {
		parts := strings.Split(v, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return key, parts
	}
	return key, v
}

// LoadConfig loads configuration from environment variables on top of
// DefaultConfig, validates it, and returns the resulting config.
func LoadConfig() (*Config, error) {
	// The "." is the key-path delimiter koanf uses to represent nesting.
	k := koanf.New(".")

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envKeyValue), nil); err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	// Unmarshal only overwrites keys that are present, so defaults survive
	// for everything the environment leaves out.
	mainConfig := DefaultConfig()
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Service name and environment always follow the primary config so
	// logs and traces are labelled consistently.
	mainConfig.Observability.ServiceName = "trivia-api"
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
