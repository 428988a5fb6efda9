// Package config provides configuration management for the todo API.
// Values are layered: built-in defaults, then an optional TOML file, then
// environment variables (a `.env` file is loaded into the environment by main).
// All problems found while loading are collected and reported together, so a
// misconfigured deployment shows every mistake in one go.
package config

import (
	"fmt"
	// `os` package provides operating system functionalities, like reading environment variables.
	"os"
	"strconv"
	"strings"
	"time"

	// `toml` decodes the optional configuration file.
	"github.com/BurntSushi/toml"
)

// PoolConfig represents configuration for the database connection pool.
type PoolConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	DBName   string `toml:"name"`
	MaxSize  int    `toml:"max_size"`
}

// AuthConfig holds authentication-related configuration.
type AuthConfig struct {
	JWTSecret     string        `toml:"jwt_secret"`     // Secret key for signing JWTs
	TokenDuration time.Duration `toml:"token_duration"` // Lifetime of a session token
	Issuer        string        `toml:"issuer"`         // `iss` claim written and required on verify
	BcryptCost    int           `toml:"bcrypt_cost"`    // Work factor for password hashing
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port        string   `toml:"port"` // Port for the HTTP server
	CORSOrigins []string `toml:"cors_origins"`
}

// RateLimitConfig describes the two throttling policies.
// An empty ValkeyURI keeps counters in process memory.
type RateLimitConfig struct {
	Window    time.Duration `toml:"window"`
	General   int           `toml:"general"`
	Auth      int           `toml:"auth"`
	ValkeyURI string        `toml:"valkey_uri"`
}

// LogConfig selects the log level and output format ("text" or "json").
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// AppConfig is the top-level configuration structure for the application.
type AppConfig struct {
	DB        *PoolConfig      `toml:"database"`
	Auth      *AuthConfig      `toml:"auth"`
	Server    *ServerConfig    `toml:"server"`
	RateLimit *RateLimitConfig `toml:"rate_limit"`
	Log       *LogConfig       `toml:"log"`
}

const (
	minSecretLength = 16
	minPoolSize     = 1
	maxPoolSize     = 100
	// bcrypt.MinCost and bcrypt.MaxCost, repeated to keep config free of crypto imports.
	minBcryptCost = 4
	maxBcryptCost = 31
)

// Defaults returns a configuration with every optional value filled in.
// Required values (database user/name, JWT secret) are left empty.
func Defaults() *AppConfig {
	return &AppConfig{
		DB: &PoolConfig{
			Host:    "localhost",
			Port:    5432,
			MaxSize: 10,
		},
		Auth: &AuthConfig{
			TokenDuration: 24 * time.Hour,
			Issuer:        "todolist",
			BcryptCost:    12,
		},
		Server: &ServerConfig{
			Port:        "3001",
			CORSOrigins: []string{"*"},
		},
		RateLimit: &RateLimitConfig{
			Window:  time.Minute,
			General: 100,
			Auth:    10,
		},
		Log: &LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Helper function to override a string from an environment variable when it is set.
func envString(key string, target *string) {
	if value, exists := os.LookupEnv(key); exists {
		*target = value
	}
}

// Helper function to override an int from an environment variable.
// Appends an error if parsing fails and keeps the previous value.
func envInt(key string, target *int, errors *[]string) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return
	}
	valueInt, err := strconv.Atoi(strings.TrimSpace(valueStr))
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: expected integer, got '%s': %v", key, valueStr, err))
		return
	}
	*target = valueInt
}

// Helper function to override a time.Duration from an environment variable.
// `time.ParseDuration` expects a string like "15m", "24h".
func envDuration(key string, target *time.Duration, errors *[]string) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return
	}
	valueDuration, err := time.ParseDuration(strings.TrimSpace(valueStr))
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: expected duration string, got '%s': %v", key, valueStr, err))
		return
	}
	*target = valueDuration
}

// envList splits a comma separated variable, dropping empty items.
func envList(key string, target *[]string) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return
	}
	var items []string
	for _, item := range strings.Split(valueStr, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	*target = items
}

// applyEnv overlays environment variables on top of cfg.
func applyEnv(cfg *AppConfig, errors *[]string) {
	envString("DB_HOST", &cfg.DB.Host)
	envInt("DB_PORT", &cfg.DB.Port, errors)
	envString("DB_USER", &cfg.DB.User)
	envString("DB_PASSWORD", &cfg.DB.Password)
	envString("DB_NAME", &cfg.DB.DBName)
	envInt("DB_POOL_SIZE", &cfg.DB.MaxSize, errors)

	envString("JWT_SECRET", &cfg.Auth.JWTSecret)
	envDuration("JWT_EXPIRES_IN", &cfg.Auth.TokenDuration, errors)
	envString("JWT_ISSUER", &cfg.Auth.Issuer)
	envInt("BCRYPT_COST", &cfg.Auth.BcryptCost, errors)

	envString("PORT", &cfg.Server.Port)
	envList("CORS_ORIGINS", &cfg.Server.CORSOrigins)

	envDuration("RATE_LIMIT_WINDOW", &cfg.RateLimit.Window, errors)
	envInt("RATE_LIMIT_GENERAL", &cfg.RateLimit.General, errors)
	envInt("RATE_LIMIT_AUTH", &cfg.RateLimit.Auth, errors)
	envString("VALKEY_URI", &cfg.RateLimit.ValkeyURI)

	envString("LOG_LEVEL", &cfg.Log.Level)
	envString("LOG_FORMAT", &cfg.Log.Format)
}

// validate checks required values and ranges.
func validate(cfg *AppConfig, errors *[]string) {
	if cfg.DB.User == "" {
		*errors = append(*errors, "missing required setting: DB_USER (database.user)")
	}
	if cfg.DB.DBName == "" {
		*errors = append(*errors, "missing required setting: DB_NAME (database.name)")
	}
	if cfg.DB.MaxSize < minPoolSize {
		*errors = append(*errors, fmt.Sprintf("pool size %d is less than minimum %d", cfg.DB.MaxSize, minPoolSize))
		cfg.DB.MaxSize = minPoolSize
	}
	if cfg.DB.MaxSize > maxPoolSize {
		*errors = append(*errors, fmt.Sprintf("pool size %d is greater than maximum %d", cfg.DB.MaxSize, maxPoolSize))
		cfg.DB.MaxSize = maxPoolSize
	}

	switch {
	case cfg.Auth.JWTSecret == "":
		*errors = append(*errors, "missing required setting: JWT_SECRET (auth.jwt_secret)")
	case len(cfg.Auth.JWTSecret) < minSecretLength:
		*errors = append(*errors, fmt.Sprintf("JWT_SECRET must be at least %d bytes long", minSecretLength))
	}
	if cfg.Auth.TokenDuration <= 0 {
		*errors = append(*errors, "JWT_EXPIRES_IN must be positive")
	}
	if cfg.Auth.BcryptCost < minBcryptCost || cfg.Auth.BcryptCost > maxBcryptCost {
		*errors = append(*errors, fmt.Sprintf("BCRYPT_COST must be between %d and %d, got %d", minBcryptCost, maxBcryptCost, cfg.Auth.BcryptCost))
	}

	if cfg.RateLimit.Window <= 0 {
		*errors = append(*errors, "RATE_LIMIT_WINDOW must be positive")
	}
	if cfg.RateLimit.General < 1 || cfg.RateLimit.Auth < 1 {
		*errors = append(*errors, "rate limits must allow at least one request per window")
	}

	switch strings.ToLower(cfg.Log.Format) {
	case "text", "json":
	default:
		*errors = append(*errors, fmt.Sprintf("LOG_FORMAT must be 'text' or 'json', got '%s'", cfg.Log.Format))
	}
}

// LoadConfig builds the AppConfig from defaults, the optional TOML file at
// path (skipped when path is empty) and the environment.
func LoadConfig(path string) (*AppConfig, error) {
	// `errors` slice collects all validation/parsing errors during config loading.
	var errors []string

	cfg := Defaults()
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			errors = append(errors, fmt.Sprintf("failed to read config file %s: %v", path, err))
		}
	}

	applyEnv(cfg, &errors)
	validate(cfg, &errors)

	// If any errors were collected during loading, return a single aggregated error message.
	if len(errors) > 0 {
		return nil, fmt.Errorf("configuration errors:\n- %s", strings.Join(errors, "\n- "))
	}
	return cfg, nil
}
