// Package config manages environment variables.
//
// It reads variables from the process environment (and an optional `.env`
// file), loads them into structured Go types and validates that required
// values are present so they can be reused across the application runtime.
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
	// Side-effect import: if a `.env` file exists it is loaded into the
	// process env before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Env vars are read using the SWIMMEET_ prefix. The prefix is removed and the
	rest is lowercased, nested struct fields are addressed with "." so

		SWIMMEET_SERVER.PORT=8080  ->  server.port  ->  Config.Server.Port
*/

// EnvPrefix is the prefix every configuration variable must carry.
const EnvPrefix = "SWIMMEET_"

const (
	// DriverPostgres stores records in PostgreSQL through a pgx pool.
	DriverPostgres = "postgres"

	// DriverMemory keeps every record in process memory. Data is lost on restart.
	DriverMemory = "memory"
)

// Config is the root configuration object for the application.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis"`
	Auth          AuthConfig           `koanf:"auth"`
	Integration   IntegrationConfig    `koanf:"integration"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are expressed in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`

	// RateLimit is the allowed number of requests per second per client IP.
	// Zero disables rate limiting.
	RateLimit float64 `koanf:"rate_limit" validate:"gte=0"`
}

// DatabaseConfig contains the store selection, PostgreSQL connection
// parameters and pool tuning.
//
// Connection fields are only required for the postgres driver.
type DatabaseConfig struct {
	Driver          string `koanf:"driver" validate:"omitempty,oneof=postgres memory"`
	Host            string `koanf:"host" validate:"required_unless=Driver memory"`
	Port            int    `koanf:"port" validate:"required_unless=Driver memory"`
	User            string `koanf:"user" validate:"required_unless=Driver memory"`
	Password        string `koanf:"password"`
	Name            string `koanf:"name" validate:"required_unless=Driver memory"`
	SSLMode         string `koanf:"ssl_mode" validate:"required_unless=Driver memory"`
	MaxOpenConns    int    `koanf:"max_open_conns"`
	MaxIdleConns    int    `koanf:"max_idle_conns"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time"`

	// AutoMigrate applies pending migrations when the server starts.
	AutoMigrate bool `koanf:"auto_migrate"`

	// SeedOnStart inserts the sample tournaments when the store has none.
	SeedOnStart bool `koanf:"seed_on_start"`
}

// IsMemory reports whether records are kept in process memory.
func (d DatabaseConfig) IsMemory() bool {
	return d.Driver == DriverMemory
}

// RedisConfig contains Redis connection details.
// Address is typically "host:port". Empty disables Redis and background jobs.
type RedisConfig struct {
	Address string `koanf:"address"`
}

// AuthConfig stores authentication-related secrets.
//
// When SecretKey is empty write routes are served without authentication.
type AuthConfig struct {
	SecretKey string `koanf:"secret_key"`
}

// IntegrationConfig holds credentials for third-party integrations.
type IntegrationConfig struct {
	ResendAPIKey string `koanf:"resend_api_key"`

	// NotificationEmail receives an announcement for every new tournament.
	NotificationEmail string `koanf:"notification_email" validate:"omitempty,email"`
}

// LoadConfig loads configuration from environment variables, unmarshals it into
// Config structs, validates it, applies defaults, and returns the resulting config.
//
// Behavior summary:
//   - Loads env vars with prefix SWIMMEET_
//   - Unmarshals into Config
//   - Validates required config blocks/fields
//   - Sets default driver and observability if missing
//   - Overrides observability service name + environment
//   - Validates observability config as well
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load initial env variables: %w", err)
	}

	mainConfig := &Config{}

	// "" means "unmarshal everything from the root".
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	if mainConfig.Database.Driver == "" {
		mainConfig.Database.Driver = DriverPostgres
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// It's a pointer field, so nil means "missing".
	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Service naming is not configurable so dashboards stay consistent.
	mainConfig.Observability.ServiceName = "swimmeet"
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
