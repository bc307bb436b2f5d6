package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	AppEnv                string `koanf:"app_env" validate:"required"`
	Port                  string `koanf:"port" validate:"required,numeric"`
	DBDriver              string `koanf:"db_driver" validate:"required,oneof=postgres mysql sqlite"`
	DBHost                string `koanf:"db_host"`
	DBPort                string `koanf:"db_port"`
	DBUser                string `koanf:"db_user"`
	DBPassword            string `koanf:"db_password"`
	DBName                string `koanf:"db_name" validate:"required"`
	DBSSLMode             string `koanf:"db_sslmode"`
	DBMaxOpenConns        int    `koanf:"db_max_open_conns" validate:"gte=0"`
	DBMaxIdleConns        int    `koanf:"db_max_idle_conns" validate:"gte=0"`
	DBLogLevel            string `koanf:"db_log_level" validate:"oneof=silent error warn info"`
	CORSAllowedOrigins    string `koanf:"cors_allowed_origins"`
	ValidateOnCreate      bool   `koanf:"validate_on_create"`
	ServerReadTimeout     int    `koanf:"server_read_timeout" validate:"gt=0"`
	ServerWriteTimeout    int    `koanf:"server_write_timeout" validate:"gt=0"`
	ServerShutdownTimeout int    `koanf:"server_shutdown_timeout" validate:"gt=0"`
}

func defaults() *Config {
	return &Config{
		AppEnv:                "development",
		Port:                  "8080",
		DBDriver:              "postgres",
		DBHost:                "localhost",
		DBPort:                "5432",
		DBUser:                "postgres",
		DBName:                "posts",
		DBSSLMode:             "disable",
		DBMaxOpenConns:        10,
		DBMaxIdleConns:        5,
		DBLogLevel:            "warn",
		ValidateOnCreate:      true,
		ServerReadTimeout:     15,
		ServerWriteTimeout:    15,
		ServerShutdownTimeout: 10,
	}
}

// Load reads the process environment on top of the defaults. Keys are the
// lower-cased variable names, so DB_HOST fills DBHost. Empty variables keep
// their default.
func Load() (*Config, error) {
	k := koanf.New(".")

	provider := env.ProviderWithValue("", ".", func(key, value string) (string, interface{}) {
		if value == "" {
			return "", nil
		}
		return strings.ToLower(key), value
	})
	if err := k.Load(provider, nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := defaults()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// DatabaseDSN renders the connection string for the configured driver.
func (c *Config) DatabaseDSN() string {
	switch c.DBDriver {
	case "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
	case "sqlite":
		return c.DBName
	default:
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
	}
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func (c *Config) ReadTimeout() time.Duration {
	return time.Duration(c.ServerReadTimeout) * time.Second
}

func (c *Config) WriteTimeout() time.Duration {
	return time.Duration(c.ServerWriteTimeout) * time.Second
}

func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ServerShutdownTimeout) * time.Second
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS on commas, dropping blanks.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(c.CORSAllowedOrigins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
