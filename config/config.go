package config

import (
	"fmt"
	"time"

	"github.com/diacare/identity-service/pkg/configparser"
)

// Config contains all configuration variables of the application
type (
	Config struct {
		Server    ServerConfig
		Database  DatabaseConfig
		Auth      Auth
		RateLimit RateLimitConfig
		CORS      CORSConfig

		LogLevel string `env:"LOG_LEVEL" default:"DEBUG"`
	}

	ServerConfig struct {
		Host string `env:"SERVER_HOST" default:"0.0.0.0"`
		Port string `env:"SERVER_PORT" default:"8080"`
	}

	DatabaseConfig struct {
		Host     string `env:"DATABASE_HOST" default:"localhost"`
		Port     string `env:"DATABASE_PORT" default:"5432"`
		User     string `env:"DATABASE_USER" default:"diacare_user"`
		Password string `env:"DATABASE_PASSWORD" default:"diacare_pass"`
		Database string `env:"DATABASE_DATABASE" default:"diacare_db"`

		MaxConns        int32         `env:"DATABASE_MAXCONNS" default:"20"`
		MinConns        int32         `env:"DATABASE_MINCONNS" default:"2"`
		MaxConnLifetime time.Duration `env:"DATABASE_MAXCONNLIFETIME" default:"30m"`
		MaxConnIdleTime time.Duration `env:"DATABASE_MAXCONNIDLETIME" default:"5m"`
	}

	Auth struct {
		AccessTokenTTL  time.Duration `env:"AUTH_ACCESS_TOKEN_TTL" default:"15m"`
		RefreshTokenTTL time.Duration `env:"AUTH_REFRESH_TOKEN_TTL" default:"168h"`

		// Access and refresh tokens are signed with independent secrets so a
		// leaked refresh secret cannot mint access tokens, and vice versa.
		JWTAccessSecret  string `env:"AUTH_JWT_ACCESS_SECRET" default:"accesssecretkey"`
		JWTRefreshSecret string `env:"AUTH_JWT_REFRESH_SECRET" default:"refreshsecretkey"`
	}

	RateLimitConfig struct {
		GeneralRPM  int `env:"RATELIMIT_GENERAL_RPM" default:"100"`
		LoginRPM    int `env:"RATELIMIT_LOGIN_RPM" default:"5"`
		RegisterRPM int `env:"RATELIMIT_REGISTER_RPM" default:"3"`
	}

	CORSConfig struct {
		// Comma-separated list of allowed origins. Empty means all origins.
		AllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" default:""`
	}
)

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

func NewConfig(filepath string) (*Config, error) {
	cfg := &Config{}

	// Loading enviromental variables and parsing to config struct.
	if err := configparser.LoadAndParseYaml(filepath, cfg); err != nil {
		return nil, fmt.Errorf("failed to load and parse config: %w", err)
	}

	return cfg, nil
}
