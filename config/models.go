package config

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

// Config holds application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Postgres   PostgresConfig   `mapstructure:"postgres"`
	HTTP       HTTPConfig       `mapstructure:"http"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Repository RepositoryConfig `mapstructure:"repository"`
	Session    SessionConfig    `mapstructure:"session"`
	Users      UsersConfig      `mapstructure:"users"`
}

// Validate ensures required fields are present.
func (c Config) Validate() error {
	if c.Server.Port == 0 {
		return errors.New("server.port is required")
	}
	if c.Repository.Backend == "postgres" {
		if c.Postgres.User == "" || c.Postgres.Password == "" || c.Postgres.DBName == "" {
			return errors.New("postgres credentials are required")
		}
		if c.Postgres.Host == "" {
			return errors.New("postgres.host is required")
		}
	}
	if c.Session.Secret == "" {
		return errors.New("session.secret is required")
	}
	if c.Session.StorageKey == "" {
		return errors.New("session.storage_key is required")
	}
	if c.Session.LoginDelay < 0 {
		return errors.New("session.login_delay must not be negative")
	}
	if c.Session.IdleTTL < 0 {
		return errors.New("session.idle_ttl must not be negative")
	}
	if c.Session.MaxContexts < 0 {
		return errors.New("session.max_contexts must not be negative")
	}
	if len(c.Users.PageSizes) == 0 {
		return errors.New("users.page_sizes is required")
	}
	for _, s := range c.Users.PageSizes {
		if s <= 0 {
			return fmt.Errorf("users.page_sizes: invalid size %d", s)
		}
	}
	if !slices.Contains(c.Users.PageSizes, c.Users.DefaultPageSize) {
		return fmt.Errorf("users.default_page_size %d is not in users.page_sizes", c.Users.DefaultPageSize)
	}
	return nil
}

// ServerAddr returns host:port for HTTP server binding.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ServerConfig contains HTTP server options.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// HTTPConfig contains transport settings.
type HTTPConfig struct {
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// LoggingConfig contains logger preferences.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// RepositoryConfig selects the storage backend: memory or postgres.
type RepositoryConfig struct {
	Backend string `mapstructure:"backend"`
}

// SessionConfig configures browser sessions and the auth gate.
type SessionConfig struct {
	CookieName     string        `mapstructure:"cookie_name"`
	Secret         string        `mapstructure:"secret"`
	CookieTTL      time.Duration `mapstructure:"cookie_ttl"`
	StorageKey     string        `mapstructure:"storage_key"`
	LoginDelay     time.Duration `mapstructure:"login_delay"`
	LoginRoute     string        `mapstructure:"login_route"`
	ExcludedRoutes []string      `mapstructure:"excluded_routes"`
	IdleTTL        time.Duration `mapstructure:"idle_ttl"`
	MaxContexts    int           `mapstructure:"max_contexts"`
}

// UsersConfig configures the user listing.
type UsersConfig struct {
	PageSizes       []int `mapstructure:"page_sizes"`
	DefaultPageSize int   `mapstructure:"default_page_size"`
	Seed            bool  `mapstructure:"seed"`
}

// PostgresConfig describes database connection parameters.
type PostgresConfig struct {
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port"`
	User           string        `mapstructure:"user"`
	Password       string        `mapstructure:"password"`
	DBName         string        `mapstructure:"db_name"`
	SSLMode        string        `mapstructure:"ssl_mode"`
	MigrationsDir  string        `mapstructure:"migrations_dir"`
	MigrateTimeout time.Duration `mapstructure:"migrate_timeout"`
	QueryTimeout   time.Duration `mapstructure:"query_timeout"`
	MaxConns       int32         `mapstructure:"max_conns"`
	MinConns       int32         `mapstructure:"min_conns"`
}

// DSN returns a Postgres connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.DBName, p.SSLMode,
	)
}
