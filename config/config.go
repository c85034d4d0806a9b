// Package config loads application configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envFile = "config/.env"

// NewConfig loads configuration from environment using viper with typed defaults and validation.
func NewConfig() (*Config, error) {
	return load(envFile)
}

func load(path string) (*Config, error) {
	v := viper.New()
	if envMap, err := godotenv.Read(path); err == nil {
		for k, v := range envMap {
			if _, exists := os.LookupEnv(k); !exists {
				_ = os.Setenv(k, v)
			}
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindEnvs(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "debug")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("http.request_timeout", 3*time.Second)

	v.SetDefault("repository.backend", "memory")

	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "postgres")
	v.SetDefault("postgres.password", "postgres")
	v.SetDefault("postgres.db_name", "users_console_db")
	v.SetDefault("postgres.ssl_mode", "disable")
	v.SetDefault("postgres.migrations_dir", "db/migrations")
	v.SetDefault("postgres.migrate_timeout", 10*time.Second)
	v.SetDefault("postgres.query_timeout", 2*time.Second)
	v.SetDefault("postgres.max_conns", 10)
	v.SetDefault("postgres.min_conns", 2)

	v.SetDefault("session.cookie_name", "console_ctx")
	v.SetDefault("session.secret", "change-me")
	v.SetDefault("session.cookie_ttl", 30*24*time.Hour)
	v.SetDefault("session.storage_key", "auth_user")
	v.SetDefault("session.login_delay", 800*time.Millisecond)
	v.SetDefault("session.login_route", "/login")
	v.SetDefault("session.excluded_routes", []string{"/login", "/logout", "/password-reset", "/healthz"})
	v.SetDefault("session.idle_ttl", 30*time.Minute)
	v.SetDefault("session.max_contexts", 10000)

	v.SetDefault("users.page_sizes", []int{6, 10, 20, 50})
	v.SetDefault("users.default_page_size", 6)
	v.SetDefault("users.seed", true)
}

func bindEnvs(v *viper.Viper) {
	keys := []string{
		"logging.level",
		"server.host",
		"server.port",
		"server.shutdown_timeout",
		"http.request_timeout",
		"repository.backend",
		"postgres.host",
		"postgres.port",
		"postgres.user",
		"postgres.password",
		"postgres.db_name",
		"postgres.ssl_mode",
		"postgres.migrations_dir",
		"postgres.migrate_timeout",
		"postgres.query_timeout",
		"postgres.max_conns",
		"postgres.min_conns",
		"session.cookie_name",
		"session.secret",
		"session.cookie_ttl",
		"session.storage_key",
		"session.login_delay",
		"session.login_route",
		"session.excluded_routes",
		"session.idle_ttl",
		"session.max_contexts",
		"users.page_sizes",
		"users.default_page_size",
		"users.seed",
	}

	for _, k := range keys {
		_ = v.BindEnv(k)
	}
}
