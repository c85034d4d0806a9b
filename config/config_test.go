package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "0.0.0.0:8080", cfg.ServerAddr())
	require.Equal(t, "memory", cfg.Repository.Backend)
	require.Equal(t, 800*time.Millisecond, cfg.Session.LoginDelay)
	require.Equal(t, "auth_user", cfg.Session.StorageKey)
	require.Equal(t, "/login", cfg.Session.LoginRoute)
	require.Equal(t, []string{"/login", "/logout", "/password-reset", "/healthz"}, cfg.Session.ExcludedRoutes)
	require.Equal(t, 30*time.Minute, cfg.Session.IdleTTL)
	require.Equal(t, 10000, cfg.Session.MaxContexts)
	require.Equal(t, []int{6, 10, 20, 50}, cfg.Users.PageSizes)
	require.Equal(t, 6, cfg.Users.DefaultPageSize)
	require.True(t, cfg.Users.Seed)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SESSION_LOGIN_DELAY", "10ms")
	t.Setenv("REPOSITORY_BACKEND", "postgres")
	t.Setenv("SESSION_MAX_CONTEXTS", "25")

	cfg, err := load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, 10*time.Millisecond, cfg.Session.LoginDelay)
	require.Equal(t, "postgres", cfg.Repository.Backend)
	require.Equal(t, 25, cfg.Session.MaxContexts)
	require.Contains(t, cfg.Postgres.DSN(), "dbname=users_console_db")
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LOGGING_LEVEL=warn\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("LOGGING_LEVEL") })

	cfg, err := load(path)
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadRejectsUnknownDefaultPageSize(t *testing.T) {
	t.Setenv("USERS_DEFAULT_PAGE_SIZE", "7")

	_, err := load(filepath.Join(t.TempDir(), "missing.env"))
	require.ErrorContains(t, err, "users.default_page_size 7")
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server:     ServerConfig{Port: 8080},
			Repository: RepositoryConfig{Backend: "memory"},
			Session:    SessionConfig{Secret: "s", StorageKey: "auth_user"},
			Users:      UsersConfig{PageSizes: []int{5, 10}, DefaultPageSize: 5},
		}
	}

	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		msg    string
	}{
		{name: "port", mutate: func(c *Config) { c.Server.Port = 0 }, msg: "server.port is required"},
		{name: "postgres creds", mutate: func(c *Config) { c.Repository.Backend = "postgres" }, msg: "postgres credentials are required"},
		{name: "secret", mutate: func(c *Config) { c.Session.Secret = "" }, msg: "session.secret is required"},
		{name: "storage key", mutate: func(c *Config) { c.Session.StorageKey = "" }, msg: "session.storage_key is required"},
		{name: "delay", mutate: func(c *Config) { c.Session.LoginDelay = -time.Second }, msg: "session.login_delay must not be negative"},
		{name: "idle ttl", mutate: func(c *Config) { c.Session.IdleTTL = -time.Minute }, msg: "session.idle_ttl must not be negative"},
		{name: "max contexts", mutate: func(c *Config) { c.Session.MaxContexts = -1 }, msg: "session.max_contexts must not be negative"},
		{name: "no sizes", mutate: func(c *Config) { c.Users.PageSizes = nil }, msg: "users.page_sizes is required"},
		{name: "bad size", mutate: func(c *Config) { c.Users.PageSizes = []int{5, 0} }, msg: "invalid size 0"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			require.ErrorContains(t, cfg.Validate(), tt.msg)
		})
	}
}
