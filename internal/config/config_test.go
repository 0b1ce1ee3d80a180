package config

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("SLACK_BOT_TOKEN", "xoxb-test")
	t.Setenv("SLACK_SIGNING_SECRET", "secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "./mensa.db", cfg.DatabasePath)
	assert.Equal(t, "3000", cfg.Port)
	assert.Len(t, cfg.Menu.URLs, 2)
	assert.Equal(t, 30*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, 500*time.Millisecond, cfg.Fetch.MinInterval)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", loc.String())

	cutover, err := cfg.Cutover()
	require.NoError(t, err)
	assert.Equal(t, "14:30", cutover.String())

	notification, err := cfg.Notification()
	require.NoError(t, err)
	assert.Equal(t, cutover, notification)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("MENU_URLS", "http://a.example/, ,http://b.example/")
	t.Setenv("NOTIFICATION_TIME", "07:05")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("FETCH_TIMEOUT", "5s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"http://a.example/", "http://b.example/"}, cfg.Menu.URLs)
	assert.Equal(t, 5*time.Second, cfg.Fetch.Timeout)

	notification, err := cfg.Notification()
	require.NoError(t, err)
	assert.Equal(t, "07:05", notification.String())

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoad_MissingToken(t *testing.T) {
	t.Setenv("SLACK_BOT_TOKEN", "")
	require.NoError(t, os.Unsetenv("SLACK_BOT_TOKEN"))
	t.Setenv("SLACK_SIGNING_SECRET", "secret")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			LogLevel: "info",
			Menu: Menu{
				URLs:        []string{"http://a.example/"},
				Timezone:    "Europe/Berlin",
				CutoverTime: "14:30",
			},
			Fetch: Fetch{Timeout: time.Second},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "no urls", mutate: func(c *Config) { c.Menu.URLs = []string{" "} }, wantErr: "MENU_URLS"},
		{name: "bad timezone", mutate: func(c *Config) { c.Menu.Timezone = "Mars/Olympus" }, wantErr: "TIMEZONE"},
		{name: "bad cutover", mutate: func(c *Config) { c.Menu.CutoverTime = "25:00" }, wantErr: "CUTOVER_TIME"},
		{name: "bad notification", mutate: func(c *Config) { c.Menu.NotificationTime = "noon" }, wantErr: "NOTIFICATION_TIME"},
		{name: "bad level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: "LOG_LEVEL"},
		{name: "zero timeout", mutate: func(c *Config) { c.Fetch.Timeout = 0 }, wantErr: "FETCH_TIMEOUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
