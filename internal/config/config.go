// Package config loads the bot settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/mensabot/mensa-bot/internal/domain"
	"github.com/mensabot/mensa-bot/internal/domain/dates"
)

type Config struct {
	SlackBotToken      string `env:"SLACK_BOT_TOKEN" env-required:"true"`
	SlackSigningSecret string `env:"SLACK_SIGNING_SECRET" env-required:"true"`
	DatabasePath       string `env:"DATABASE_PATH" env-default:"./mensa.db"`
	Port               string `env:"PORT" env-default:"3000"`
	LogLevel           string `env:"LOG_LEVEL" env-default:"info"`
	Menu               Menu
	Fetch              Fetch
}

// Menu holds where the menus come from and when they are announced.
type Menu struct {
	URLs             []string `env:"MENU_URLS" env-separator:"," env-default:"https://www.studentenwerk-magdeburg.de/mensen-cafeterien/mensa-unicampus/speiseplan-unten/,https://www.studentenwerk-magdeburg.de/mensen-cafeterien/mensa-unicampus/speiseplan-oben/"`
	Timezone         string   `env:"TIMEZONE" env-default:"Europe/Berlin"`
	CutoverTime      string   `env:"CUTOVER_TIME" env-default:"14:30"`
	NotificationTime string   `env:"NOTIFICATION_TIME"`
}

type Fetch struct {
	Timeout     time.Duration `env:"FETCH_TIMEOUT" env-default:"30s"`
	MinInterval time.Duration `env:"FETCH_MIN_INTERVAL" env-default:"500ms"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	// optional
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the values cleanenv cannot check on its own.
func (c *Config) Validate() error {
	urls := make([]string, 0, len(c.Menu.URLs))
	for _, url := range c.Menu.URLs {
		if url = strings.TrimSpace(url); url != "" {
			urls = append(urls, url)
		}
	}
	if len(urls) == 0 {
		return errors.New("MENU_URLS must contain at least one URL")
	}
	c.Menu.URLs = urls

	if _, err := c.Location(); err != nil {
		return err
	}
	if _, err := c.Cutover(); err != nil {
		return err
	}
	if _, err := c.Notification(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	if c.Fetch.Timeout <= 0 {
		return fmt.Errorf("FETCH_TIMEOUT must be positive, got %s", c.Fetch.Timeout)
	}
	if c.Fetch.MinInterval < 0 {
		return fmt.Errorf("FETCH_MIN_INTERVAL must not be negative, got %s", c.Fetch.MinInterval)
	}

	return nil
}

func (c *Config) Location() (*time.Location, error) {
	name := c.Menu.Timezone
	if name == "" {
		name = domain.DefaultTimezone
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", name, err)
	}
	return loc, nil
}

func (c *Config) Cutover() (dates.TimeOfDay, error) {
	t, err := dates.ParseTimeOfDay(c.Menu.CutoverTime)
	if err != nil {
		return dates.TimeOfDay{}, fmt.Errorf("invalid CUTOVER_TIME: %w", err)
	}
	return t, nil
}

// Notification falls back to the cutover when NOTIFICATION_TIME is unset.
func (c *Config) Notification() (dates.TimeOfDay, error) {
	if c.Menu.NotificationTime == "" {
		return c.Cutover()
	}

	t, err := dates.ParseTimeOfDay(c.Menu.NotificationTime)
	if err != nil {
		return dates.TimeOfDay{}, fmt.Errorf("invalid NOTIFICATION_TIME: %w", err)
	}
	return t, nil
}

func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return level, nil
}
