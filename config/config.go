package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Workspace assistant specifics
	Storage        StorageConfig
	Assistant      AssistantConfig
	Telegram       TelegramConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	Enabled bool
	PerMin  int
}

type StorageConfig struct {
	SQLitePath string
	// SeedFile is an optional YAML fixture loaded into an empty workspace at startup.
	SeedFile string
}

type AssistantConfig struct {
	Timezone     string
	TimelineDays int
	MaxListItems int
}

// Location resolves Timezone, which Load has already validated.
func (c AssistantConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
	// UserID pins every chat to one workspace user.
	UserID string
	// NgrokAPI is the ngrok local API base used to discover a webhook URL
	// when WebhookURL is empty, e.g. http://ngrok:4040.
	NgrokAPI string
}

// Enabled reports whether the Telegram webhook should be wired.
func (c TelegramConfig) Enabled() bool {
	return c.BotToken != ""
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
	SyncUserID      string
	SyncDays        int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.Enabled = v.GetBool("rate_limit.enabled")
	cfg.RateLimit.PerMin = v.GetInt("rate_limit.per_min")

	// Storage & assistant
	cfg.Storage.SQLitePath = v.GetString("storage.sqlite_path")
	cfg.Storage.SeedFile = v.GetString("storage.seed_file")
	cfg.Assistant.Timezone = v.GetString("assistant.timezone")
	cfg.Assistant.TimelineDays = v.GetInt("assistant.timeline_days")
	cfg.Assistant.MaxListItems = v.GetInt("assistant.max_list_items")

	cfg.Telegram.BotToken = expandEnvVar(v, v.GetString("telegram.bot_token"))
	cfg.Telegram.WebhookURL = v.GetString("telegram.webhook_url")
	cfg.Telegram.UserID = v.GetString("telegram.user_id")
	cfg.Telegram.NgrokAPI = v.GetString("telegram.ngrok_api")
	if tgToken := v.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = v.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.SyncUserID = v.GetString("google_calendar.sync_user_id")
	cfg.GoogleCalendar.SyncDays = v.GetInt("google_calendar.sync_days")
	if googleCreds := v.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.per_min", 60)

	v.SetDefault("storage.sqlite_path", "data/workspace.db")
	v.SetDefault("assistant.timezone", "UTC")
	v.SetDefault("assistant.timeline_days", 30)
	v.SetDefault("assistant.max_list_items", 10)

	v.SetDefault("google_calendar.calendar_id", "primary")
	v.SetDefault("google_calendar.sync_days", 30)
}

func (c *Config) validate() error {
	if c.Storage.SQLitePath == "" {
		return errors.New("storage.sqlite_path is required")
	}
	if _, err := time.LoadLocation(c.Assistant.Timezone); err != nil {
		return fmt.Errorf("assistant.timezone %q: %w", c.Assistant.Timezone, err)
	}
	if c.Assistant.TimelineDays <= 0 {
		return fmt.Errorf("assistant.timeline_days must be positive, got %d", c.Assistant.TimelineDays)
	}
	if c.Assistant.MaxListItems <= 0 {
		return fmt.Errorf("assistant.max_list_items must be positive, got %d", c.Assistant.MaxListItems)
	}
	if c.RateLimit.Enabled && c.RateLimit.PerMin <= 0 {
		return fmt.Errorf("rate_limit.per_min must be positive when enabled, got %d", c.RateLimit.PerMin)
	}
	return nil
}

// expandEnvVar expands values written as ${VAR_NAME}.
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	// Try viper first (handles both env and config)
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	// Try direct os.Getenv as last resort
	return os.Getenv(envVar)
}
