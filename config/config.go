package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Bunflow specifics
	SQLite         SQLiteConfig
	Parser         ParserConfig
	Reminder       ReminderConfig
	Telegram       TelegramConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type SQLiteConfig struct {
	Path          string
	BusyTimeoutMS int
}

type ParserConfig struct {
	Timezone string
}

// ReminderConfig selects the reminder backend. Mode is "local" (in-process
// timers, optionally delivering through Telegram) or "gcal" (Google
// Calendar events).
type ReminderConfig struct {
	Mode string
}

type TelegramConfig struct {
	BotToken string
	ChatID   int64
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Storage
	cfg.SQLite.Path = viper.GetString("sqlite.path")
	cfg.SQLite.BusyTimeoutMS = viper.GetInt("sqlite.busy_timeout_ms")
	if dbPath := viper.GetString("bunflow_db_path"); dbPath != "" {
		cfg.SQLite.Path = dbPath
	}

	// Quick-add parser
	cfg.Parser.Timezone = viper.GetString("parser.timezone")
	if tz := viper.GetString("bunflow_timezone"); tz != "" {
		cfg.Parser.Timezone = tz
	}

	// Reminders
	cfg.Reminder.Mode = viper.GetString("reminder.mode")

	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.ChatID = viper.GetInt64("telegram.chat_id")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	if cfg.Reminder.Mode != "local" && cfg.Reminder.Mode != "gcal" {
		return nil, fmt.Errorf("invalid reminder.mode %q (want local or gcal)", cfg.Reminder.Mode)
	}
	if cfg.Reminder.Mode == "gcal" && cfg.GoogleCalendar.CredentialsPath == "" {
		return nil, fmt.Errorf("reminder.mode is gcal but google_calendar.credentials_path is not set")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.rate_limit_per_min", 300)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("sqlite.path", "bunflow.db")
	viper.SetDefault("sqlite.busy_timeout_ms", 5000)
	viper.SetDefault("parser.timezone", "UTC")
	viper.SetDefault("reminder.mode", "local")
	viper.SetDefault("google_calendar.calendar_id", "primary")
}
