package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"gantt-timeline/pkg/timeline"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Gantt specifics
	Timeline       TimelineConfig
	Gantt          GanttConfig
	GoogleCalendar GoogleCalendarConfig
	ICS            ICSConfig
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
	Enabled        bool
	RequestsPerMin int
}

// TimelineConfig controls how charts are laid out.
type TimelineConfig struct {
	Timezone     string // IANA zone used to decide what "today" is
	DefaultScale string // day, week or month
	DayPadding   int    // days added on each side of a day-scale chart
}

type GanttConfig struct {
	MaxTasks        int
	LayoutCacheSize int
	DefaultColor    string
	MaxSpanDays     int
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

type ICSConfig struct {
	MaxOccurrences int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/gantt/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/gantt/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return fromViper(viper.GetViper())
}

func fromViper(v *viper.Viper) (*Config, error) {
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
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	// Timeline
	cfg.Timeline.Timezone = v.GetString("timeline.timezone")
	cfg.Timeline.DefaultScale = v.GetString("timeline.default_scale")
	cfg.Timeline.DayPadding = v.GetInt("timeline.day_padding")

	// Gantt board
	cfg.Gantt.MaxTasks = v.GetInt("gantt.max_tasks")
	cfg.Gantt.LayoutCacheSize = v.GetInt("gantt.layout_cache_size")
	cfg.Gantt.DefaultColor = v.GetString("gantt.default_color")
	cfg.Gantt.MaxSpanDays = v.GetInt("gantt.max_span_days")

	// Import sources
	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	if googleCreds := v.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}
	cfg.ICS.MaxOccurrences = v.GetInt("ics.max_occurrences")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if _, err := timeline.ParseScale(c.Timeline.DefaultScale); err != nil {
		return fmt.Errorf("timeline.default_scale: %w", err)
	}
	if c.Timeline.DayPadding < 0 {
		return fmt.Errorf("timeline.day_padding must not be negative, got %d", c.Timeline.DayPadding)
	}
	if c.Gantt.MaxTasks <= 0 {
		return fmt.Errorf("gantt.max_tasks must be positive, got %d", c.Gantt.MaxTasks)
	}
	if c.Gantt.LayoutCacheSize <= 0 {
		return fmt.Errorf("gantt.layout_cache_size must be positive, got %d", c.Gantt.LayoutCacheSize)
	}
	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMin <= 0 {
		return fmt.Errorf("rate_limit.requests_per_min must be positive when enabled")
	}
	return nil
}

func setDefaults() {
	applyDefaults(viper.GetViper())
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 120)

	v.SetDefault("timeline.timezone", "UTC")
	v.SetDefault("timeline.default_scale", "day")
	v.SetDefault("timeline.day_padding", timeline.DefaultDayPadding)

	v.SetDefault("gantt.max_tasks", 500)
	v.SetDefault("gantt.layout_cache_size", 128)
	v.SetDefault("gantt.default_color", "#4A90E2")
	v.SetDefault("gantt.max_span_days", 3660)

	v.SetDefault("google_calendar.calendar_id", "primary")
	v.SetDefault("ics.max_occurrences", 500)
}
