package config

import (
	"fmt"
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

	// Parsing pipeline specifics
	Parser         ParserConfig
	NLP            NLPConfig
	GoogleCalendar GoogleCalendarConfig
	RateLimit      RateLimitConfig
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

type ParserConfig struct {
	// Timezone anchors relative date phrases ("by Friday").
	Timezone string
	// KeywordsPath optionally overrides the built-in keyword tables
	// with a YAML file. Empty keeps the defaults.
	KeywordsPath string
}

type NLPConfig struct {
	URL     string
	Timeout time.Duration
}

type GoogleCalendarConfig struct {
	Enabled         bool
	CredentialsPath string
	CalendarID      string
}

type RateLimitConfig struct {
	PerMin int
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
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Parsing pipeline
	cfg.Parser.Timezone = viper.GetString("parser.timezone")
	cfg.Parser.KeywordsPath = viper.GetString("parser.keywords_path")
	if keywordsPath := viper.GetString("parser_keywords_path"); keywordsPath != "" {
		cfg.Parser.KeywordsPath = keywordsPath
	}

	cfg.NLP.URL = viper.GetString("nlp.url")
	cfg.NLP.Timeout = viper.GetDuration("nlp.timeout")
	if nlpURL := viper.GetString("nlp_url"); nlpURL != "" {
		cfg.NLP.URL = nlpURL
	}
	if cfg.NLP.URL == "" {
		return nil, fmt.Errorf("nlp.url is required - the parser needs the NLP sidecar for fallback extraction")
	}

	cfg.GoogleCalendar.Enabled = viper.GetBool("google_calendar.enabled")
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}
	if cfg.GoogleCalendar.Enabled && cfg.GoogleCalendar.CredentialsPath == "" {
		return nil, fmt.Errorf("google_calendar.credentials_path is required when calendar export is enabled")
	}

	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("parser.timezone", "UTC")
	viper.SetDefault("nlp.url", "http://localhost:8090")
	viper.SetDefault("nlp.timeout", "10s")
	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("rate_limit.per_min", 60)
}
