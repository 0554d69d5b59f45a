package config

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"time"

	"dhl-tracker/internal/core/proxy"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
// - oneof: space-separated list of accepted string values
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// Log holds the logging configuration.
	Log LogConfig `mapstructure:",squash"`

	// DHL holds the tracking page settings.
	DHL DHLConfig `mapstructure:",squash"`

	// Proxy holds the outbound proxy used for fetching tracking pages.
	Proxy ProxyConfig `mapstructure:",squash"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Level defines the logging verbosity (e.g., debug, info, error).
	Level string `mapstructure:"LOG_LEVEL" default:"info"`
	// File is an optional path for a rotated JSON log file.
	File string `mapstructure:"LOG_FILE"`
	// MaxSizeMB is the size at which the log file rotates.
	MaxSizeMB int `mapstructure:"LOG_MAX_SIZE_MB" default:"100"`
	// MaxBackups is the number of rotated files to keep.
	MaxBackups int `mapstructure:"LOG_MAX_BACKUPS" default:"7"`
	// MaxAgeDays is how long rotated files are kept.
	MaxAgeDays int `mapstructure:"LOG_MAX_AGE_DAYS" default:"30"`
}

// DHLConfig holds the DHL tracking page settings.
type DHLConfig struct {
	// TrackingURL is the base URL of the tracking page; the code is added as piececode.
	TrackingURL string `mapstructure:"DHL_TRACKING_URL" default:"https://www.dhl.de/int-verfolgen/" required:"true"`
	// Language is passed as the lang query parameter.
	Language string `mapstructure:"DHL_LANGUAGE" default:"en"`
	// Domain is passed as the domain query parameter.
	Domain string `mapstructure:"DHL_DOMAIN" default:"de"`
	// Fetcher selects how pages are retrieved: "http" or "browser".
	Fetcher string `mapstructure:"DHL_FETCHER" default:"http" oneof:"http browser"`
	// TimeoutSeconds bounds a single page fetch.
	TimeoutSeconds int `mapstructure:"HTTP_TIMEOUT_SECONDS" default:"20"`
}

// Timeout returns TimeoutSeconds as a duration.
func (c DHLConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ProxyConfig holds the outbound proxy settings.
type ProxyConfig struct {
	Enabled  bool   `mapstructure:"PROXY_ENABLED" default:"false"`
	Hostname string `mapstructure:"PROXY_HOSTNAME"`
	Port     int    `mapstructure:"PROXY_PORT"`
	Username string `mapstructure:"PROXY_USERNAME"`
	Password string `mapstructure:"PROXY_PASSWORD"`
}

// Settings converts the configuration into proxy.Settings.
func (c ProxyConfig) Settings() proxy.Settings {
	return proxy.Settings{
		Enabled:  c.Enabled,
		Hostname: c.Hostname,
		Port:     c.Port,
		Username: c.Username,
		Password: c.Password,
	}
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	processTags(v, &config)

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags binds every tagged field to its env var and registers its default in Viper.
func processTags(v *viper.Viper, config interface{}) {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			processTags(v, val.Field(i).Addr().Interface())
			continue
		}

		key := field.Tag.Get("mapstructure")
		if key == "" {
			continue
		}

		v.BindEnv(key)

		if defaultValue := field.Tag.Get("default"); defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
}

// validate checks required and oneof tags.
func validate(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		value := val.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validate(value.Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")

		if field.Tag.Get("required") == "true" && isZero(value) {
			return fmt.Errorf("missing required configuration: %s", key)
		}

		if allowed := field.Tag.Get("oneof"); allowed != "" && value.Kind() == reflect.String {
			if !slices.Contains(strings.Fields(allowed), value.String()) {
				return fmt.Errorf("invalid configuration %s=%q: must be one of %s", key, value.String(), allowed)
			}
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
