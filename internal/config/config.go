// Package config resolves freebox-gate settings from viper (flags, environment,
// optional YAML file).
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"freebox-gate/internal/freebox"

	"github.com/spf13/viper"
)

// TokenFileName is the app token file kept under the config directory.
const TokenFileName = "freebox.conf"

// Freebox is the static connection section. Other keys next to it are ignored.
type Freebox struct {
	Host string
	Port int
}

type Config struct {
	// Freebox is nil when no static connection is configured; the device is
	// then found through discovery.
	Freebox          *Freebox
	ConfigDir        string
	APIVersion       string
	CAFile           string
	Interval         time.Duration
	WebPort          int
	AuthorizeTimeout time.Duration
	LogLevel         string
}

// SetDefaults registers default values and environment bindings on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("config-dir", ".")
	v.SetDefault("api-version", freebox.DefaultAPIVersion)
	v.SetDefault("interval", 30*time.Second)
	v.SetDefault("web-port", 8080)
	v.SetDefault("authorize-timeout", 2*time.Minute)
	v.SetDefault("log-level", "info")

	_ = v.BindEnv("freebox.host", "FREEBOX_HOST")
	_ = v.BindEnv("freebox.port", "FREEBOX_PORT")
	_ = v.BindEnv("config-dir", "FREEBOX_CONFIG_DIR")
	_ = v.BindEnv("ca-file", "FREEBOX_CA_FILE")
	_ = v.BindEnv("log-level", "FREEBOX_LOG_LEVEL")
}

// Load reads and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		ConfigDir:        v.GetString("config-dir"),
		APIVersion:       v.GetString("api-version"),
		CAFile:           v.GetString("ca-file"),
		Interval:         v.GetDuration("interval"),
		WebPort:          v.GetInt("web-port"),
		AuthorizeTimeout: v.GetDuration("authorize-timeout"),
		LogLevel:         v.GetString("log-level"),
	}
	if cfg.Interval <= 0 {
		return nil, fmt.Errorf("interval must be positive, got %s", cfg.Interval)
	}

	if v.IsSet("freebox") || v.IsSet("freebox.host") || v.IsSet("freebox.port") {
		fb, err := loadFreebox(v)
		if err != nil {
			return nil, err
		}
		cfg.Freebox = fb
	}
	return cfg, nil
}

func loadFreebox(v *viper.Viper) (*Freebox, error) {
	var errs []error
	host := v.GetString("freebox.host")
	if host == "" {
		errs = append(errs, errors.New("freebox.host is required"))
	}
	port := v.GetInt("freebox.port")
	if port < 1 || port > 65535 {
		errs = append(errs, fmt.Errorf("freebox.port must be a port number between 1 and 65535, got %q", v.GetString("freebox.port")))
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid freebox configuration: %w", errors.Join(errs...))
	}
	return &Freebox{Host: host, Port: port}, nil
}

// TokenFile is where the Freebox app token is persisted.
func (c *Config) TokenFile() string {
	return filepath.Join(c.ConfigDir, TokenFileName)
}
