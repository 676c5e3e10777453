// Package config contains the inspector configuration definitions.
package config

import (
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/spacemeshos/go-inspector/inspector"
)

// ErrConfigFile is returned when the configuration file cannot be read.
var ErrConfigFile = errors.New("failed to read config file")

// Config defines the top level configuration.
type Config struct {
	ConfigFile string           `mapstructure:"config"`
	Inspector  inspector.Config `mapstructure:"inspector"`
	Logging    LoggerConfig     `mapstructure:"logging"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

// MetricsConfig configures the prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Addr    string `mapstructure:"addr"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Inspector: inspector.DefaultConfig(),
		Logging:   defaultLoggingConfig(),
		Metrics: MetricsConfig{
			Addr: ":1010",
		},
	}
}

// flag name to viper key.
var flagKeys = map[string]string{
	"config":           "config",
	"refresh-interval": "inspector.refresh-interval",
	"strict":           "inspector.strict",
	"log-encoder":      "logging.log-encoder",
	"log-level":        "logging.app",
	"metrics":          "metrics.enabled",
	"metrics-addr":     "metrics.addr",
}

// AddFlags registers command line flags with defaults taken from cfg.
func AddFlags(fs *pflag.FlagSet, cfg Config) {
	fs.StringP("config", "c", cfg.ConfigFile, "load configuration from file")
	fs.Duration("refresh-interval", cfg.Inspector.RefreshInterval,
		"delay between a response and the next request for the selected element")
	fs.Bool("strict", cfg.Inspector.Strict, "panic on malformed dehydrated payloads")
	fs.String("log-encoder", cfg.Logging.Encoder, "log encoder (console or json)")
	fs.String("log-level", cfg.Logging.AppLoggerLevel, "application log level")
	fs.Bool("metrics", cfg.Metrics.Enabled, "serve prometheus metrics")
	fs.String("metrics-addr", cfg.Metrics.Addr, "address of the metrics endpoint")
}

// BindFlags makes flags registered by AddFlags override values in vip. Flags that were not set on
// the command line only act as defaults.
func BindFlags(fs *pflag.FlagSet, vip *viper.Viper) error {
	for name, key := range flagKeys {
		flag := fs.Lookup(name)
		if flag == nil {
			continue
		}
		if err := vip.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// LoadConfig reads the config file into vip. An empty path is a no-op.
func LoadConfig(path string, vip *viper.Viper) error {
	if path == "" {
		return nil
	}
	vip.SetConfigFile(path)
	if err := vip.ReadInConfig(); err != nil {
		return fmt.Errorf("%w %s: %w", ErrConfigFile, path, err)
	}
	return nil
}

// Unmarshal decodes vip on top of cfg. Keys that do not map to any field are an error.
func Unmarshal(vip *viper.Viper, cfg *Config) error {
	hook := mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.TextUnmarshallerHookFunc(),
	)
	if err := vip.Unmarshal(cfg, viper.DecodeHook(hook), withErrorUnused()); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	return nil
}

// Load builds the configuration from defaults, the config file named by the "config" key and the
// flags bound to vip, in increasing priority.
func Load(vip *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadConfig(vip.GetString("config"), vip); err != nil {
		return nil, err
	}
	if err := Unmarshal(vip, &cfg); err != nil {
		return nil, err
	}
	if cfg.Inspector.RefreshInterval <= 0 {
		return nil, fmt.Errorf("refresh interval must be positive, got %s", cfg.Inspector.RefreshInterval)
	}
	return &cfg, nil
}

func withErrorUnused() viper.DecoderConfigOption {
	return func(cfg *mapstructure.DecoderConfig) {
		cfg.ErrorUnused = true
	}
}
