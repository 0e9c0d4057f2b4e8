package config

import (
	"errors"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Log     LoggingConfig `yaml:"log"`
	REST    RESTConfig    `yaml:"rest"`
	Fetch   FetchConfig   `yaml:"fetch"`
	Metrics MetricsConfig `yaml:"metrics"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type RESTConfig struct {
	BaseURL string   `yaml:"base_url"`
	Timeout Duration `yaml:"timeout"`
}

type FetchConfig struct {
	Symbol   string   `yaml:"symbol"`
	Interval string   `yaml:"interval"`
	Window   Duration `yaml:"window"`
}

type MetricsConfig struct {
	// Addr is the listen address for the /metrics endpoint. Empty disables
	// the listener.
	Addr string `yaml:"addr"`
}

// Duration accepts either a duration string ("10s", "24h") or integer
// nanoseconds in YAML.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		*d = Duration(parsed)
		return nil
	}
	var n int64
	if err := value.Decode(&n); err != nil {
		return err
	}
	*d = Duration(n)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	return &cfg, validate(&cfg)
}

func applyDefaults(cfg *Config) {
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.File == "" {
		cfg.Log.File = "logfile.log"
	}
	if cfg.REST.BaseURL == "" {
		cfg.REST.BaseURL = "https://api.binance.com"
	}
	if cfg.REST.Timeout == 0 {
		cfg.REST.Timeout = Duration(10 * time.Second)
	}
	if cfg.Fetch.Symbol == "" {
		cfg.Fetch.Symbol = "BTCUSDT"
	}
	if cfg.Fetch.Interval == "" {
		cfg.Fetch.Interval = "1h"
	}
	if cfg.Fetch.Window == 0 {
		cfg.Fetch.Window = Duration(24 * time.Hour)
	}
}

func validate(cfg *Config) error {
	if cfg.REST.Timeout < 0 {
		return errors.New("rest.timeout must not be negative")
	}
	if cfg.Fetch.Window < 0 {
		return errors.New("fetch.window must not be negative")
	}
	return nil
}
