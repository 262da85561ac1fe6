package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"boattracker-viz/feed"
)

// Config is the full service configuration. Defaults apply first; a TOML file
// overrides them field by field.
type Config struct {
	Broker          string `toml:"broker"`
	Port            int    `toml:"port"`
	Username        string `toml:"username"`
	Password        string `toml:"password"`
	Topic           string `toml:"topic"`
	UseTLS          bool   `toml:"use_tls"`
	InsecureSkipTLS bool   `toml:"insecure_skip_tls"`

	HTTPBind  string `toml:"http_bind"`
	PublicURL string `toml:"public_url"`

	OfflineThresholdSeconds  int64 `toml:"offline_threshold_seconds"`
	FirstEventTimeoutSeconds int   `toml:"first_event_timeout_seconds"`
	EventLogCapacity         int   `toml:"event_log_capacity"`

	// Timezone interprets the feed's zone-less timestamps. The backend never
	// says whether they are local or UTC, so this stays an explicit setting:
	// an IANA name, "UTC", or "Local".
	Timezone string `toml:"timezone"`
}

func Default() Config {
	return Config{
		Broker:                   "localhost",
		Port:                     1883,
		Topic:                    "boats",
		HTTPBind:                 ":8080",
		OfflineThresholdSeconds:  300,
		FirstEventTimeoutSeconds: 8,
		EventLogCapacity:         256,
		Timezone:                 "Local",
	}
}

// Load reads the config file at path, falling back to defaults when the file
// does not exist. An empty path checks the BOATTRACKER_CONFIG environment
// variable, then skips file loading entirely.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("BOATTRACKER_CONFIG")
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if cfg.EventLogCapacity <= 0 {
		cfg.EventLogCapacity = 256
	}
	if cfg.OfflineThresholdSeconds <= 0 {
		cfg.OfflineThresholdSeconds = 300
	}

	return cfg, nil
}

// Location resolves the configured timezone.
func (c Config) Location() (*time.Location, error) {
	switch c.Timezone {
	case "", "Local":
		return time.Local, nil
	case "UTC":
		return time.UTC, nil
	default:
		loc, err := time.LoadLocation(c.Timezone)
		if err != nil {
			return nil, fmt.Errorf("resolve timezone %q: %w", c.Timezone, err)
		}
		return loc, nil
	}
}

// Feed maps the service config onto the subscriber's own config.
func (c Config) Feed() feed.Config {
	fc := feed.DefaultConfig()
	fc.Broker = c.Broker
	fc.Port = c.Port
	fc.Username = c.Username
	fc.Password = c.Password
	fc.Topic = c.Topic
	fc.UseTLS = c.UseTLS
	fc.InsecureSkipTLS = c.InsecureSkipTLS
	if c.FirstEventTimeoutSeconds > 0 {
		fc.FirstEventTimeout = time.Duration(c.FirstEventTimeoutSeconds) * time.Second
	}
	return fc
}
