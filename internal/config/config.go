// Package config loads the service's TOML configuration.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Listener binds one TCP address to one animation.
type Listener struct {
	ListenAddr string `toml:"listen_addr"`
	Animation  string `toml:"animation"`
}

// Config is the on-disk TOML schema.
//
//	log_file = "telnet-animations.log"   # optional rolling log file
//	admin_addr = "127.0.0.1:8080"        # optional health/metrics/ws endpoint
//
//	[[listeners]]
//	listen_addr = "0.0.0.0:2323"
//	animation = "lollercoaster"
type Config struct {
	LogFile   string     `toml:"log_file"`
	AdminAddr string     `toml:"admin_addr"`
	Listeners []Listener `toml:"listeners"`
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates raw TOML.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if len(cfg.Listeners) == 0 {
		return nil, fmt.Errorf("config: no listeners defined")
	}
	for i, l := range cfg.Listeners {
		if l.ListenAddr == "" {
			return nil, fmt.Errorf("config: listener %d: missing listen_addr", i)
		}
		if l.Animation == "" {
			return nil, fmt.Errorf("config: listener %d: missing animation", i)
		}
	}
	return &cfg, nil
}
