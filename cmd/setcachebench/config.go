package main

import (
	"github.com/BurntSushi/toml"
)

// Config is the TOML-loaded shape for a benchmark run. Flags set via
// cobra/pflag override whatever a config file supplies.
type Config struct {
	Buckets  int    `toml:"buckets"`
	Slots    int    `toml:"slots"`
	Policy   string `toml:"policy"` // lru, mru, or smallest
	Ops      int    `toml:"ops"`
	KeySpace int    `toml:"key_space"`
	Metrics  bool   `toml:"metrics"`
	Addr     string `toml:"addr"`
}

func defaultConfig() Config {
	return Config{
		Buckets:  64,
		Slots:    8,
		Policy:   "lru",
		Ops:      100000,
		KeySpace: 10000,
		Metrics:  false,
		Addr:     ":9100",
	}
}

func loadConfigFile(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	_, err := toml.DecodeFile(path, &cfg)
	return cfg, err
}
