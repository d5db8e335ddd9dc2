package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/go-ini/ini"
	"github.com/sirupsen/logrus"
)

// EnvPrefix is prepended to every environment variable Load reads.
const EnvPrefix = "GOSLICE_"

// ErrEmptyBuffer is returned by Validate when there is nothing to view.
var ErrEmptyBuffer = errors.New("config: buffer is empty")

// Config 演示程序配置
type Config struct {
	View ViewConfig `ini:"view"`
	Log  LogConfig  `ini:"log"`
}

// ViewConfig describes the buffer and the window taken over it.
type ViewConfig struct {
	Buffer    []int  `ini:"buffer" delim:"," env:"BUFFER" envSeparator:","`
	Start     int    `ini:"start" env:"START"`
	End       int    `ini:"end" env:"END"` // inclusive
	Separator string `ini:"separator" env:"SEPARATOR"`
}

// LogConfig 日志配置
type LogConfig struct {
	Debug bool `ini:"debug" env:"DEBUG"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		View: ViewConfig{
			Buffer:    []int{1, 2, 3, 4, 5},
			Start:     1,
			End:       3,
			Separator: ",",
		},
	}
}

// Load builds a Config from the defaults, the INI file at path (skipped when
// path is empty) and then GOSLICE_* environment variables, in that order.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := ini.MapTo(cfg, path); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		logrus.Debugf("Config loaded from: %s", path)
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports whether cfg can be turned into a view. Window bounds are
// left to the slice package, which owns those rules.
func (c *Config) Validate() error {
	if len(c.View.Buffer) == 0 {
		return ErrEmptyBuffer
	}
	return nil
}
