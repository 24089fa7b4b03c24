package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// configEnv names the environment variable pointing at a config file.
const configEnv = "LED_CONFIG"

// Config holds the settings read from the config file. Command line
// flags take precedence over it.
type Config struct {
	Prompt     string `toml:"prompt" yaml:"prompt"`
	Verbose    bool   `toml:"verbose" yaml:"verbose"`
	Silent     bool   `toml:"silent" yaml:"silent"`
	Scroll     int    `toml:"scroll" yaml:"scroll"`
	HangupFile string `toml:"hangup_file" yaml:"hangup_file"`
	LogLevel   string `toml:"log_level" yaml:"log_level"`
	LogFile    string `toml:"log_file" yaml:"log_file"`
}

// defaultConfigPath returns the config file used when none is named on
// the command line.
func defaultConfigPath() string {
	if p := os.Getenv(configEnv); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "led", "config.toml")
}

// loadConfig reads the config file at path. The format follows the
// extension: .yaml and .yml are YAML, anything else TOML. A missing file
// is an error only when required is set.
func loadConfig(path string, required bool) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	buf, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !required {
		return cfg, nil
	} else if err != nil {
		return cfg, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(buf, &cfg)
	default:
		_, err = toml.Decode(string(buf), &cfg)
	}
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.Scroll < 0 {
		return cfg, fmt.Errorf("%s: scroll must not be negative", path)
	}
	return cfg, nil
}

// options turns the config into editor options.
func (cfg Config) options() []Option {
	opts := []Option{
		WithPrompt(cfg.Prompt),
		WithVerbose(cfg.Verbose),
		WithSilent(cfg.Silent),
		WithHangupFile(cfg.HangupFile),
	}
	if cfg.Scroll > 0 {
		opts = append(opts, WithScroll(cfg.Scroll))
	}
	return opts
}
