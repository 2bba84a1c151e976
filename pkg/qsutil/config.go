package qsutil

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jlrickert/cli-toolkit/mylog"
	"github.com/jlrickert/cli-toolkit/toolkit"
	"github.com/qsdots/qsutil/pkg/apps"
	"github.com/qsdots/qsutil/pkg/dock"
	"github.com/qsdots/qsutil/pkg/icons"
	"gopkg.in/yaml.v3"
)

// Config is the optional qsutil tool configuration. Zero values are filled
// from DefaultConfig when the file is read.
type Config struct {
	LogLevel        string   `yaml:"logLevel"`
	LogFile         string   `yaml:"logFile"`
	DockConfig      string   `yaml:"dockConfig"`
	ApplicationDirs []string `yaml:"applicationDirs"`
	Report          string   `yaml:"report"`

	// IconTheme overrides icon theme detection when set.
	IconTheme     string `yaml:"iconTheme"`
	IconCacheSize int    `yaml:"iconCacheSize"`
}

var validLogLevels = []string{"debug", "info", "warn", "warning", "error", "off"}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:        "warn",
		DockConfig:      dock.DefaultConfigPath,
		ApplicationDirs: apps.DefaultDirs(),
		Report:          apps.DefaultReportPath,
		IconCacheSize:   icons.DefaultCacheSize,
	}
}

// ParseConfig decodes YAML data on top of the defaults. path is only used in
// errors.
func ParseConfig(path string, data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if strings.TrimSpace(string(data)) == "" {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, NewInvalidConfigError(path, err.Error())
	}
	if err := cfg.Validate(); err != nil {
		var ic *InvalidConfigError
		if errors.As(err, &ic) {
			ic.Path = path
		}
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values that YAML decoding cannot.
func (c *Config) Validate() error {
	level := strings.ToLower(strings.TrimSpace(c.LogLevel))
	valid := level == ""
	for _, l := range validLogLevels {
		valid = valid || level == l
	}
	if !valid {
		return NewInvalidConfigError("", fmt.Sprintf("unknown logLevel %q", c.LogLevel))
	}
	if c.IconCacheSize < 0 {
		return NewInvalidConfigError("", "iconCacheSize must not be negative")
	}
	for _, dir := range c.ApplicationDirs {
		if strings.TrimSpace(dir) == "" {
			return NewInvalidConfigError("", "applicationDirs contains an empty entry")
		}
	}
	return nil
}

// ReadConfig reads the config at path. A missing file yields the defaults.
func ReadConfig(ctx context.Context, rt *toolkit.Runtime, path string) (*Config, error) {
	lg := mylog.LoggerFromContext(ctx)

	data, err := rt.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		lg.Debug("no tool config, using defaults", "path", path)
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to read config %q: %w", path, err)
	}
	cfg, err := ParseConfig(path, data)
	if err != nil {
		lg.Error("failed to parse config", "path", path, "err", err)
		return nil, err
	}
	return cfg, nil
}

// ToYAML serializes the config.
func (c *Config) ToYAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("unable to encode config: %w", err)
	}
	return data, nil
}

// Write stores the config at path, creating the parent directory.
func (c *Config) Write(ctx context.Context, rt *toolkit.Runtime, path string) error {
	lg := mylog.LoggerFromContext(ctx)

	data, err := c.ToYAML()
	if err != nil {
		return err
	}
	if err := rt.Mkdir(filepath.Dir(path), 0o755, true); err != nil {
		return fmt.Errorf("creating config dir %q: %w", filepath.Dir(path), err)
	}
	if err := rt.AtomicWriteFile(path, data, 0o644); err != nil {
		lg.Error("failed to write config", "path", path, "err", err)
		return fmt.Errorf("unable to write config %q: %w", path, err)
	}
	lg.Info("config written", "path", path)
	return nil
}
