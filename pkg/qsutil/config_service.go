package qsutil

import "context"

type ConfigService struct {
	PathService *PathService

	// ConfigPath overrides the user config location when set.
	ConfigPath string

	cache *Config
}

func NewConfigService(paths *PathService, configPath string) *ConfigService {
	return &ConfigService{PathService: paths, ConfigPath: configPath}
}

// Path is the config file in effect.
func (s *ConfigService) Path() string {
	if s.ConfigPath != "" {
		return s.ConfigPath
	}
	return s.PathService.UserConfig()
}

func (s *ConfigService) ResetCache() {
	s.cache = nil
}

// Config returns the tool configuration with optional caching.
func (s *ConfigService) Config(ctx context.Context, cache bool) (*Config, error) {
	if cache && s.cache != nil {
		return s.cache, nil
	}
	path, err := s.PathService.Expand(s.Path())
	if err != nil {
		return nil, err
	}
	cfg, err := ReadConfig(ctx, s.PathService.Runtime, path)
	if err != nil {
		return nil, err
	}
	s.cache = cfg
	return cfg, nil
}
