package qsutil

import (
	"fmt"
	"path/filepath"

	"github.com/jlrickert/cli-toolkit/toolkit"
	"github.com/qsdots/qsutil/pkg/internal"
)

// PathService resolves the tool's well known locations for a runtime.
type PathService struct {
	Runtime *toolkit.Runtime

	// Home is the user's home directory.
	Home string

	// ConfigHome is XDG_CONFIG_HOME or ~/.config.
	ConfigHome string

	// ConfigRoot is the qsutil directory inside ConfigHome.
	ConfigRoot string
}

func NewPathService(rt *toolkit.Runtime) (*PathService, error) {
	user, err := internal.ResolveUserDirs(rt)
	if err != nil {
		return nil, err
	}
	return &PathService{
		Runtime:    rt,
		Home:       user.Home,
		ConfigHome: user.ConfigHome,
		ConfigRoot: filepath.Join(user.ConfigHome, DefaultAppName),
	}, nil
}

// UserConfig is the default tool config path.
func (s *PathService) UserConfig() string {
	return filepath.Join(s.ConfigRoot, ConfigFileName)
}

// Expand resolves ~ and $VAR references. Relative results are joined with
// the working directory.
func (s *PathService) Expand(path string) (string, error) {
	expanded, err := toolkit.ExpandPath(s.Runtime, toolkit.ExpandEnv(s.Runtime, path))
	if err != nil {
		return "", fmt.Errorf("unable to resolve path %q: %w", path, err)
	}
	if filepath.IsAbs(expanded) {
		return expanded, nil
	}
	wd, err := s.Runtime.Getwd()
	if err != nil {
		return "", fmt.Errorf("unable to determine working directory: %w", err)
	}
	return filepath.Join(wd, expanded), nil
}
