package internal

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jlrickert/cli-toolkit/toolkit"
)

// UserDirs are the per-user base directories resolved from a runtime's
// environment.
type UserDirs struct {
	Home string

	// ConfigHome is $XDG_CONFIG_HOME, or ~/.config when unset.
	ConfigHome string
}

// ResolveUserDirs reads the home directory and XDG_CONFIG_HOME from rt.
// A relative XDG_CONFIG_HOME is ignored.
func ResolveUserDirs(rt *toolkit.Runtime) (UserDirs, error) {
	home, err := rt.GetHome()
	if err != nil {
		return UserDirs{}, fmt.Errorf("unable to resolve home directory: %w", err)
	}
	if strings.TrimSpace(home) == "" {
		return UserDirs{}, fmt.Errorf("unable to resolve home directory: HOME is empty")
	}
	return UserDirs{
		Home:       home,
		ConfigHome: xdgDir(rt, "XDG_CONFIG_HOME", filepath.Join(home, ".config")),
	}, nil
}

func xdgDir(rt *toolkit.Runtime, key, fallback string) string {
	if v := strings.TrimSpace(rt.Get(key)); v != "" && filepath.IsAbs(v) {
		return v
	}
	return fallback
}
