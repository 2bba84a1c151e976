// Package icons finds application icons the way the desktop shell does:
// detect the icon theme, apply the shell's substitution tables and walk the
// XDG icon directories.
package icons

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-ini/ini"
	"github.com/jlrickert/cli-toolkit/mylog"
	"github.com/jlrickert/cli-toolkit/toolkit"
	"github.com/qsdots/qsutil/pkg/internal"
)

// Qt6ctConfig is the qt6ct settings file relative to the config directory.
const Qt6ctConfig = "qt6ct/qt6ct.conf"

// qt6ct writes Qt settings files. Values may hold ';', '#' and commas and
// some lines are not key=value pairs at all.
var qtLoadOptions = ini.LoadOptions{
	IgnoreContinuation:      true,
	IgnoreInlineComment:     true,
	SkipUnrecognizableLines: true,
	KeyValueDelimiters:      "=",
}

// DirsFromRuntime resolves the home and XDG config directories of rt.
func DirsFromRuntime(rt *toolkit.Runtime) (Dirs, error) {
	user, err := internal.ResolveUserDirs(rt)
	if err != nil {
		return Dirs{}, err
	}
	return Dirs{Home: user.Home, Config: user.ConfigHome}, nil
}

// BasePaths are the icon directories searched, most specific first.
func (d Dirs) BasePaths() []string {
	return []string{
		filepath.Join(d.Home, ".local", "share", "icons"),
		filepath.Join(d.Home, ".icons"),
		"/usr/share/icons",
		"/usr/local/share/icons",
	}
}

// ApplicationDirs are searched for <name>.desktop when resolving an icon.
func (d Dirs) ApplicationDirs() []string {
	return []string{
		filepath.Join(d.Home, ".local", "share", "applications"),
		"/usr/share/applications",
		"/usr/local/share/applications",
	}
}

// DetectTheme returns the icon theme named by qt6ct, else the first
// installed fallback theme, else hicolor.
func DetectTheme(ctx context.Context, rt *toolkit.Runtime) (string, error) {
	lg := mylog.LoggerFromContext(ctx)

	dirs, err := DirsFromRuntime(rt)
	if err != nil {
		return "", err
	}

	qtPath := filepath.Join(dirs.Config, filepath.FromSlash(Qt6ctConfig))
	if theme := qt6ctTheme(rt, qtPath); theme != "" {
		lg.Debug("icon theme from qt6ct", "path", qtPath, "theme", theme)
		return theme, nil
	}

	for _, theme := range FallbackThemes {
		if themeInstalled(rt, dirs, theme) {
			lg.Debug("icon theme from fallback list", "theme", theme)
			return theme, nil
		}
	}
	lg.Debug("no icon theme found, using hicolor")
	return HicolorTheme, nil
}

func qt6ctTheme(rt *toolkit.Runtime, path string) string {
	data, err := rt.ReadFile(path)
	if err != nil {
		return ""
	}
	f, err := ini.LoadSources(qtLoadOptions, data)
	if err != nil {
		return ""
	}
	for _, sec := range f.Sections() {
		if sec.HasKey("icon_theme") {
			if theme := sec.Key("icon_theme").Value(); theme != "" {
				return theme
			}
		}
	}
	return ""
}

func themeInstalled(rt *toolkit.Runtime, dirs Dirs, theme string) bool {
	for _, base := range dirs.BasePaths() {
		if nonEmptyFile(rt, filepath.Join(base, theme, "index.theme")) {
			return true
		}
	}
	return false
}

// AvailableThemes lists the installed icon themes, sorted and without
// duplicates. A theme is a directory in one of the base paths carrying a
// non-empty index.theme.
func AvailableThemes(ctx context.Context, rt *toolkit.Runtime) ([]string, error) {
	lg := mylog.LoggerFromContext(ctx)

	dirs, err := DirsFromRuntime(rt)
	if err != nil {
		return nil, err
	}

	seen := map[string]struct{}{}
	themes := []string{}
	for _, base := range dirs.BasePaths() {
		matches, err := rt.Glob(filepath.Join(base, "*", "index.theme"))
		if err != nil {
			lg.Debug("unable to list icon directory", "dir", base, "err", err)
			continue
		}
		for _, m := range matches {
			name := filepath.Base(filepath.Dir(m))
			if strings.HasPrefix(name, ".") {
				continue
			}
			if _, ok := seen[name]; ok || !nonEmptyFile(rt, m) {
				continue
			}
			seen[name] = struct{}{}
			themes = append(themes, name)
		}
	}
	sort.Strings(themes)
	return themes, nil
}

func nonEmptyFile(rt *toolkit.Runtime, path string) bool {
	info, err := rt.Stat(path, true)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Size() > 0
}
