package icons

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jlrickert/cli-toolkit/mylog"
	"github.com/jlrickert/cli-toolkit/toolkit"
	"github.com/qsdots/qsutil/pkg/desktop"
)

// DefaultCacheSize bounds the resolved icon cache when no size is given.
const DefaultCacheSize = 256

// ResolverOptions configure a Resolver.
type ResolverOptions struct {
	// Theme overrides DetectTheme when set.
	Theme string

	// CacheSize bounds the number of cached resolutions.
	CacheSize int
}

// Resolver maps icon names and window classes to icon files. Results are
// either a file:// URL (substitutions and absolute desktop file icons), a
// plain path (theme lookups) or the literal TerminalIcon.
type Resolver struct {
	rt    *toolkit.Runtime
	dirs  Dirs
	theme string
	cache *lru.Cache[string, string]
}

// NewResolver builds a resolver for rt, detecting the icon theme unless
// opts names one.
func NewResolver(ctx context.Context, rt *toolkit.Runtime, opts ResolverOptions) (*Resolver, error) {
	dirs, err := DirsFromRuntime(rt)
	if err != nil {
		return nil, err
	}
	size := opts.CacheSize
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, fmt.Errorf("unable to create icon cache: %w", err)
	}

	theme := strings.TrimSpace(opts.Theme)
	if theme == "" {
		theme, err = DetectTheme(ctx, rt)
		if err != nil {
			return nil, err
		}
	}
	return &Resolver{rt: rt, dirs: dirs, theme: theme, cache: cache}, nil
}

// Theme returns the icon theme searched before hicolor.
func (r *Resolver) Theme() string { return r.theme }

// Dirs returns the user directories the resolver is rooted in.
func (r *Resolver) Dirs() Dirs { return r.dirs }

// SetTheme switches the icon theme and drops cached results.
func (r *Resolver) SetTheme(theme string) {
	r.theme = theme
	r.cache.Purge()
}

// Resolve returns the icon for name. An empty name resolves to "".
func (r *Resolver) Resolve(ctx context.Context, name string) string {
	if strings.TrimSpace(name) == "" {
		return ""
	}
	return r.resolve(ctx, name, map[string]bool{})
}

func (r *Resolver) resolve(ctx context.Context, name string, visiting map[string]bool) string {
	lg := mylog.LoggerFromContext(ctx)

	key := name + "_" + r.theme
	if v, ok := r.cache.Get(key); ok {
		return v
	}
	// Substitution and window class chains must not loop back.
	if visiting[name] {
		return ""
	}
	visiting[name] = true
	defer delete(visiting, name)

	if sub, ok := r.dirs.Substitute(name); ok && sub != name {
		if filepath.IsAbs(sub) {
			return r.store(key, fileURL(sub))
		}
		if got := r.resolve(ctx, sub, visiting); got != "" && got != sub {
			lg.Debug("icon resolved through substitution", "name", name, "substitute", sub)
			return r.store(key, got)
		}
	}

	if file, ok := windowClassDesktopFiles[name]; ok {
		if got := r.resolve(ctx, file, visiting); got != "" && got != file {
			return r.store(key, got)
		}
	}

	if got := r.fromDesktopFile(ctx, name); got != "" {
		return r.store(key, got)
	}

	if got := r.lookup(Variations(name)); got != "" {
		return r.store(key, got)
	}

	lg.Debug("icon not found, using terminal icon", "name", name, "theme", r.theme)
	if got := r.lookup(terminalIcons); got != "" {
		return r.store(key, got)
	}
	return r.store(key, TerminalIcon)
}

func (r *Resolver) store(key, value string) string {
	r.cache.Add(key, value)
	return value
}

// fromDesktopFile reads the Icon key of <name>.desktop from the first
// application directory that has one.
func (r *Resolver) fromDesktopFile(ctx context.Context, name string) string {
	lg := mylog.LoggerFromContext(ctx)

	for _, dir := range r.dirs.ApplicationDirs() {
		path := filepath.Join(dir, name+desktop.Ext)
		e, err := desktop.ReadFile(r.rt, path)
		if err != nil || e.Icon == "" {
			continue
		}
		lg.Debug("icon named by desktop file", "path", path, "icon", e.Icon)
		if filepath.IsAbs(e.Icon) {
			return fileURL(e.Icon)
		}
		if exe := e.ExecToken(); strings.HasSuffix(exe, ".AppImage") || strings.HasSuffix(exe, ".appimage") {
			return exe + "/.DirIcon"
		}
		return r.lookup([]string{e.Icon})
	}
	return ""
}

// lookup searches the current theme and then hicolor for the first
// non-empty icon file matching one of names.
func (r *Resolver) lookup(names []string) string {
	themes := []string{HicolorTheme}
	if r.theme != "" {
		themes = []string{r.theme, HicolorTheme}
	}
	for _, theme := range themes {
		for _, base := range r.dirs.BasePaths() {
			for _, name := range names {
				for _, size := range sizeDirs {
					for _, ext := range extensions {
						p := filepath.Join(base, theme, filepath.FromSlash(size), name+ext)
						if nonEmptyFile(r.rt, p) {
							return p
						}
					}
				}
			}
		}
	}
	return ""
}

func fileURL(path string) string {
	if strings.HasPrefix(path, "file://") {
		return path
	}
	return "file://" + path
}
