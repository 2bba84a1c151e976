// Package qsutil ties the runtime, tool configuration and the dock, apps and
// icons packages together behind the operations the commands expose.
package qsutil

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/jlrickert/cli-toolkit/mylog"
	"github.com/jlrickert/cli-toolkit/toolkit"
	"github.com/qsdots/qsutil/pkg/apps"
	"github.com/qsdots/qsutil/pkg/dock"
	"github.com/qsdots/qsutil/pkg/icons"
)

// StdoutPath selects standard output instead of a report file.
const StdoutPath = "-"

type ToolOptions struct {
	Runtime *toolkit.Runtime

	// ConfigPath overrides ~/.config/qsutil/config.yaml.
	ConfigPath string
}

// Tool is the entry point for every qsutil operation.
type Tool struct {
	Runtime       *toolkit.Runtime
	PathService   *PathService
	ConfigService *ConfigService
}

func NewTool(opts ToolOptions) (*Tool, error) {
	if opts.Runtime == nil {
		return nil, fmt.Errorf("runtime is required")
	}
	paths, err := NewPathService(opts.Runtime)
	if err != nil {
		return nil, err
	}
	return &Tool{
		Runtime:       opts.Runtime,
		PathService:   paths,
		ConfigService: NewConfigService(paths, opts.ConfigPath),
	}, nil
}

// Config returns the effective tool configuration.
func (t *Tool) Config(ctx context.Context) (*Config, error) {
	return t.ConfigService.Config(ctx, true)
}

// InitConfig writes the default configuration and returns its path. An
// existing file is left alone and ErrConfigExists returned.
func (t *Tool) InitConfig(ctx context.Context) (string, error) {
	path, err := t.PathService.Expand(t.ConfigService.Path())
	if err != nil {
		return "", err
	}
	if _, err := t.Runtime.Stat(path, true); err == nil {
		return path, fmt.Errorf("%s: %w", path, ErrConfigExists)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("unable to stat config %q: %w", path, err)
	}
	if err := DefaultConfig().Write(ctx, t.Runtime, path); err != nil {
		return "", err
	}
	t.ConfigService.ResetCache()
	return path, nil
}

type DockOptions struct {
	// ConfigFile overrides the configured shell config path.
	ConfigFile string
	DryRun     bool
}

// MergeDock fills the missing default dock properties into the shell config.
func (t *Tool) MergeDock(ctx context.Context, opts DockOptions) (*dock.MergeResult, error) {
	cfg, err := t.Config(ctx)
	if err != nil {
		return nil, err
	}
	target := opts.ConfigFile
	if target == "" {
		target = cfg.DockConfig
	}
	path, err := t.PathService.Expand(target)
	if err != nil {
		return nil, err
	}
	return dock.MergeFile(ctx, t.Runtime, path, dock.MergeOptions{DryRun: opts.DryRun})
}

type DetectOptions struct {
	// Dirs replaces the configured application directories.
	Dirs []string

	// Output is the report path; StdoutPath skips writing a file.
	Output string
}

type DetectResult struct {
	Report apps.Report
	Stats  apps.Stats

	// Path is the written report, or StdoutPath.
	Path string
}

// DetectApps scans the application directories and writes the report.
func (t *Tool) DetectApps(ctx context.Context, opts DetectOptions) (*DetectResult, error) {
	lg := mylog.LoggerFromContext(ctx)

	cfg, err := t.Config(ctx)
	if err != nil {
		return nil, err
	}
	dirs := opts.Dirs
	if len(dirs) == 0 {
		dirs = cfg.ApplicationDirs
	}
	expanded := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		expanded = append(expanded, toolkit.ExpandEnv(t.Runtime, dir))
	}

	report, stats := apps.Detect(ctx, t.Runtime, expanded)
	res := &DetectResult{Report: report, Stats: stats, Path: StdoutPath}

	output := opts.Output
	if output == "" {
		output = cfg.Report
	}
	if output == StdoutPath {
		lg.Debug("report goes to stdout")
		return res, nil
	}
	res.Path, err = apps.WriteReport(ctx, t.Runtime, output, report)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// IconResolver builds a resolver honoring the configured theme and cache
// size.
func (t *Tool) IconResolver(ctx context.Context) (*icons.Resolver, error) {
	cfg, err := t.Config(ctx)
	if err != nil {
		return nil, err
	}
	return icons.NewResolver(ctx, t.Runtime, icons.ResolverOptions{
		Theme:     cfg.IconTheme,
		CacheSize: cfg.IconCacheSize,
	})
}

// IconDirs returns the directories icon substitutions are rooted in.
func (t *Tool) IconDirs() icons.Dirs {
	return icons.Dirs{Home: t.PathService.Home, Config: t.PathService.ConfigHome}
}
