package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jlrickert/cli-toolkit/mylog"
	"github.com/jlrickert/cli-toolkit/toolkit"
	tlog "github.com/qsdots/qsutil/pkg/log"
	"github.com/qsdots/qsutil/pkg/qsutil"
	"github.com/spf13/cobra"
)

type Deps struct {
	Profile  Profile
	Shutdown func()
	Runtime  *toolkit.Runtime

	ConfigPath string
	LogFile    string
	LogLevel   string
	LogJSON    bool

	Tool *qsutil.Tool
}

// NewRootCmd builds the root cobra command for deps.Profile, wires the
// persistent flags and installs the command trees the profile enables.
func NewRootCmd(deps *Deps) *cobra.Command {
	if deps == nil {
		deps = &Deps{}
	}
	if deps.Shutdown == nil {
		deps.Shutdown = func() {}
	}
	profile := deps.Profile.withDefaults()

	cmd := &cobra.Command{
		Use:           profile.Use,
		Short:         profile.Short,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			rt := deps.Runtime
			if rt == nil {
				return fmt.Errorf("runtime is required")
			}

			tool, err := qsutil.NewTool(qsutil.ToolOptions{
				Runtime:    rt,
				ConfigPath: deps.ConfigPath,
			})
			if err != nil {
				return err
			}
			deps.Tool = tool

			// Config errors surface from the commands that need the config;
			// logging falls back to the flags.
			if cfg, err := tool.Config(ctx); err == nil {
				if !cmd.Flags().Changed("log-level") && cfg.LogLevel != "" {
					deps.LogLevel = cfg.LogLevel
				}
				if !cmd.Flags().Changed("log-file") && cfg.LogFile != "" {
					deps.LogFile = cfg.LogFile
				}
			}
			if deps.LogFile != "" {
				if deps.LogFile, err = tool.PathService.Expand(deps.LogFile); err != nil {
					return err
				}
			}

			if strings.EqualFold(deps.LogLevel, "off") {
				deps.Runtime.Logger = tlog.NewNopLogger()
			} else if deps.LogFile != "" || deps.LogJSON || deps.LogLevel != "" {
				// create a logger out-> stderr or file
				var out io.Writer = rt.Stream().Err
				if deps.LogFile != "" {
					f, err := os.OpenFile(deps.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
					if err != nil {
						return err
					}
					deps.Shutdown = func() { _ = f.Close() }
					out = f
				}
				deps.Runtime.Logger = mylog.NewLogger(mylog.LoggerConfig{
					Out:     out,
					Level:   mylog.ParseLevel(deps.LogLevel),
					JSON:    deps.LogJSON,
					Version: Version,
				})
			}

			ctx = mylog.WithLogger(ctx, deps.Runtime.Logger)
			cmd.SetContext(ctx)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&deps.LogFile, "log-file", "", "write logs to file (default stderr)")
	cmd.PersistentFlags().StringVar(&deps.LogLevel, "log-level", "warn", "minimum log level (debug, info, warn, error, off)")
	cmd.PersistentFlags().BoolVar(&deps.LogJSON, "log-json", false, "output logs as JSON")
	cmd.PersistentFlags().StringVarP(&deps.ConfigPath, "config", "c", "", "path to config file")

	switch profile.RootAction {
	case DockMergeAction:
		bindDockMerge(cmd, deps)
	case DetectAppsAction:
		bindDetectApps(cmd, deps)
	}

	if profile.IncludeDockCommand {
		cmd.AddCommand(NewDockCmd(deps))
	}
	if profile.IncludeAppsCommand {
		cmd.AddCommand(NewAppsCmd(deps))
	}
	if profile.IncludeIconCommand {
		cmd.AddCommand(NewIconCmd(deps))
	}
	if profile.IncludeConfigCommand {
		cmd.AddCommand(NewConfigCmd(deps))
	}

	return cmd
}
