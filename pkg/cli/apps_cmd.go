package cli

import (
	"fmt"
	"strings"

	"github.com/qsdots/qsutil/pkg/apps"
	"github.com/qsdots/qsutil/pkg/qsutil"
	"github.com/spf13/cobra"
)

// NewAppsCmd returns the `apps` command group.
func NewAppsCmd(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apps",
		Short: "inspect installed desktop applications",
	}
	cmd.AddCommand(NewAppsDetectCmd(deps), NewAppsCategoriesCmd(deps))
	return cmd
}

// NewAppsDetectCmd returns the `apps detect` cobra command.
//
// Usage examples:
//
//	qsutil apps detect
//	qsutil apps detect --output -
//	qsutil apps detect --dir ~/.local/share/flatpak/exports/share/applications
func NewAppsDetectCmd(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect",
		Short: "write the default application report",
	}
	bindDetectApps(cmd, deps)
	return cmd
}

func bindDetectApps(cmd *cobra.Command, deps *Deps) {
	var opts qsutil.DetectOptions

	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		res, err := deps.Tool.DetectApps(cmd.Context(), opts)
		if err != nil {
			return err
		}
		if res.Path != qsutil.StdoutPath {
			return nil
		}
		data, err := res.Report.Encode()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "report path, - for stdout (default detected_default_apps.json)")
	cmd.Flags().StringArrayVar(&opts.Dirs, "dir", nil, "application directory to scan (repeatable, replaces the defaults)")
}

// NewAppsCategoriesCmd returns the `apps categories` cobra command.
func NewAppsCategoriesCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "list the report categories and their keywords",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, c := range apps.Categories() {
				if _, err := fmt.Fprintf(out, "%s: %s\n", c.Name, strings.Join(c.Keywords, ", ")); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
