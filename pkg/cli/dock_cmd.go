package cli

import (
	"fmt"

	"github.com/qsdots/qsutil/pkg/qsutil"
	"github.com/spf13/cobra"
)

// NewDockCmd returns the `dock` command group.
func NewDockCmd(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dock",
		Short: "manage the dock section of the shell config",
	}
	cmd.AddCommand(NewDockMergeCmd(deps))
	return cmd
}

// NewDockMergeCmd returns the `dock merge` cobra command.
//
// Usage examples:
//
//	qsutil dock merge
//	qsutil dock merge --dry-run
//	qsutil dock merge --config-file ~/dotfiles/quickshell/config.json
func NewDockMergeCmd(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge",
		Short: "add missing default dock properties to the shell config",
	}
	bindDockMerge(cmd, deps)
	return cmd
}

func bindDockMerge(cmd *cobra.Command, deps *Deps) {
	var opts qsutil.DockOptions

	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		res, err := deps.Tool.MergeDock(cmd.Context(), opts)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Summary())
		return err
	}

	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "report missing properties without writing")
	cmd.Flags().StringVar(&opts.ConfigFile, "config-file", "", "shell config to update (default ~/.config/quickshell/config.json)")
}
