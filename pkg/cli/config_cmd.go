package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewConfigCmd returns the `config` cobra command.
//
// Usage examples:
//
//	qsutil config
//	qsutil config init
//	qsutil config path
func NewConfigCmd(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "display configuration",
		Long: `Display the effective qsutil configuration as YAML.

Defaults apply when no config file exists. Use 'qsutil config init' to write
them to ~/.config/qsutil/config.yaml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd, deps)
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "display the effective configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return showConfig(cmd, deps)
			},
		},
		&cobra.Command{
			Use:   "init",
			Short: "write the default configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := deps.Tool.InitConfig(cmd.Context())
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
				return err
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "print the config file location",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := deps.Tool.PathService.Expand(deps.Tool.ConfigService.Path())
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
				return err
			},
		},
	)

	return cmd
}

func showConfig(cmd *cobra.Command, deps *Deps) error {
	cfg, err := deps.Tool.Config(cmd.Context())
	if err != nil {
		return err
	}
	data, err := cfg.ToYAML()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
