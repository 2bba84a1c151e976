package cli

import (
	"fmt"

	"github.com/qsdots/qsutil/pkg/icons"
	"github.com/spf13/cobra"
)

// NewIconCmd returns the `icon` command group.
func NewIconCmd(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "icon",
		Short: "detect icon themes and resolve application icons",
	}
	cmd.AddCommand(
		NewIconThemeCmd(deps),
		NewIconThemesCmd(deps),
		NewIconResolveCmd(deps),
		NewIconGuessCmd(deps),
	)
	return cmd
}

// NewIconThemeCmd prints the icon theme the resolver searches first.
func NewIconThemeCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "theme",
		Short: "print the active icon theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := deps.Tool.IconResolver(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), r.Theme())
			return err
		},
	}
}

func NewIconThemesCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "list installed icon themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			themes, err := icons.AvailableThemes(cmd.Context(), deps.Runtime)
			if err != nil {
				return err
			}
			for _, theme := range themes {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), theme); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// NewIconResolveCmd returns the `icon resolve` cobra command.
//
// Usage examples:
//
//	qsutil icon resolve firefox
//	qsutil icon resolve --theme breeze org.gnome.Nautilus steam_app_570
func NewIconResolveCmd(deps *Deps) *cobra.Command {
	var theme string

	cmd := &cobra.Command{
		Use:   "resolve NAME...",
		Short: "resolve icon names or window classes to icon files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			r, err := deps.Tool.IconResolver(ctx)
			if err != nil {
				return err
			}
			if theme != "" {
				r.SetTheme(theme)
			}
			for _, name := range args {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), r.Resolve(ctx, name)); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&theme, "theme", "", "icon theme to search before hicolor")
	return cmd
}

func NewIconGuessCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "guess NAME...",
		Short: "guess icon names without looking at the filesystem",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dirs := deps.Tool.IconDirs()
			for _, name := range args {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), dirs.Guess(name)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
