package cli

// Action is the operation a single-purpose binary runs from its root
// command.
type Action int

const (
	// NoAction leaves the root command as a plain command group.
	NoAction Action = iota
	// DockMergeAction makes the root command behave like `dock merge`.
	DockMergeAction
	// DetectAppsAction makes the root command behave like `apps detect`.
	DetectAppsAction
)

// Profile configures CLI behavior for a specific binary.
type Profile struct {
	// Use is the root command name shown in help.
	Use string

	// Short is the root command description.
	Short string

	// RootAction is run by the root command itself.
	RootAction Action

	// IncludeDockCommand enables the dock command tree.
	IncludeDockCommand bool

	// IncludeAppsCommand enables the apps command tree.
	IncludeAppsCommand bool

	// IncludeIconCommand enables the icon command tree.
	IncludeIconCommand bool

	// IncludeConfigCommand enables the config command tree.
	IncludeConfigCommand bool
}

func QsutilProfile() Profile {
	return Profile{
		Use:                  "qsutil",
		Short:                "maintenance tools for the Quickshell desktop shell",
		RootAction:           NoAction,
		IncludeDockCommand:   true,
		IncludeAppsCommand:   true,
		IncludeIconCommand:   true,
		IncludeConfigCommand: true,
	}
}

func AddDockConfigProfile() Profile {
	return Profile{
		Use:        "add-dock-config",
		Short:      "add missing default dock properties to the shell config",
		RootAction: DockMergeAction,
	}
}

func DetectAppsProfile() Profile {
	return Profile{
		Use:        "detect-default-apps",
		Short:      "detect installed applications for the default app categories",
		RootAction: DetectAppsAction,
	}
}

func (p Profile) withDefaults() Profile {
	if p.Use == "" {
		return QsutilProfile()
	}
	return p
}
