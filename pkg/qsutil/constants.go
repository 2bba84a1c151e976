package qsutil

const (
	// DefaultAppName names the config directory under XDG_CONFIG_HOME.
	DefaultAppName = "qsutil"

	// ConfigFileName is the tool config file inside the config directory.
	ConfigFileName = "config.yaml"
)
