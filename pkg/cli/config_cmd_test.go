package cli_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigShow_Defaults(t *testing.T) {
	t.Parallel()

	sb := NewSandbox(t)
	res := NewProcess(t, false, "config", "show").Run(sb.Context(), sb.Runtime())
	require.NoError(t, res.Err, "stderr: %s", res.Stderr)
	out := string(res.Stdout)
	require.Contains(t, out, "logLevel: warn\n")
	require.Contains(t, out, "dockConfig: ~/.config/quickshell/config.json\n")
	require.Contains(t, out, "report: detected_default_apps.json\n")
}

func TestConfigInit_RefusesToOverwrite(t *testing.T) {
	t.Parallel()

	sb := NewSandbox(t)
	res := NewProcess(t, false, "config", "init").Run(sb.Context(), sb.Runtime())
	require.NoError(t, res.Err, "stderr: %s", res.Stderr)
	require.Equal(t, "wrote "+home+"/.config/qsutil/config.yaml\n", string(res.Stdout))
	require.Contains(t, string(sb.MustReadFile(home+"/.config/qsutil/config.yaml")), "iconCacheSize: 256")

	res = NewProcess(t, false, "config", "init").Run(sb.Context(), sb.Runtime())
	require.Error(t, res.Err)
	require.Contains(t, string(res.Stderr), "already exists")
}

func TestConfigFlag_InvalidConfigIsReported(t *testing.T) {
	t.Parallel()

	sb := NewSandbox(t)
	require.NoError(t, sb.Runtime().Mkdir(home+"/etc", 0o755, true))
	sb.MustWriteFile(home+"/etc/qsutil.yaml", []byte("logLevel: shout\n"), 0o644)

	res := NewProcess(t, false, "-c", "~/etc/qsutil.yaml", "config", "path").Run(sb.Context(), sb.Runtime())
	require.NoError(t, res.Err)
	require.Equal(t, home+"/etc/qsutil.yaml\n", string(res.Stdout))

	res = NewProcess(t, false, "-c", "~/etc/qsutil.yaml", "dock", "merge").Run(sb.Context(), sb.Runtime())
	require.Error(t, res.Err)
	require.Contains(t, string(res.Stderr), `invalid qsutil config `+home+`/etc/qsutil.yaml: unknown logLevel "shout"`)
}

func TestUnknownCommand(t *testing.T) {
	t.Parallel()

	sb := NewSandbox(t)
	res := NewProcess(t, false, "frobnicate").Run(sb.Context(), sb.Runtime())
	require.Error(t, res.Err)
	require.Contains(t, string(res.Stderr), "error: unknown command")
}
