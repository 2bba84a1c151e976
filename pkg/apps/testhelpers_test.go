package apps_test

import (
	"embed"
	"path/filepath"
	"testing"

	"github.com/jlrickert/cli-toolkit/sandbox"
	"github.com/stretchr/testify/require"
)

//go:embed all:data/**
var testdata embed.FS

const systemApps = "/usr/share/applications"

func NewSandbox(t *testing.T, opts ...sandbox.Option) *sandbox.Sandbox {
	return sandbox.NewSandbox(t,
		&sandbox.Options{
			Data: testdata,
			Home: filepath.FromSlash("/home/testuser"),
			User: "testuser",
		}, opts...)
}

// writeEntry writes a desktop file named name into dir inside the sandbox.
func writeEntry(t *testing.T, sb *sandbox.Sandbox, dir, name, body string) {
	t.Helper()
	require.NoError(t, sb.Runtime().Mkdir(dir, 0o755, true))
	sb.MustWriteFile(filepath.Join(dir, name), []byte(body), 0o644)
}

func entry(name, exec, categories string) string {
	return "[Desktop Entry]\nType=Application\nName=" + name +
		"\nIcon=" + name + "\nExec=" + exec +
		"\nCategories=" + categories + "\n"
}
