package icons_test

import (
	"embed"
	"path/filepath"
	"testing"

	"github.com/jlrickert/cli-toolkit/sandbox"
	"github.com/qsdots/qsutil/pkg/icons"
	"github.com/stretchr/testify/require"
)

//go:embed all:data/**
var testdata embed.FS

const (
	home      = "/home/testuser"
	userIcons = home + "/.local/share/icons"
)

func NewSandbox(t *testing.T, opts ...sandbox.Option) *sandbox.Sandbox {
	return sandbox.NewSandbox(t,
		&sandbox.Options{
			Data: testdata,
			Home: filepath.FromSlash(home),
			User: "testuser",
		}, opts...)
}

// writeFile creates path and its parent directories inside the sandbox.
func writeFile(t *testing.T, sb *sandbox.Sandbox, path, body string) {
	t.Helper()
	require.NoError(t, sb.Runtime().Mkdir(filepath.Dir(path), 0o755, true))
	sb.MustWriteFile(path, []byte(body), 0o644)
}

func writeIcon(t *testing.T, sb *sandbox.Sandbox, path string) {
	t.Helper()
	writeFile(t, sb, path, "<svg xmlns=\"http://www.w3.org/2000/svg\"/>\n")
}

func newResolver(t *testing.T, sb *sandbox.Sandbox, theme string) *icons.Resolver {
	t.Helper()
	r, err := icons.NewResolver(sb.Context(), sb.Runtime(), icons.ResolverOptions{Theme: theme})
	require.NoError(t, err)
	return r
}
