package qsutil_test

import (
	"embed"
	"path/filepath"
	"testing"

	"github.com/jlrickert/cli-toolkit/sandbox"
	"github.com/qsdots/qsutil/pkg/qsutil"
	"github.com/stretchr/testify/require"
)

//go:embed all:data/**
var testdata embed.FS

func NewSandbox(t *testing.T, opts ...sandbox.Option) *sandbox.Sandbox {
	return sandbox.NewSandbox(t,
		&sandbox.Options{
			Data: testdata,
			Home: filepath.FromSlash("/home/testuser"),
			User: "testuser",
		}, opts...)
}

func newTool(t *testing.T, sb *sandbox.Sandbox, configPath string) *qsutil.Tool {
	t.Helper()
	tool, err := qsutil.NewTool(qsutil.ToolOptions{Runtime: sb.Runtime(), ConfigPath: configPath})
	require.NoError(t, err)
	return tool
}
