package cli_test

import (
	"context"
	"embed"
	"testing"

	"github.com/jlrickert/cli-toolkit/sandbox"
	"github.com/jlrickert/cli-toolkit/toolkit"
	"github.com/qsdots/qsutil/pkg/cli"
)

//go:embed all:data/**
var testdata embed.FS

const home = "/home/testuser"

func NewSandbox(t *testing.T, opts ...sandbox.Option) *sandbox.Sandbox {
	return sandbox.NewSandbox(t, &sandbox.Options{
		Data: testdata,
		Home: home,
		User: "testuser",
	}, opts...)
}

func NewProcess(t *testing.T, isTTY bool, args ...string) *sandbox.Process {
	return NewProfileProcess(t, cli.QsutilProfile(), isTTY, args...)
}

func NewProfileProcess(t *testing.T, profile cli.Profile, isTTY bool, args ...string) *sandbox.Process {
	return sandbox.NewProcess(func(ctx context.Context, rt *toolkit.Runtime) (int, error) {
		return cli.RunWithProfile(ctx, rt, args, profile)
	}, isTTY)
}
