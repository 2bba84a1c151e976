package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jlrickert/cli-toolkit/toolkit"
	"github.com/qsdots/qsutil/pkg/cli"
)

func main() {
	ctx := context.Background()

	rt, err := toolkit.NewRuntime()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	// RunWithProfile reports errors on stderr itself.
	exitCode, _ := cli.RunWithProfile(ctx, rt, os.Args[1:], cli.AddDockConfigProfile())
	os.Exit(exitCode)
}
