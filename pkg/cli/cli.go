package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jlrickert/cli-toolkit/toolkit"
)

// Version is stamped into log records. Release builds override it with
// -ldflags "-X github.com/qsdots/qsutil/pkg/cli.Version=...".
var Version = "dev"

// Run executes the qsutil command tree.
func Run(ctx context.Context, rt *toolkit.Runtime, args []string) (int, error) {
	return RunWithProfile(ctx, rt, args, QsutilProfile())
}

// RunWithProfile executes the command tree selected by profile and returns
// the process exit code. Errors are printed to the runtime's stderr.
func RunWithProfile(ctx context.Context, rt *toolkit.Runtime, args []string, profile Profile) (int, error) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if rt == nil {
		return 1, fmt.Errorf("runtime is required")
	}
	streams := rt.Stream()

	deps := &Deps{Runtime: rt, Profile: profile}
	cmd := NewRootCmd(deps)
	defer func() { deps.Shutdown() }()
	cmd.SetArgs(args)
	cmd.SetIn(streams.In)
	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.Err)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(streams.Err, "error: %s\n", renderUserError(err, deps))
		if errors.Is(err, context.Canceled) ||
			errors.Is(err, context.DeadlineExceeded) {
			return 130, err
		}
		return 1, err
	}
	return 0, nil
}
