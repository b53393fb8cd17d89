package apt

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/cruciblehq/forgeup/internal/host"
)

// Environment for all apt-get invocations. Suppresses configuration
// prompts that would block an unattended run.
var environ = []string{"DEBIAN_FRONTEND=noninteractive"}

// Refreshes the package index.
func Update(ctx context.Context, x host.Executor, out io.Writer) error {
	slog.Info("updating package index")
	return run(ctx, x, out, "update")
}

// Installs the given packages.
//
// Already-installed packages are left alone by apt, so repeated runs are
// idempotent. An empty list is a no-op.
func Install(ctx context.Context, x host.Executor, out io.Writer, pkgs []string) error {
	if len(pkgs) == 0 {
		return nil
	}

	slog.Info("installing packages", "count", len(pkgs))

	args := append([]string{"install", "-y", "--no-install-recommends"}, pkgs...)
	return run(ctx, x, out, args...)
}

// Runs one privileged apt-get invocation.
func run(ctx context.Context, x host.Executor, out io.Writer, args ...string) error {
	cmd := host.Command{
		Args:       append([]string{"apt-get"}, args...),
		Env:        environ,
		Privileged: true,
	}

	result, err := x.Run(ctx, cmd, out)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAptGet, err)
	}
	if result.ExitCode != 0 {
		return fmt.Errorf("%w: exit code %d", ErrAptGet, result.ExitCode)
	}
	return nil
}
