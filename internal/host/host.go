package host

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Runs commands on the build host.
//
// Implementations must stream the combined stdout and stderr of each
// command to the supplied writer while the command runs.
type Executor interface {

	// Runs a command and waits for it to exit. A non-zero exit code is
	// reported through the result, not as an error.
	Run(ctx context.Context, cmd Command, out io.Writer) (*ExecResult, error)

	// Resolves an executable name against the host PATH.
	LookPath(name string) (string, error)
}

// Outcome of a command execution.
type ExecResult struct {
	ExitCode int // Exit code of the process.
}

// Executes commands directly on the host via os/exec.
type Host struct{}

// Creates a new host executor.
func New() *Host {
	return &Host{}
}

// Runs a command on the host.
//
// Privileged commands are prefixed with sudo unless the current process
// already runs as root. Combined output streams to out. The command is
// killed when the context is cancelled, and the context error is returned
// in that case.
func (h *Host) Run(ctx context.Context, cmd Command, out io.Writer) (*ExecResult, error) {
	args := cmd.Args
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: empty command", ErrExec)
	}
	if cmd.Privileged && os.Geteuid() != 0 {
		args = append([]string{"sudo"}, args...)
	}

	c := exec.CommandContext(ctx, args[0], args[1:]...)
	c.Dir = cmd.Dir
	c.Env = mergeEnv(os.Environ(), cmd.Env)
	c.Stdout = out
	c.Stderr = out

	err := c.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExecResult{ExitCode: exitErr.ExitCode()}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrExec, err)
	}

	return &ExecResult{ExitCode: 0}, nil
}

// Resolves an executable name against the host PATH.
func (h *Host) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
