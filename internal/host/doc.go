// Package host runs external commands on the build host.
//
// A [Command] describes one invocation: argv, working directory, extra
// environment entries, and whether the command needs privileges. The
// [Host] executor runs commands via os/exec with combined output streamed
// to a caller-supplied writer, typically the run transcript. Privileged
// commands are prefixed with sudo unless the process already runs as root.
//
// A non-zero exit code is not treated as an error; the caller inspects
// [ExecResult.ExitCode] and decides. Errors are reserved for commands that
// could not be started or were cancelled.
//
// Example usage:
//
//	h := host.New()
//	result, err := h.Run(ctx, host.Command{
//	    Args: []string{"git", "clone", url, dir},
//	}, transcript)
//	if err != nil {
//	    return err
//	}
//	if result.ExitCode != 0 {
//	    return fmt.Errorf("clone failed with exit code %d", result.ExitCode)
//	}
package host
