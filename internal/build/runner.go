package build

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cruciblehq/forgeup/internal/host"
	"github.com/cruciblehq/forgeup/internal/paths"
)

// Controls a pipeline run.
type Options struct {
	Steps   []Step    // Steps to execute, in order.
	Scratch string    // Scratch root under which all steps clone and build.
	Output  io.Writer // Destination for external command output. Nil discards.
	Keep    bool      // Preserve the scratch tree after the run.
}

// Outcome of a pipeline run.
//
// On failure, FailedStep and FailedStage identify where the run stopped;
// steps after the failing one were never started.
type Result struct {
	Completed   []string // Names of steps that finished all stages.
	FailedStep  string   // Name of the failing step. Empty on success.
	FailedStage Stage    // Stage that failed. Empty on success.
}

// Executes the steps strictly in order, stopping at the first failure.
//
// Each step runs fetch, configure, build, and install, each gated on the
// previous stage succeeding. Any non-zero exit or execution error aborts
// the whole run; remaining stages and steps are skipped. The scratch tree
// is removed when the run ends, success or failure, unless Keep is set.
//
// The returned result is always non-nil. On failure it names the failing
// step and stage, and the error wraps the stage's sentinel.
func Run(ctx context.Context, x host.Executor, opts Options) (*Result, error) {
	result := &Result{}

	if err := os.MkdirAll(opts.Scratch, paths.DefaultDirMode); err != nil {
		return result, fmt.Errorf("%w: %v", ErrScratch, err)
	}
	if !opts.Keep {
		defer removeScratch(opts.Scratch)
	}

	if opts.Output == nil {
		opts.Output = io.Discard
	}

	slog.Info("starting run", "steps", len(opts.Steps), "scratch", opts.Scratch)

	for _, step := range opts.Steps {
		if err := runStep(ctx, x, step, opts, result); err != nil {
			return result, err
		}
		result.Completed = append(result.Completed, step.Name)
	}

	slog.Info("run complete", "steps", len(result.Completed))
	return result, nil
}

// Runs all stages of a single step. On failure, records the step and
// stage in the result and returns an error wrapping the stage sentinel.
func runStep(ctx context.Context, x host.Executor, step Step, opts Options, result *Result) error {
	recipe := RecipeFor(step.Name)
	dir := filepath.Join(opts.Scratch, step.Name)

	slog.Info("running step", "step", step.Name, "recipe", recipe.Name())

	// A leftover checkout from an aborted run would make the clone fail.
	if err := os.RemoveAll(dir); err != nil {
		result.FailedStep = step.Name
		result.FailedStage = StageFetch
		return fmt.Errorf("%w: step %q: %v", ErrFetch, step.Name, err)
	}

	stages := []struct {
		stage    Stage
		commands []host.Command
	}{
		{StageFetch, recipe.Fetch(step, dir)},
		{StageConfigure, recipe.Configure(dir)},
		{StageBuild, recipe.Build(dir)},
		{StageInstall, recipe.Install(dir)},
	}

	for _, s := range stages {
		if err := runCommands(ctx, x, s.commands, opts.Output); err != nil {
			result.FailedStep = step.Name
			result.FailedStage = s.stage
			return fmt.Errorf("%w: step %q: %w", s.stage.failure(), step.Name, err)
		}
	}

	return nil
}

// Runs a command sequence, stopping at the first non-zero exit.
func runCommands(ctx context.Context, x host.Executor, commands []host.Command, out io.Writer) error {
	for _, cmd := range commands {
		slog.Debug("exec", "command", cmd.String(), "dir", cmd.Dir)

		result, err := x.Run(ctx, cmd, out)
		if err != nil {
			return err
		}
		if result.ExitCode != 0 {
			return fmt.Errorf("%s: exit code %d", cmd.String(), result.ExitCode)
		}
	}
	return nil
}

// Removes the scratch tree. Removal failure is reported but does not
// change the run's outcome.
func removeScratch(scratch string) {
	slog.Info("removing scratch tree", "scratch", scratch)
	if err := os.RemoveAll(scratch); err != nil {
		slog.Warn("failed to remove scratch tree", "scratch", scratch, "error", err)
	}
}
