package cli

import (
	"context"
	"log/slog"

	"github.com/cruciblehq/forgeup/internal/apt"
	"github.com/cruciblehq/forgeup/internal/build"
	"github.com/cruciblehq/forgeup/internal/catalog"
	"github.com/cruciblehq/forgeup/internal/host"
	"github.com/cruciblehq/forgeup/internal/paths"
	"github.com/cruciblehq/forgeup/internal/transcript"
)

// Represents the 'forgeup run' command.
type RunCmd struct {
	Profile      string `help:"Step and package profile." enum:"desktop,full" default:"desktop"`
	Keep         bool   `help:"Preserve the scratch tree after the run."`
	SkipPackages bool   `help:"Skip the apt package bootstrap."`
}

// Executes the run command.
//
// Opens a transcript, checks prerequisites, bootstraps system packages,
// and executes every catalog step in order. The first failure aborts the
// run with a non-zero exit; the scratch tree is removed either way.
func (c *RunCmd) Run(ctx context.Context) error {
	t, err := transcript.Open(paths.Logs())
	if err != nil {
		return err
	}
	defer t.Close()

	attachTranscript(t)
	slog.Info("transcript opened", "path", t.Path())

	x := host.New()
	if err := build.CheckPrerequisites(x); err != nil {
		return err
	}

	profile := catalog.Profile(c.Profile)
	out := t.Writer()

	if !c.SkipPackages {
		if err := apt.Update(ctx, x, out); err != nil {
			return err
		}
		if err := apt.Install(ctx, x, out, catalog.Packages(profile)); err != nil {
			return err
		}
	}

	scratch := RootCmd.Scratch
	if scratch == "" {
		scratch = paths.Scratch()
	}

	result, err := build.Run(ctx, x, build.Options{
		Steps:   catalog.Steps(profile),
		Scratch: scratch,
		Output:  out,
		Keep:    c.Keep,
	})
	if err != nil {
		slog.Error("run failed",
			"step", result.FailedStep,
			"stage", result.FailedStage,
			"completed", len(result.Completed),
		)
		return err
	}

	slog.Info("all steps installed", "steps", len(result.Completed), "transcript", t.Path())
	return nil
}
