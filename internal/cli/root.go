package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/cruciblehq/forgeup/internal"
	"github.com/cruciblehq/forgeup/internal/transcript"
)

// Represents the root command for the forgeup tool.
var RootCmd struct {
	Quiet   bool   `short:"q" help:"Suppress informational output."`
	Debug   bool   `short:"d" help:"Enable debug output."`
	Scratch string `help:"Override the default scratch directory." placeholder:"PATH"`

	Run     RunCmd     `cmd:"" help:"Install packages and build every step from source."`
	List    ListCmd    `cmd:"" help:"Show the step catalog."`
	Check   CheckCmd   `cmd:"" help:"Verify required tools are present."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// Parses arguments, configures logging, and runs the selected subcommand.
func Execute() error {

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	kongCtx := kong.Parse(&RootCmd,
		kong.Name(internal.Name),
		kong.Description("Bootstraps a Debian workstation by building a fixed desktop stack from source."),
		kong.UsageOnError(),
		kong.Vars{
			"version": internal.VersionString(),
		},
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	configureLogger()

	return kongCtx.Run()
}

// Configures the global logger based on CLI flags.
func configureLogger() {
	handler, ok := slog.Default().Handler().(*transcript.Handler)
	if !ok {
		return // Not a transcript.Handler, nothing to configure
	}

	if RootCmd.Debug {
		handler.SetLevel(slog.LevelDebug)
	} else if RootCmd.Quiet {
		handler.SetLevel(slog.LevelWarn)
	} else {
		handler.SetLevel(slog.LevelInfo)
	}

	handler.SetColor(isatty(os.Stderr))
}

// Attaches an open transcript to the global logger so records are
// mirrored into the log file.
func attachTranscript(t *transcript.Transcript) {
	if handler, ok := slog.Default().Handler().(*transcript.Handler); ok {
		handler.SetFile(t.File())
	}
}

// Whether the given file is an interactive terminal.
func isatty(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
