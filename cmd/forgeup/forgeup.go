package main

import (
	"log/slog"
	"os"

	"github.com/cruciblehq/forgeup/internal"
	"github.com/cruciblehq/forgeup/internal/cli"
	"github.com/cruciblehq/forgeup/internal/transcript"
)

// The entry point for the forgeup tool.
//
// Initializes logging, displays startup information, and executes the root
// command. If any error occurs during execution, it exits with a non-zero
// code.
func main() {
	slog.SetDefault(slog.New(transcript.NewHandler(os.Stderr)))

	slog.Debug("build", "version", internal.VersionString())

	slog.Debug("forgeup is running",
		"pid", os.Getpid(),
		"cwd", cwd(),
		"args", os.Args,
	)

	if err := cli.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

// Returns the current working directory or "(unknown)".
func cwd() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "(unknown)"
	}
	return cwd
}
