// Package build orchestrates the sequential from-source build pipeline.
//
// A step is one named upstream project to fetch, configure, build, and
// install. Each stage of a step maps to a recipe, a short sequence of
// external commands. Recipes are selected per step name from a fixed
// table, with a generic make-based recipe as the fallback. The runner
// executes steps strictly in declaration order and stops at the first
// failing command; the scratch tree is removed when the run ends,
// regardless of outcome.
//
// Command execution is delegated to the host package. Only install-stage
// commands run privileged.
//
// Example usage:
//
//	result, err := build.Run(ctx, host.New(), build.Options{
//	    Steps:   catalog.Steps(catalog.ProfileDesktop),
//	    Scratch: paths.Scratch(),
//	    Output:  transcript.Writer(),
//	})
//	if err != nil {
//	    return err
//	}
package build
