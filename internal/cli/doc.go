// Parses flags and dispatches subcommands for the forgeup tool.
//
// The tool accepts the following global flags:
//
//	-q, --quiet     Suppress informational output.
//	-d, --debug     Enable debug output.
//	    --scratch   Override the default scratch directory.
//
// After parsing, the global logger is reconfigured to reflect the final
// level and terminal capabilities before the selected command runs.
package cli
