// Package transcript captures the console output of a run.
//
// A [Transcript] is a timestamped, append-only log file under the state
// directory. Everything the operator sees on the console during a run is
// also written to the transcript: log records via [Handler], and the
// combined output of external commands via [Transcript.Writer].
//
// [Handler] is the slog handler for the whole tool. It pretty-prints
// records to the console, optionally with color, and mirrors them in plain
// form to the transcript file once one is attached.
package transcript
