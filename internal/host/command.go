package host

import "strings"

// Describes one external invocation on the build host.
type Command struct {
	Args       []string // Program and arguments; Args[0] is the program.
	Dir        string   // Working directory. Empty runs in the process cwd.
	Env        []string // Extra "KEY=value" entries merged over the host environment.
	Privileged bool     // Run via sudo when not already root.
}

// Returns the command line as a single printable string.
//
// Privileged commands are shown with their sudo prefix so the transcript
// reflects what actually ran.
func (c Command) String() string {
	args := c.Args
	if c.Privileged {
		args = append([]string{"sudo"}, args...)
	}
	return strings.Join(args, " ")
}

// Merges override env vars on top of a base env slice.
//
// Later entries win. Malformed entries without an equals sign are skipped.
func mergeEnv(base, overrides []string) []string {
	merged := make(map[string]string, len(base)+len(overrides))
	order := make([]string, 0, len(base)+len(overrides))

	for _, entry := range append(append([]string{}, base...), overrides...) {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if _, seen := merged[k]; !seen {
			order = append(order, k)
		}
		merged[k] = v
	}

	result := make([]string, 0, len(merged))
	for _, k := range order {
		result = append(result, k+"="+merged[k])
	}
	return result
}
