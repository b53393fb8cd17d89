package build

import (
	"fmt"
	"os"

	"github.com/cruciblehq/forgeup/internal/host"
)

// Tools that must be on PATH before a run starts. Build tools (meson,
// ninja, cmake) are not listed because the package bootstrap installs
// them.
var prerequisites = []string{"git", "apt-get", "sudo"}

// Verifies that every required external tool is present on PATH.
//
// Runs before any step. A missing tool is fatal; nothing is fetched or
// built. Root does not need sudo, so the sudo probe is skipped in that
// case.
func CheckPrerequisites(x host.Executor) error {
	for _, tool := range prerequisites {
		if tool == "sudo" && os.Geteuid() == 0 {
			continue
		}
		if _, err := x.LookPath(tool); err != nil {
			return fmt.Errorf("%w: %s not found on PATH", ErrPrerequisite, tool)
		}
	}
	return nil
}
