package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (

	// Name used for directory and file naming.
	toolName = "forgeup"

	// Default permission mode for directories.
	DefaultDirMode os.FileMode = 0755

	// Default permission mode for files.
	DefaultFileMode os.FileMode = 0644
)

// Path to the directory holding run transcripts.
//
//	Linux:   $XDG_STATE_HOME/forgeup/logs or ~/.local/state/forgeup/logs
//	macOS:   ~/Library/Application Support/forgeup/logs
func Logs() string {
	return filepath.Join(xdg.StateHome, toolName, "logs")
}

// Default path to the scratch root under which all steps clone and build.
//
//	Linux:   $XDG_CACHE_HOME/forgeup/src or ~/.cache/forgeup/src
//	macOS:   ~/Library/Caches/forgeup/src
func Scratch() string {
	return filepath.Join(xdg.CacheHome, toolName, "src")
}
