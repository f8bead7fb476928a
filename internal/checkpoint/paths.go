// Package checkpoint persists the best-known solution and run statistics
// across restarts, keyed by instance hash, so a later run can read back
// what an earlier run found. The search does not start from a stored
// solution: a resumed run explores the tree from the root again. Grounded on
// hailam-chessplay's internal/storage (BadgerDB-backed user-preferences
// store): same platform-specific data directory and Open/Close shape,
// repurposed from game preferences to solver run state.
package checkpoint

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "guillotine-solver"

// DataDir returns the platform-specific data directory for the
// application: macOS uses ~/Library/Application Support, Windows uses
// %APPDATA%, everything else follows XDG_DATA_HOME / ~/.local/share.
func DataDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		baseDir = filepath.Join(home, "Library", "Application Support")

	case "windows":
		baseDir = os.Getenv("APPDATA")
		if baseDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(home, "AppData", "Roaming")
		}

	default:
		baseDir = os.Getenv("XDG_DATA_HOME")
		if baseDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(home, ".local", "share")
		}
	}

	dir := filepath.Join(baseDir, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// DatabaseDir returns the directory for the BadgerDB checkpoint store.
func DatabaseDir() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	dbDir := filepath.Join(dataDir, "checkpoints")
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return "", err
	}
	return dbDir, nil
}
