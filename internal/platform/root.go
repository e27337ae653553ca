package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ResolveNotesPath expands a leading "~" to the user's home directory and
// returns the absolute, cleaned path. An empty path stays empty.
func ResolveNotesPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return abs, nil
}
