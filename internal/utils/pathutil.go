package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// ExpandFilePath resolves a leading "~" to the user's home directory and
// converts the result to an absolute path. Paths without a leading "~"
// are only made absolute.
func ExpandFilePath(path string) (string, error) {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Abs(filepath.Join(home, path[1:]))
	}
	return filepath.Abs(path)
}
