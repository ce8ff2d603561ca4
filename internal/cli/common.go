package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
)

// absPath resolves a path argument against the working directory
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	return abs, nil
}

// absPaths resolves every path argument, stopping at the first failure
func absPaths(paths []string) ([]string, error) {
	var firstErr error
	resolved := lo.Map(paths, func(p string, _ int) string {
		abs, err := absPath(p)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		return abs
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return resolved, nil
}

// readPipedStdin returns piped standard input, trimmed. It returns "" without
// blocking when stdin is a terminal or an empty file.
func readPipedStdin() (string, error) {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return "", err
	}
	if (stat.Mode() & os.ModeCharDevice) != 0 {
		return "", nil
	}
	if stat.Mode().IsRegular() && stat.Size() == 0 {
		return "", nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
