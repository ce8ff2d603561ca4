package output

import (
	"os"
	"path/filepath"
)

// LogFilePath returns the log file location.
// GITDECK_LOG_FILE wins; otherwise ~/.gitdeck/logs/gitdeck.log.
func LogFilePath() string {
	if customPath := os.Getenv("GITDECK_LOG_FILE"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "gitdeck.log"
	}
	return filepath.Join(homeDir, ".gitdeck", "logs", "gitdeck.log")
}
