package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gitdeck.dev/gitdeck/internal/git"
)

// FileName is the config file inside the .git directory
const FileName = ".gitdeck_config"

// DefaultHistoryLimit caps "gitdeck log" when no limit is configured
const DefaultHistoryLimit = 50

// RepoConfig represents the repository configuration
type RepoConfig struct {
	GitBinary      *string `json:"gitBinary,omitempty"`
	Remote         *string `json:"remote,omitempty"`
	CommandTimeout *string `json:"commandTimeout,omitempty"`
	HistoryLimit   *int    `json:"historyLimit,omitempty"`
}

// Settings is the resolved configuration with defaults and environment
// overrides applied
type Settings struct {
	GitBinary      string
	Remote         string
	CommandTimeout time.Duration
	HistoryLimit   int
}

// Path returns the config file location for a repository root
func Path(repoRoot string) string {
	return filepath.Join(repoRoot, ".git", FileName)
}

// GetRepoConfig reads the repository configuration. A missing file yields
// an empty config.
func GetRepoConfig(repoRoot string) (*RepoConfig, error) {
	data, err := os.ReadFile(Path(repoRoot))
	if errors.Is(err, os.ErrNotExist) {
		return &RepoConfig{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read repo config: %w", err)
	}

	var config RepoConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse repo config: %w", err)
	}
	return &config, nil
}

// Load resolves the settings for a repository. GITDECK_GIT and
// GITDECK_TIMEOUT override the file.
func Load(repoRoot string) (Settings, error) {
	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return Settings{}, err
	}

	settings := Settings{
		GitBinary:      "git",
		Remote:         git.DefaultRemote,
		CommandTimeout: git.DefaultCommandTimeout,
		HistoryLimit:   DefaultHistoryLimit,
	}

	if config.GitBinary != nil && *config.GitBinary != "" {
		settings.GitBinary = *config.GitBinary
	}
	if config.Remote != nil && *config.Remote != "" {
		settings.Remote = *config.Remote
	}
	if config.CommandTimeout != nil && *config.CommandTimeout != "" {
		timeout, err := parseTimeout(*config.CommandTimeout)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid commandTimeout in %s: %w", Path(repoRoot), err)
		}
		settings.CommandTimeout = timeout
	}
	if config.HistoryLimit != nil {
		if *config.HistoryLimit < 0 {
			return Settings{}, fmt.Errorf("historyLimit must not be negative, got %d", *config.HistoryLimit)
		}
		settings.HistoryLimit = *config.HistoryLimit
	}

	if v := os.Getenv("GITDECK_GIT"); v != "" {
		settings.GitBinary = v
	}
	if v := os.Getenv("GITDECK_TIMEOUT"); v != "" {
		timeout, err := parseTimeout(v)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid GITDECK_TIMEOUT: %w", err)
		}
		settings.CommandTimeout = timeout
	}

	return settings, nil
}

// parseTimeout accepts a Go duration ("90s") or a bare number of seconds
func parseTimeout(s string) (time.Duration, error) {
	if secs, err := strconv.Atoi(s); err == nil {
		if secs <= 0 {
			return 0, fmt.Errorf("timeout must be positive, got %q", s)
		}
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("timeout must be positive, got %q", s)
	}
	return d, nil
}

// Update applies fn to the stored config and writes it back
func Update(repoRoot string, fn func(*RepoConfig) error) error {
	if _, err := os.Stat(filepath.Join(repoRoot, ".git")); err != nil {
		return fmt.Errorf("not a repository root: %w", err)
	}

	config, err := GetRepoConfig(repoRoot)
	if err != nil {
		return err
	}
	if err := fn(config); err != nil {
		return err
	}

	configJSON, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(Path(repoRoot), configJSON, 0600)
}

// SetRemote stores the remote used for commit history URLs
func SetRemote(repoRoot, remote string) error {
	return Update(repoRoot, func(c *RepoConfig) error {
		c.Remote = &remote
		return nil
	})
}

// SetHistoryLimit stores the default "gitdeck log" limit
func SetHistoryLimit(repoRoot string, limit int) error {
	if limit < 0 {
		return fmt.Errorf("history limit must not be negative, got %d", limit)
	}
	return Update(repoRoot, func(c *RepoConfig) error {
		c.HistoryLimit = &limit
		return nil
	})
}
