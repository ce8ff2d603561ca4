// Package config manages gitdeck's per-repository configuration.
//
// It handles:
//   - Reading .git/.gitdeck_config with defaults when the file is missing
//   - Environment overrides for the git binary and command timeout
//   - Writing individual settings back to the file
package config
