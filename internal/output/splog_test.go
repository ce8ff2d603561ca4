package output

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplog(t *testing.T) {
	t.Run("console gets bare lines", func(t *testing.T) {
		t.Setenv("DEBUG", "")
		var buf bytes.Buffer
		splog, err := NewSplogWithConfig(&buf, "")
		require.NoError(t, err)

		splog.Info("Checked out %s", "main")
		splog.Info("%s", "100% literal")
		splog.Debug("hidden")
		splog.Warn("careful")

		require.Equal(t, "Checked out main\n100% literal\n⚠️  careful\n", buf.String())
	})

	t.Run("debug is toggled at runtime", func(t *testing.T) {
		t.Setenv("DEBUG", "")
		var buf bytes.Buffer
		splog, err := NewSplogWithConfig(&buf, "")
		require.NoError(t, err)

		splog.SetDebug(true)
		splog.Debug("refresh failed: %v", "boom")
		require.Equal(t, "refresh failed: boom\n", buf.String())
	})

	t.Run("quiet silences console only", func(t *testing.T) {
		var buf bytes.Buffer
		logFile := filepath.Join(t.TempDir(), "logs", "gitdeck.log")
		splog, err := NewSplogWithConfig(&buf, logFile)
		require.NoError(t, err)

		splog.SetQuiet(true)
		splog.Error("clone failed")
		splog.Debug("always in the file")
		require.NoError(t, splog.Close())

		require.Empty(t, buf.String())
		data, err := os.ReadFile(logFile)
		require.NoError(t, err)
		require.Contains(t, string(data), "clone failed")
		require.Contains(t, string(data), "always in the file")
		require.Contains(t, string(data), "level=DEBUG")
	})
}

func TestLogFilePath(t *testing.T) {
	t.Setenv("GITDECK_LOG_FILE", "/tmp/custom.log")
	require.Equal(t, "/tmp/custom.log", LogFilePath())

	t.Setenv("GITDECK_LOG_FILE", "")
	require.Equal(t, "gitdeck.log", filepath.Base(LogFilePath()))
}

func TestRotatingWriterEnv(t *testing.T) {
	t.Setenv("GITDECK_LOG_MAX_SIZE", "5")
	t.Setenv("GITDECK_LOG_MAX_BACKUPS", "0")
	t.Setenv("GITDECK_LOG_MAX_AGE", "not-a-number")

	w := newRotatingWriter("x.log")
	require.Equal(t, 5, w.MaxSize)
	require.Equal(t, 0, w.MaxBackups)
	require.Equal(t, 30, w.MaxAge)
}
