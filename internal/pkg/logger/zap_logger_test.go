package logger

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLogs(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")
	l := NewZapLogger(logPath, true)

	l.Info("TestModule", "first entry", map[string]interface{}{"n": 1})
	l.Warn("TestModule", "second entry", nil)
	l.Error("TestModule", "third entry", map[string]interface{}{"reason": "boom"})
	l.Sync()

	t.Run("newest first", func(t *testing.T) {
		entries, err := l.GetLogs("", 10, 0)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "third entry", entries[0].Message)
		assert.Equal(t, "first entry", entries[2].Message)
		assert.Equal(t, "TestModule", entries[0].Module)
		assert.NotEmpty(t, entries[0].Id)
	})

	t.Run("level filter", func(t *testing.T) {
		entries, err := l.GetLogs("WARN", 10, 0)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "second entry", entries[0].Message)
	})

	t.Run("pagination", func(t *testing.T) {
		entries, err := l.GetLogs("", 1, 1)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "second entry", entries[0].Message)

		entries, err = l.GetLogs("", 10, 5)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("missing file is empty, not an error", func(t *testing.T) {
		missing := &ZapLogger{filePath: filepath.Join(t.TempDir(), "absent.log")}
		entries, err := missing.GetLogs("", 10, 0)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}
