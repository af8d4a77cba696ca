package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heavyedge/store"
)

func TestLogFile_WrittenAndReleased(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "logs", "heavyedge.log")
	t.Setenv("HEAVYEDGE_LOGGING_OUTPUT_PATH", logPath)

	s, err := store.Create(filepath.Join(dir, "empty.db"), 4, 1, "empty")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// success: the post-run hook closes the file
	root, a := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"--log-format", "json", "--log-level", "debug", "info", s.Path()})
	require.NoError(t, root.Execute())
	assert.NoError(t, a.close(), "already released")

	// failure: post-run hooks are skipped, close still releases the file
	root, a = newRootCmd()
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--log-format", "json", "--log-level", "debug", "info", filepath.Join(dir, "missing.db")})
	require.ErrorIs(t, root.Execute(), store.ErrNotFound)
	require.NoError(t, a.close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Equal(t, 2, bytes.Count(data, []byte(`"message":"opening store"`)))
}

func TestClose_WithoutSetup(t *testing.T) {
	_, a := newRootCmd()
	assert.NoError(t, a.close())
}
