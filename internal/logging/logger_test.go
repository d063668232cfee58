package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)
	l.Debug("hidden")
	l.Warn("shown", "err", "boom")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "err=boom")

	buf.Reset()
	New(&buf, true).Debug("traced")
	assert.Contains(t, buf.String(), "traced")
}

func TestOpenWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "justrun.log")
	l, closeFn, err := Open(path, false)
	require.NoError(t, err)
	l.Error("listing failed")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "listing failed")
}

func TestOpenWithoutPath(t *testing.T) {
	l, closeFn, err := Open("", true)
	require.NoError(t, err)
	require.NotNil(t, l)
	assert.NoError(t, closeFn())
}
