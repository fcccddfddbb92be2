package debug

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogfDisabled(t *testing.T) {
	SetOutput(nil)
	assert.False(t, Enabled())
	Logf("dropped %d", 1)
}

func TestLogfWritesLine(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(nil) })

	require.True(t, Enabled())
	Logf("clock %s done", "Work")
	assert.Regexp(t, `^\[DEBUG \d\d:\d\d:\d\d\.\d{3}\] clock Work done\n$`, buf.String())
}

func TestEnableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "clockwork.log")
	require.NoError(t, Enable(path))
	Logf("hello")
	require.NoError(t, Close())
	assert.False(t, Enabled())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "] hello\n")
}
