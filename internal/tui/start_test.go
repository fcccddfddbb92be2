package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlayer(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "bell.wav")
	require.NoError(t, os.WriteFile(existing, []byte("RIFF"), 0o600))

	tests := []struct {
		name    string
		path    string
		wantNil bool
	}{
		{name: "no sound configured", path: "", wantNil: true},
		{name: "missing file", path: filepath.Join(dir, "missing.wav"), wantNil: true},
		{name: "existing file", path: existing, wantNil: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var player any
			assert.NotPanics(t, func() { player = newPlayer(tt.path, "true") })
			if tt.wantNil {
				assert.Nil(t, player)
			} else {
				assert.NotNil(t, player)
			}
		})
	}
}
