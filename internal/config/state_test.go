package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateRoundTrip(t *testing.T) {
	dir := t.TempDir()
	want := State{Developer: "Josh", ChildFolder: "teamA", CustomTemplate: "custom-1"}

	require.NoError(t, SaveState(dir, want))
	assert.FileExists(t, filepath.Join(dir, ".crogen", "state.yaml"))
	assert.Equal(t, want, LoadState(dir))
}

func TestLoadStateMissing(t *testing.T) {
	assert.Equal(t, State{}, LoadState(t.TempDir()))
}

func TestLoadStateCorrupt(t *testing.T) {
	dir := t.TempDir()
	path := StatePath(dir)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("developer: [unterminated"), 0644))

	assert.Equal(t, State{}, LoadState(dir))
}
