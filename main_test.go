package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenLogger_Discard(t *testing.T) {
	logger, closeLog, err := openLogger("")
	require.NoError(t, err)
	defer closeLog()
	assert.NotPanics(t, func() { logger.Println("dropped") })
}

func TestOpenLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	logger, closeLog, err := openLogger(path)
	require.NoError(t, err)

	logger.Println("level 1 cleared")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "level 1 cleared")
}

func TestOpenLogger_BadPath(t *testing.T) {
	_, _, err := openLogger(filepath.Join(t.TempDir(), "missing", "game.log"))
	assert.Error(t, err)
}

func TestRun_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("starting_health = 0\n"), 0o644))

	_, finished, err := run(path)
	assert.Error(t, err)
	assert.False(t, finished)
}
