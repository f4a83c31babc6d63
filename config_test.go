package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"canned_responder/responder"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"PORT", "KEYWORD_FILE", "DEFAULT_FILE", "LENIENT_BLOCKS", "WATCH_FILES", "RANDOM_SEED"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8060", cfg.Port)
	assert.Equal(t, responder.DefaultTableFile, cfg.KeywordFile)
	assert.Equal(t, responder.DefaultPoolFile, cfg.DefaultFile)
	assert.Equal(t, responder.StrictBlocks, cfg.BlockMode)
	assert.True(t, cfg.WatchFiles)
	assert.False(t, cfg.HasSeed)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9000")
	t.Setenv("KEYWORD_FILE", "/srv/keywords.txt")
	t.Setenv("DEFAULT_FILE", "/srv/defaults.txt")
	t.Setenv("LENIENT_BLOCKS", "true")
	t.Setenv("WATCH_FILES", "false")
	t.Setenv("RANDOM_SEED", "42")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "/srv/keywords.txt", cfg.KeywordFile)
	assert.Equal(t, "/srv/defaults.txt", cfg.DefaultFile)
	assert.Equal(t, responder.LenientBlocks, cfg.BlockMode)
	assert.False(t, cfg.WatchFiles)
	assert.True(t, cfg.HasSeed)
	assert.Equal(t, int64(42), cfg.Seed)
}

func TestLoadConfigInvalid(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Setenv("RANDOM_SEED", "abc")
	_, err := LoadConfig()
	assert.ErrorContains(t, err, "RANDOM_SEED")

	t.Setenv("RANDOM_SEED", "")
	t.Setenv("LENIENT_BLOCKS", "maybe")
	_, err = LoadConfig()
	assert.ErrorContains(t, err, "LENIENT_BLOCKS")
}

func TestLoadConfigDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PORT=7000\nLENIENT_BLOCKS=1\n"), 0o644))

	// Registered so the values godotenv sets are restored after the test.
	t.Setenv("PORT", "")
	t.Setenv("LENIENT_BLOCKS", "")
	require.NoError(t, os.Unsetenv("PORT"))
	require.NoError(t, os.Unsetenv("LENIENT_BLOCKS"))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.Port)
	assert.Equal(t, responder.LenientBlocks, cfg.BlockMode)
}
