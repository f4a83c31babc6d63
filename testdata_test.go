package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"canned_responder/responder"
)

const (
	testKeywords = "wifi, internet\nCheck your router and modem connections.\n\n" +
		"slow\nRestart the machine.\nThen close unused programs.\n\n"
	testDefaults = "Hmm.\n\nTell me more.\nPlease.\n"
)

// newTestCache writes both response files to a temp dir and loads them.
func newTestCache(t *testing.T) *ResponderCache {
	t.Helper()
	dir := t.TempDir()
	cfg := Config{
		KeywordFile: filepath.Join(dir, responder.DefaultTableFile),
		DefaultFile: filepath.Join(dir, responder.DefaultPoolFile),
		BlockMode:   responder.StrictBlocks,
		Seed:        1,
		HasSeed:     true,
	}
	require.NoError(t, os.WriteFile(cfg.KeywordFile, []byte(testKeywords), 0o644))
	require.NoError(t, os.WriteFile(cfg.DefaultFile, []byte(testDefaults), 0o644))

	cache := NewResponderCache(cfg)
	t.Cleanup(cache.Close)
	return cache
}
