package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"canned_responder/responder"
)

// Config holds service settings read from the environment.
type Config struct {
	Port        string
	KeywordFile string
	DefaultFile string
	BlockMode   responder.BlockMode
	Seed        int64
	HasSeed     bool
	WatchFiles  bool
}

// LoadConfig reads settings from the environment, after merging an optional
// .env file. Variables already set in the environment win over .env.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Config{
		Port:        getEnv("PORT", "8060"),
		KeywordFile: getEnv("KEYWORD_FILE", responder.DefaultTableFile),
		DefaultFile: getEnv("DEFAULT_FILE", responder.DefaultPoolFile),
		BlockMode:   responder.StrictBlocks,
		WatchFiles:  true,
	}

	lenient, err := readEnvBool("LENIENT_BLOCKS", false)
	if err != nil {
		return Config{}, err
	}
	if lenient {
		cfg.BlockMode = responder.LenientBlocks
	}

	if cfg.WatchFiles, err = readEnvBool("WATCH_FILES", true); err != nil {
		return Config{}, err
	}

	if raw := strings.TrimSpace(os.Getenv("RANDOM_SEED")); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid RANDOM_SEED: %w", err)
		}
		cfg.Seed = seed
		cfg.HasSeed = true
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func readEnvBool(key string, fallback bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return value, nil
}
