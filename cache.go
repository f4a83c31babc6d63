package main

import (
	"fmt"
	"log"
	"math/rand"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"canned_responder/responder"
)

// lockedRand serializes draws so concurrent fallback requests can share one
// source.
type lockedRand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func (r *lockedRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Intn(n)
}

// ResponderCache holds the current generator and rebuilds it when the
// response files change on disk.
type ResponderCache struct {
	sync.RWMutex
	generator   *responder.Generator
	loadedAt    time.Time
	keywordFile string
	defaultFile string
	mode        responder.BlockMode
	rnd         *lockedRand
	watcher     *fsnotify.Watcher
}

// NewResponderCache loads the response files named in cfg.
func NewResponderCache(cfg Config) *ResponderCache {
	seed := time.Now().UnixNano()
	if cfg.HasSeed {
		seed = cfg.Seed
	}

	rc := &ResponderCache{
		keywordFile: cfg.KeywordFile,
		defaultFile: cfg.DefaultFile,
		mode:        cfg.BlockMode,
		rnd:         &lockedRand{rnd: rand.New(rand.NewSource(seed))},
	}
	rc.Reload()
	return rc
}

// Generator returns the generator currently in use.
func (rc *ResponderCache) Generator() *responder.Generator {
	rc.RLock()
	defer rc.RUnlock()
	return rc.generator
}

// Reload rebuilds the generator from disk and returns it with its build time.
// The random source carries over. Keys are normalized like tokenized input.
func (rc *ResponderCache) Reload() (*responder.Generator, time.Time) {
	g := responder.New(rc.keywordFile, rc.defaultFile,
		responder.WithRand(rc.rnd),
		responder.WithBlockMode(rc.mode),
		responder.WithKeyNormalizer(normalizeText),
	)
	now := time.Now()

	rc.Lock()
	rc.generator = g
	rc.loadedAt = now
	rc.Unlock()

	reloadsTotal.Inc()
	return g, now
}

// LoadedAt reports when the current generator was built.
func (rc *ResponderCache) LoadedAt() time.Time {
	rc.RLock()
	defer rc.RUnlock()
	return rc.loadedAt
}

// StartWatching watches the directories holding both response files, so a
// file replaced on save is still picked up.
func (rc *ResponderCache) StartWatching() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	dirs := map[string]bool{
		filepath.Dir(rc.keywordFile): true,
		filepath.Dir(rc.defaultFile): true,
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		log.Printf("File watcher initialized for: %s", dir)
	}

	rc.watcher = watcher
	go rc.watchFiles(watcher)
	return nil
}

// Close stops the file watcher, if running.
func (rc *ResponderCache) Close() {
	if rc.watcher != nil {
		rc.watcher.Close()
	}
}

func (rc *ResponderCache) isResponseFile(name string) bool {
	name = filepath.Clean(name)
	return name == filepath.Clean(rc.keywordFile) || name == filepath.Clean(rc.defaultFile)
}

func (rc *ResponderCache) watchFiles(watcher *fsnotify.Watcher) {
	log.Println("File watcher started")

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !rc.isResponseFile(event.Name) {
				continue
			}

			// Small delay to ensure file write is complete
			time.Sleep(100 * time.Millisecond)

			log.Printf("File changed: %s, reloading responses", event.Name)
			rc.Reload()

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("File watcher error: %v", err)
		}
	}
}
