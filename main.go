package main

import (
	"flag"
	"log"
	"os"
)

func main() {
	chat := flag.Bool("chat", false, "answer questions from stdin instead of serving HTTP")
	flag.Parse()

	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cache := NewResponderCache(cfg)
	defer cache.Close()

	if *chat {
		if err := runChat(cache, os.Stdin, os.Stdout); err != nil {
			log.Fatalf("Chat ended with error: %v", err)
		}
		return
	}

	// Start file watcher in background
	if cfg.WatchFiles {
		if err := cache.StartWatching(); err != nil {
			log.Printf("Auto-reload disabled: %v", err)
		}
	}

	e := newServer(cache)

	log.Printf("Responder started on port %s", cfg.Port)
	log.Printf("Keyword file: %s, default file: %s (%s blocks)", cfg.KeywordFile, cfg.DefaultFile, cfg.BlockMode)

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
