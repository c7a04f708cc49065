// Fetches the verse of the day and publishes it to the configured Notion
// page. Intended to be run once daily by an external scheduler.
//
// Usage: NOTION_TOKEN=... NOTION_PAGE_ID=... go run ./cmd/sync
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"votd-notion-sync/internal/votd"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cfg, err := votd.LoadConfig()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	target := cfg.PageID
	if cfg.TargetBlockID != "" {
		target = cfg.TargetBlockID
	}
	log.Printf("Starting verse of the day sync (target %s)", target)

	outcome, err := votd.New(cfg).Run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Sync failed: %v\n", err)
		os.Exit(1)
	}

	log.Printf("Published %s via %s", outcome.Verse.Citation(), outcome.Source)
	fmt.Println("Sync completed successfully")
}
