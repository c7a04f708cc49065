// Creates a dedicated "Daily Devotionals" section on the configured Notion
// page and prints the toggle block ID. Set TARGET_BLOCK_ID to that ID to make
// daily verses appear inside the toggle instead of at the page root.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"votd-notion-sync/internal/notion"
	"votd-notion-sync/internal/votd"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg, err := votd.LoadConfig()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	client := notion.NewClient(cfg.Token)

	log.Printf("Creating devotional section on page %s", cfg.PageID)
	created, err := client.AppendChildren(ctx, cfg.PageID, notion.SectionBlocks())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	toggleID := ""
	for _, block := range created {
		if block.Type == "toggle" {
			toggleID = block.ID
			break
		}
	}

	if toggleID == "" {
		fmt.Fprintln(os.Stderr, "Error: no toggle block in API response")
		os.Exit(1)
	}

	fmt.Println("Section created successfully!")
	fmt.Printf("Toggle block ID: %s\n", toggleID)
	fmt.Println()
	fmt.Println("To publish verses inside the toggle, set:")
	fmt.Printf("  TARGET_BLOCK_ID=%s\n", toggleID)
}
