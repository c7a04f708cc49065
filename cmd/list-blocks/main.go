// Lists all blocks of the configured Notion page, recursively, with their
// IDs. Helps pick the right TARGET_BLOCK_ID for the sync.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"votd-notion-sync/internal/notion"
	"votd-notion-sync/internal/votd"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	cfg, err := votd.LoadConfig()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	client := notion.NewClient(cfg.Token)

	if err := listBlocks(ctx, client, cfg.PageID, 0); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func listBlocks(ctx context.Context, client *notion.Client, blockID string, depth int) error {
	children, err := client.ListChildren(ctx, blockID)
	if err != nil {
		return err
	}

	indent := strings.Repeat("  ", depth)
	for i, block := range children {
		fmt.Printf("%s[%d] %s\n", indent, i+1, strings.ToUpper(block.Type))
		fmt.Printf("%s    ID: %s\n", indent, block.ID)
		if content := block.PlainText(); content != "" {
			if len(content) > 60 {
				content = content[:60] + "..."
			}
			fmt.Printf("%s    Content: %s\n", indent, content)
		}

		if block.HasChildren {
			if err := listBlocks(ctx, client, block.ID, depth+1); err != nil {
				return err
			}
		}
	}

	return nil
}
