// Fetches today's verse through the fallback chain and prints it as JSON.
// Useful for debugging sources without touching Notion.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"votd-notion-sync/internal/votd"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	verse, name, err := votd.DefaultChain().Fetch(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Fetched from %s\n", name)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(verse)
}
