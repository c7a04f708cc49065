// Package votd drives one verse-of-the-day sync run: fetch via the source
// fallback chain, format into Notion blocks, publish to the configured page.
package votd

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"votd-notion-sync/internal/model"
	"votd-notion-sync/internal/notion"
	"votd-notion-sync/internal/source"
)

// Config holds everything a sync run needs. Loaded once from the environment
// and never mutated.
type Config struct {
	Token         string
	PageID        string
	TargetBlockID string // optional; append inside this block instead of the page root
	ClearDaily    bool
}

// ConfigError reports missing required configuration.
type ConfigError struct {
	Missing []string
}

func (e *ConfigError) Error() string {
	return "missing required configuration: " + strings.Join(e.Missing, ", ")
}

// PublishError wraps a failed write to the Notion API.
type PublishError struct {
	Err error
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("publishing to notion: %v", e.Err)
}

func (e *PublishError) Unwrap() error {
	return e.Err
}

// LoadConfig reads configuration from environment variables. NOTION_TOKEN and
// NOTION_PAGE_ID are required; TARGET_BLOCK_ID and CLEAR_DAILY are optional.
func LoadConfig() (Config, error) {
	cfg := Config{
		Token:         os.Getenv("NOTION_TOKEN"),
		PageID:        os.Getenv("NOTION_PAGE_ID"),
		TargetBlockID: os.Getenv("TARGET_BLOCK_ID"),
		ClearDaily:    strings.ToLower(os.Getenv("CLEAR_DAILY")) == "true",
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var missing []string
	if c.Token == "" {
		missing = append(missing, "NOTION_TOKEN")
	}
	if c.PageID == "" {
		missing = append(missing, "NOTION_PAGE_ID")
	}
	if len(missing) > 0 {
		return &ConfigError{Missing: missing}
	}
	return nil
}

// Outcome describes a successful sync run.
type Outcome struct {
	Source string
	Verse  model.Verse
}

// Driver performs sync runs. Fields are set by New and may be replaced
// before the first Run.
type Driver struct {
	Config Config
	Chain  *source.Chain
	Client *notion.Client
	Now    func() time.Time
}

// New creates a driver with the default source chain.
func New(cfg Config) *Driver {
	return &Driver{
		Config: cfg,
		Chain:  DefaultChain(),
		Client: notion.NewClient(cfg.Token),
		Now:    time.Now,
	}
}

// DefaultChain builds the source fallback chain in priority order: the cheap
// CDN probe first, the headless-browser render last.
func DefaultChain() *source.Chain {
	return source.NewChain(
		source.NewLifeChurchSource(""),
		source.NewBibleComSource(""),
		source.NewOurMannaSource(""),
		source.NewBibleGatewaySource(""),
		source.NewRenderedBibleComSource(""),
	)
}

// Run executes one sync: validate config, fetch today's verse through the
// fallback chain, format it, optionally clear the target, and append the
// blocks. No network call is made when the config is invalid.
func (d *Driver) Run(ctx context.Context) (*Outcome, error) {
	if err := d.Config.validate(); err != nil {
		return nil, err
	}

	target := d.Config.PageID
	if d.Config.TargetBlockID != "" {
		target = d.Config.TargetBlockID
	}

	verse, sourceName, err := d.Chain.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	log.Printf("Fetched %s from %s", verse.Citation(), sourceName)

	blocks := notion.VerseBlocks(verse, d.Now().UTC())

	if d.Config.ClearDaily {
		deleted, err := d.Client.ClearChildren(ctx, target)
		if err != nil {
			return nil, &PublishError{Err: err}
		}
		log.Printf("Cleared %d existing blocks", deleted)
	}

	if _, err := d.Client.AppendChildren(ctx, target, blocks); err != nil {
		return nil, &PublishError{Err: err}
	}

	return &Outcome{Source: sourceName, Verse: verse}, nil
}
