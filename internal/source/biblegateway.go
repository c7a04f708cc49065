package source

import (
	"context"
	"fmt"
	"html"
	"regexp"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"votd-notion-sync/internal/model"
)

const (
	bibleGatewaySourceName  = "BibleGateway RSS"
	bibleGatewayDefaultURL  = "https://www.biblegateway.com/usage/votd/rss/votd.rdf?31"
	bibleGatewayTranslation = "NIV"
)

var htmlTagRegex = regexp.MustCompile(`<[^>]*>`)

// BibleGatewaySource fetches the verse of the day from BibleGateway's RSS
// feed. The feed provides text only, so verses from this source carry no
// image. Item titles hold the reference, descriptions the verse text.
type BibleGatewaySource struct {
	url string
}

// NewBibleGatewaySource creates a new BibleGateway RSS source.
func NewBibleGatewaySource(url string) *BibleGatewaySource {
	if url == "" {
		url = bibleGatewayDefaultURL
	}
	return &BibleGatewaySource{url: url}
}

func (s *BibleGatewaySource) Name() string {
	return bibleGatewaySourceName
}

func (s *BibleGatewaySource) FetchToday(ctx context.Context) (model.Verse, error) {
	parser := gofeed.NewParser()
	parser.UserAgent = userAgent

	feed, err := parser.ParseURLWithContext(s.url, ctx)
	if err != nil {
		return model.Verse{}, fmt.Errorf("parsing feed: %w", err)
	}

	if len(feed.Items) == 0 {
		return model.Verse{}, fmt.Errorf("feed contains no items")
	}

	item := feed.Items[0]
	reference := strings.TrimSpace(item.Title)
	text := htmlTagRegex.ReplaceAllString(item.Description, "")
	text = strings.TrimSpace(html.UnescapeString(text))
	text = strings.Trim(text, "“”")

	if reference == "" || text == "" {
		return model.Verse{}, fmt.Errorf("feed item missing reference or text")
	}

	return model.Verse{
		Reference:   reference,
		Translation: bibleGatewayTranslation,
		Text:        text,
		Date:        time.Now().UTC().Format("2006-01-02"),
	}, nil
}
