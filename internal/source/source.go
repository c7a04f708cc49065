package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"votd-notion-sync/internal/model"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// httpClient is shared by all sources. Individual calls carry their own
// context; the client timeout is a backstop for stuck connections.
var httpClient = &http.Client{Timeout: 15 * time.Second}

// fetchURL fetches the content of a URL and returns the response body as bytes.
func fetchURL(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	return data, nil
}

// fetchDocument fetches a URL and parses it as an HTML document.
func fetchDocument(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	return doc, nil
}

// urlExists issues a HEAD request and reports whether the URL answers 200.
func urlExists(ctx context.Context, url string) bool {
	req, err := http.NewRequestWithContext(ctx, "HEAD", url, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := httpClient.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}

// splitCitation splits a combined citation like "Matthew 7:12 (ESV)" into
// reference and translation. A citation without a trailing parenthesised
// translation comes back with an empty translation.
func splitCitation(citation string) (reference, translation string) {
	citation = strings.TrimSpace(citation)
	if !strings.HasSuffix(citation, ")") {
		return citation, ""
	}
	open := strings.LastIndex(citation, "(")
	if open <= 0 {
		return citation, ""
	}
	return strings.TrimSpace(citation[:open]), strings.TrimSpace(citation[open+1 : len(citation)-1])
}

// Source defines the interface that all verse-of-the-day sources must implement.
type Source interface {
	// Name returns the human-readable name of this source.
	Name() string

	// FetchToday retrieves today's verse from this source.
	FetchToday(ctx context.Context) (model.Verse, error)
}
