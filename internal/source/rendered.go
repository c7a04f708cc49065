package source

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"

	"votd-notion-sync/internal/model"
)

const renderedBibleComSourceName = "bible.com (rendered)"

// RenderedBibleComSource renders the bible.com verse-of-the-day page in
// headless Chrome before parsing it. The page is a Next.js app, so the static
// markup occasionally ships without the verse card; rendering recovers it at
// the cost of launching a browser, which is why this source sits last in the
// chain.
type RenderedBibleComSource struct {
	url string
}

// NewRenderedBibleComSource creates a new browser-rendered bible.com source.
func NewRenderedBibleComSource(url string) *RenderedBibleComSource {
	if url == "" {
		url = bibleComDefaultURL
	}
	return &RenderedBibleComSource{url: url}
}

func (s *RenderedBibleComSource) Name() string {
	return renderedBibleComSourceName
}

func (s *RenderedBibleComSource) FetchToday(ctx context.Context) (model.Verse, error) {
	html, err := s.renderPage(ctx)
	if err != nil {
		return model.Verse{}, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return model.Verse{}, fmt.Errorf("parsing HTML: %w", err)
	}

	return parseBibleComDocument(doc)
}

func (s *RenderedBibleComSource) renderPage(ctx context.Context) (string, error) {
	opts := chromedp.DefaultExecAllocatorOptions[:]
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}
	opts = append(opts,
		chromedp.Headless,
		chromedp.DisableGPU,
		chromedp.NoSandbox,
	)

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromeCtx, chromeCancel := chromedp.NewContext(allocCtx)
	defer chromeCancel()

	var html string
	err := chromedp.Run(chromeCtx,
		chromedp.Navigate(s.url),
		chromedp.WaitVisible(`main`, chromedp.ByQuery),
		// Give the app a moment to hydrate the verse card
		chromedp.Sleep(1*time.Second),
		chromedp.OuterHTML(`html`, &html, chromedp.ByQuery),
	)
	if err != nil {
		return "", fmt.Errorf("rendering page: %w", err)
	}

	return html, nil
}
