package source

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"votd-notion-sync/internal/model"
)

const (
	bibleComSourceName = "bible.com"
	bibleComDefaultURL = "https://www.bible.com/verse-of-the-day"
)

// BibleComSource scrapes the verse of the day from bible.com.
type BibleComSource struct {
	url string
}

// NewBibleComSource creates a new bible.com source.
func NewBibleComSource(url string) *BibleComSource {
	if url == "" {
		url = bibleComDefaultURL
	}
	return &BibleComSource{url: url}
}

func (s *BibleComSource) Name() string {
	return bibleComSourceName
}

func (s *BibleComSource) FetchToday(ctx context.Context) (model.Verse, error) {
	doc, err := fetchDocument(ctx, s.url)
	if err != nil {
		return model.Verse{}, err
	}
	return parseBibleComDocument(doc)
}

// parseBibleComDocument extracts the verse from the bible.com verse-of-the-day
// page. Also used by the rendered source, which feeds it browser-rendered HTML.
func parseBibleComDocument(doc *goquery.Document) (model.Verse, error) {
	imageURL := findBibleComImage(doc)
	if imageURL == "" {
		return model.Verse{}, fmt.Errorf("verse image not found")
	}

	citation, passage := findBibleComVerse(doc)
	if citation == "" || passage == "" {
		return model.Verse{}, fmt.Errorf("verse card not found")
	}

	reference, translation := splitCitation(citation)

	return model.Verse{
		Reference:   reference,
		Translation: translation,
		Text:        passage,
		ImageURL:    imageURL,
		Date:        time.Now().UTC().Format("2006-01-02"),
	}, nil
}

// findBibleComImage locates the 640x640 verse image. The site serves it
// through the Next.js image proxy, so the real S3 URL is percent-encoded
// inside the src attribute.
func findBibleComImage(doc *goquery.Document) string {
	imageURL := ""
	doc.Find("img").EachWithBreak(func(i int, img *goquery.Selection) bool {
		src, _ := img.Attr("src")
		if !strings.Contains(src, "640x640") {
			return true
		}
		decoded, err := url.QueryUnescape(src)
		if err != nil {
			return true
		}
		idx := strings.Index(decoded, "https://s3")
		if idx < 0 {
			return true
		}
		s3URL := decoded[idx:]
		s3URL = strings.SplitN(s3URL, "&", 2)[0]
		s3URL = strings.SplitN(s3URL, " ", 2)[0]
		imageURL = s3URL
		return false
	})
	return imageURL
}

// findBibleComVerse extracts citation and passage from the verse-of-the-day
// card. The card links the passage to /bible/compare/ and the citation (with
// a parenthesised translation) to /bible/.
func findBibleComVerse(doc *goquery.Document) (citation, passage string) {
	doc.Find("div").EachWithBreak(func(i int, div *goquery.Selection) bool {
		class, _ := div.Attr("class")
		if !strings.Contains(class, "max-w-[530px]") || !strings.Contains(class, "shadow-light-2") {
			return true
		}
		if !strings.Contains(div.Text(), "Verse of the Day") {
			return true
		}

		div.Find("a").EachWithBreak(func(j int, a *goquery.Selection) bool {
			href, _ := a.Attr("href")
			text := strings.TrimSpace(a.Text())

			if strings.Contains(href, "/bible/compare/") {
				passage = strings.Trim(text, "\"“”")
			} else if strings.Contains(href, "/bible/") && strings.Contains(text, "(") {
				citation = text
				return false
			}
			return true
		})
		return false
	})
	return citation, passage
}
