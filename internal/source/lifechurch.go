package source

import (
	"context"
	"fmt"
	"time"

	"votd-notion-sync/internal/model"
)

const (
	lifeChurchSourceName = "Life.Church CDN"
	lifeChurchDefaultCDN = "https://d347bo4ltvvnaz.cloudfront.net/images/"
)

// LifeChurchSource fetches the verse image from Life.Church's pre-published
// CDN and the verse text from the OurManna daily API. Image filenames are
// date-based: YV_VOTD2026_August_25Square.jpg, sometimes under a preview/
// prefix before the official publish.
type LifeChurchSource struct {
	cdnBase string
	textURL string
	now     func() time.Time
}

// NewLifeChurchSource creates a new Life.Church CDN source.
func NewLifeChurchSource(cdnBase string) *LifeChurchSource {
	if cdnBase == "" {
		cdnBase = lifeChurchDefaultCDN
	}
	return &LifeChurchSource{
		cdnBase: cdnBase,
		textURL: ourMannaDefaultURL,
		now:     time.Now,
	}
}

func (s *LifeChurchSource) Name() string {
	return lifeChurchSourceName
}

func (s *LifeChurchSource) FetchToday(ctx context.Context) (model.Verse, error) {
	today := s.now().UTC()

	imageURL := ""
	for _, prefix := range []string{"", "preview/"} {
		for _, format := range []string{"Square", "Vertical"} {
			candidate := fmt.Sprintf("%s%sYV_VOTD%d_%s_%s%s.jpg",
				s.cdnBase, prefix, today.Year(), today.Format("January"), today.Format("02"), format)
			if urlExists(ctx, candidate) {
				imageURL = candidate
				break
			}
		}
		if imageURL != "" {
			break
		}
	}

	if imageURL == "" {
		return model.Verse{}, fmt.Errorf("no image published for %s", today.Format("2006-01-02"))
	}

	verse, err := fetchOurMannaVerse(ctx, s.textURL)
	if err != nil {
		return model.Verse{}, fmt.Errorf("fetching verse text: %w", err)
	}
	verse.ImageURL = imageURL

	return verse, nil
}
