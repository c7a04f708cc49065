package source

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"votd-notion-sync/internal/model"
)

const (
	ourMannaSourceName = "OurManna API"
	ourMannaDefaultURL = "https://beta.ourmanna.com/api/v1/get?format=json&order=daily"
)

// OurMannaSource fetches the verse of the day from the OurManna daily API.
// The API provides text only, so verses from this source carry no image.
type OurMannaSource struct {
	url string
}

// NewOurMannaSource creates a new OurManna source.
func NewOurMannaSource(url string) *OurMannaSource {
	if url == "" {
		url = ourMannaDefaultURL
	}
	return &OurMannaSource{url: url}
}

func (s *OurMannaSource) Name() string {
	return ourMannaSourceName
}

func (s *OurMannaSource) FetchToday(ctx context.Context) (model.Verse, error) {
	return fetchOurMannaVerse(ctx, s.url)
}

// fetchOurMannaVerse retrieves and decodes the OurManna daily verse. The
// Life.Church source reuses it for verse text, since that provider only
// publishes images.
func fetchOurMannaVerse(ctx context.Context, url string) (model.Verse, error) {
	data, err := fetchURL(ctx, url)
	if err != nil {
		return model.Verse{}, err
	}

	var payload struct {
		Verse struct {
			Details struct {
				Text      string `json:"text"`
				Reference string `json:"reference"`
				Version   string `json:"version"`
			} `json:"details"`
		} `json:"verse"`
	}

	if err := json.Unmarshal(data, &payload); err != nil {
		return model.Verse{}, fmt.Errorf("parsing API response: %w", err)
	}

	details := payload.Verse.Details
	if details.Reference == "" || details.Text == "" {
		return model.Verse{}, fmt.Errorf("API returned incomplete verse data")
	}

	return model.Verse{
		Reference:   details.Reference,
		Translation: details.Version,
		Text:        details.Text,
		Date:        time.Now().UTC().Format("2006-01-02"),
	}, nil
}
