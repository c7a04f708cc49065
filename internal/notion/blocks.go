package notion

import (
	"time"

	"votd-notion-sync/internal/model"
)

// Block is a block object sent to the Notion API. Exactly one of the typed
// payload fields is set, matching Type.
type Block struct {
	Object    string     `json:"object"`
	Type      string     `json:"type"`
	Divider   *Divider   `json:"divider,omitempty"`
	Heading1  *Heading   `json:"heading_1,omitempty"`
	Heading2  *Heading   `json:"heading_2,omitempty"`
	Paragraph *Paragraph `json:"paragraph,omitempty"`
	Callout   *Callout   `json:"callout,omitempty"`
	Toggle    *Toggle    `json:"toggle,omitempty"`
	Image     *Image     `json:"image,omitempty"`
}

type Divider struct{}

type Heading struct {
	RichText []RichText `json:"rich_text"`
	Color    string     `json:"color,omitempty"`
}

type Paragraph struct {
	RichText []RichText `json:"rich_text"`
	Color    string     `json:"color,omitempty"`
}

type Callout struct {
	RichText []RichText `json:"rich_text"`
	Icon     *Icon      `json:"icon,omitempty"`
	Color    string     `json:"color,omitempty"`
}

type Toggle struct {
	RichText []RichText `json:"rich_text"`
	Color    string     `json:"color,omitempty"`
}

type Image struct {
	Type     string        `json:"type"`
	External *ExternalFile `json:"external,omitempty"`
}

type ExternalFile struct {
	URL string `json:"url"`
}

type Icon struct {
	Type  string `json:"type"`
	Emoji string `json:"emoji,omitempty"`
}

type RichText struct {
	Type        string       `json:"type"`
	Text        TextContent  `json:"text"`
	Annotations *Annotations `json:"annotations,omitempty"`
}

type TextContent struct {
	Content string `json:"content"`
}

type Annotations struct {
	Bold bool `json:"bold,omitempty"`
}

func text(content string) RichText {
	return RichText{Type: "text", Text: TextContent{Content: content}}
}

func boldText(content string) RichText {
	return RichText{Type: "text", Text: TextContent{Content: content}, Annotations: &Annotations{Bold: true}}
}

// VerseBlocks formats a verse into the fixed block sequence appended to the
// page: divider, dated heading, callout with citation and text, and an image
// block if the verse has one. Deterministic for a given verse and date.
func VerseBlocks(v model.Verse, date time.Time) []Block {
	blocks := []Block{
		{
			Object:  "block",
			Type:    "divider",
			Divider: &Divider{},
		},
		{
			Object: "block",
			Type:   "heading_2",
			Heading2: &Heading{
				RichText: []RichText{text("Verse of the Day - " + date.Format("January 02, 2006"))},
			},
		},
		{
			Object: "block",
			Type:   "callout",
			Callout: &Callout{
				RichText: []RichText{
					boldText(v.Citation()),
					text("\n" + v.Text),
				},
				Icon:  &Icon{Type: "emoji", Emoji: "📖"},
				Color: "blue_background",
			},
		},
	}

	if v.ImageURL != "" {
		blocks = append(blocks, Block{
			Object: "block",
			Type:   "image",
			Image: &Image{
				Type:     "external",
				External: &ExternalFile{URL: v.ImageURL},
			},
		})
	}

	return blocks
}

// SectionBlocks returns the scaffold for a dedicated devotional section: a
// divider, a heading, a description line, and a toggle that daily verses can
// be appended into.
func SectionBlocks() []Block {
	return []Block{
		{
			Object:  "block",
			Type:    "divider",
			Divider: &Divider{},
		},
		{
			Object: "block",
			Type:   "heading_1",
			Heading1: &Heading{
				RichText: []RichText{text("Daily Devotionals")},
				Color:    "blue",
			},
		},
		{
			Object: "block",
			Type:   "paragraph",
			Paragraph: &Paragraph{
				RichText: []RichText{text("Automatic daily verses from YouVersion Bible")},
				Color:    "gray",
			},
		},
		{
			Object: "block",
			Type:   "toggle",
			Toggle: &Toggle{
				RichText: []RichText{text("Current Month")},
				Color:    "default",
			},
		},
	}
}
