package notion

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"votd-notion-sync/internal/model"
)

var testDate = time.Date(2026, time.August, 25, 6, 0, 0, 0, time.UTC)

func TestVerseBlocks(t *testing.T) {
	verse := model.Verse{
		Reference:   "Psalm 23:4",
		Translation: "NLT",
		Text:        "Even when I walk through the darkest valley, I will not be afraid.",
		ImageURL:    "https://cdn/x.jpg",
	}

	blocks := VerseBlocks(verse, testDate)
	if len(blocks) != 4 {
		t.Fatalf("Expected 4 blocks, got %d", len(blocks))
	}

	wantTypes := []string{"divider", "heading_2", "callout", "image"}
	for i, want := range wantTypes {
		if blocks[i].Type != want {
			t.Errorf("Block %d: got type %q, want %q", i, blocks[i].Type, want)
		}
		if blocks[i].Object != "block" {
			t.Errorf("Block %d: object is %q", i, blocks[i].Object)
		}
	}

	heading := blocks[1].Heading2.RichText[0].Text.Content
	if heading != "Verse of the Day - August 25, 2026" {
		t.Errorf("Heading: got %q", heading)
	}

	callout := blocks[2].Callout
	if len(callout.RichText) != 2 {
		t.Fatalf("Callout should have 2 rich text runs, got %d", len(callout.RichText))
	}
	if callout.RichText[0].Text.Content != "Psalm 23:4 (NLT)" {
		t.Errorf("Callout citation: got %q", callout.RichText[0].Text.Content)
	}
	if callout.RichText[0].Annotations == nil || !callout.RichText[0].Annotations.Bold {
		t.Error("Citation should be bold")
	}
	if callout.RichText[1].Text.Content != "\n"+verse.Text {
		t.Errorf("Callout text: got %q", callout.RichText[1].Text.Content)
	}
	if callout.Icon == nil || callout.Icon.Emoji != "📖" {
		t.Error("Callout should carry the book icon")
	}

	if blocks[3].Image.External.URL != "https://cdn/x.jpg" {
		t.Errorf("Image URL: got %q", blocks[3].Image.External.URL)
	}
}

func TestVerseBlocksWithoutImage(t *testing.T) {
	verse := model.Verse{
		Reference: "Jeremiah 29:11",
		Text:      "For I know the plans I have for you.",
	}

	blocks := VerseBlocks(verse, testDate)
	if len(blocks) != 3 {
		t.Fatalf("Expected 3 blocks without an image, got %d", len(blocks))
	}
	if blocks[len(blocks)-1].Type != "callout" {
		t.Errorf("Last block should be the callout, got %q", blocks[len(blocks)-1].Type)
	}

	// No translation: citation is the bare reference
	if got := blocks[2].Callout.RichText[0].Text.Content; got != "Jeremiah 29:11" {
		t.Errorf("Citation: got %q", got)
	}
}

func TestVerseBlocksDeterministic(t *testing.T) {
	verse := model.Verse{
		Reference:   "Matthew 7:12",
		Translation: "ESV",
		Text:        "Do to others whatever you would like them to do to you.",
		ImageURL:    "https://cdn/y.jpg",
	}

	first, err := json.Marshal(VerseBlocks(verse, testDate))
	if err != nil {
		t.Fatal(err)
	}
	second, err := json.Marshal(VerseBlocks(verse, testDate))
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(first, second) {
		t.Error("VerseBlocks is not deterministic for the same verse and date")
	}
}

func TestSectionBlocks(t *testing.T) {
	blocks := SectionBlocks()

	wantTypes := []string{"divider", "heading_1", "paragraph", "toggle"}
	if len(blocks) != len(wantTypes) {
		t.Fatalf("Expected %d blocks, got %d", len(wantTypes), len(blocks))
	}
	for i, want := range wantTypes {
		if blocks[i].Type != want {
			t.Errorf("Block %d: got type %q, want %q", i, blocks[i].Type, want)
		}
	}

	if got := blocks[1].Heading1.RichText[0].Text.Content; got != "Daily Devotionals" {
		t.Errorf("Heading: got %q", got)
	}
	if got := blocks[3].Toggle.RichText[0].Text.Content; got != "Current Month" {
		t.Errorf("Toggle: got %q", got)
	}
}
