package model

// Verse represents a single verse of the day.
type Verse struct {
	Reference   string `json:"reference"`
	Translation string `json:"translation,omitempty"`
	Text        string `json:"text"`
	ImageURL    string `json:"image_url,omitempty"`
	Date        string `json:"date"`
}

// Citation returns the reference with the translation appended, e.g.
// "Psalm 23:4 (NLT)". If no translation is known, just the reference.
func (v Verse) Citation() string {
	if v.Translation == "" {
		return v.Reference
	}
	return v.Reference + " (" + v.Translation + ")"
}
