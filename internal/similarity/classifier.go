package similarity

import "strings"

// Classifier maps an item's free-text tags onto color and style
// vocabularies. It is an interface so the keyword heuristic can later be
// swapped for a real tagging model without touching the scoring.
type Classifier interface {
	// ColorTags returns the subset of tags that name a color.
	ColorTags(tags []string) []string
	// StyleTags returns the subset of tags that name a style.
	StyleTags(tags []string) []string
}

// KeywordClassifier classifies tags by case-insensitive substring match
// against fixed keyword lists.
type KeywordClassifier struct {
	Colors []string
	Styles []string
}

// NewKeywordClassifier returns the default keyword classifier.
func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{
		Colors: []string{"black", "white", "red", "blue", "green", "yellow", "pink", "purple", "brown", "gray"},
		Styles: []string{"casual", "formal", "vintage", "modern", "bohemian", "minimalist", "edgy", "classic"},
	}
}

func (c *KeywordClassifier) ColorTags(tags []string) []string {
	return matchTags(tags, c.Colors)
}

func (c *KeywordClassifier) StyleTags(tags []string) []string {
	return matchTags(tags, c.Styles)
}

func matchTags(tags, keywords []string) []string {
	var out []string
	for _, tag := range tags {
		lower := strings.ToLower(tag)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				out = append(out, tag)
				break
			}
		}
	}
	return out
}
