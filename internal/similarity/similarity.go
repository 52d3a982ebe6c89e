// Package similarity scores how closely listings match a reference item
// along category, brand, size, tag, condition and type axes.
package similarity

import (
	"math"
	"sort"
	"strings"

	"github.com/sukrititalwar/rewear/internal/model"
)

// Factor weights. They sum to 100, so dividing the weighted sum by the
// total weight leaves the score on a 0-100 scale unchanged.
const (
	weightCategory  = 40
	weightBrand     = 20
	weightSize      = 15
	weightTags      = 15
	weightCondition = 5
	weightType      = 5

	totalWeight = weightCategory + weightBrand + weightSize + weightTags + weightCondition + weightType
)

// MinSimilarity is the default floor; matches below it are dropped from
// ranked results before any caller-supplied threshold applies.
const MinSimilarity = 20

// neutralSubScore is used when either item has no classified tags on an
// axis, so missing data reads as "unknown" rather than "different".
const neutralSubScore = 50

// Match pairs an item with its similarity scores against the reference.
type Match struct {
	Item            model.Item `json:"item"`
	Similarity      int        `json:"similarity"`
	ColorSimilarity int        `json:"color_similarity"`
	StyleSimilarity int        `json:"style_similarity"`
}

// Scorer ranks candidate items against a reference item.
type Scorer struct {
	classifier Classifier
}

// NewScorer creates a scorer with the given tag classifier. A nil
// classifier falls back to the default keyword lists.
func NewScorer(c Classifier) *Scorer {
	if c == nil {
		c = NewKeywordClassifier()
	}
	return &Scorer{classifier: c}
}

// Rank scores every approved candidate against ref, drops the reference
// itself and anything under MinSimilarity, and returns the rest sorted
// by overall similarity descending. Pure function of its inputs.
func (s *Scorer) Rank(ref model.Item, pool []model.Item) []Match {
	var matches []Match
	for _, item := range pool {
		if item.ID == ref.ID || item.Status != model.ItemStatusApproved {
			continue
		}
		m := Match{
			Item:            item,
			Similarity:      s.Score(ref, item),
			ColorSimilarity: s.subScore(s.classifier.ColorTags(ref.Tags), s.classifier.ColorTags(item.Tags)),
			StyleSimilarity: s.subScore(s.classifier.StyleTags(ref.Tags), s.classifier.StyleTags(item.Tags)),
		}
		if m.Similarity >= MinSimilarity {
			matches = append(matches, m)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})
	return matches
}

// Score computes the overall 0-100 weighted similarity of two items.
// The denominator is always the full weight sum regardless of which
// factors could be evaluated.
func (s *Scorer) Score(a, b model.Item) int {
	score := 0.0

	if a.Category == b.Category {
		score += weightCategory
	}
	// Brand only counts when both items actually specify one.
	if a.Brand != "" && b.Brand != "" && a.Brand == b.Brand {
		score += weightBrand
	}
	if a.Size == b.Size {
		score += weightSize
	}
	score += tagScore(a.Tags, b.Tags)
	if a.Condition == b.Condition {
		score += weightCondition
	}
	if a.Type == b.Type {
		score += weightType
	}

	return int(math.Round(score / totalWeight * 100))
}

// tagScore scales Jaccard-style tag overlap (common / union) to the tag
// weight.
func tagScore(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}

	union := make(map[string]struct{}, len(a)+len(b))
	for _, t := range a {
		union[t] = struct{}{}
	}
	for _, t := range b {
		union[t] = struct{}{}
	}

	common := 0
	inA := make(map[string]struct{}, len(a))
	for _, t := range a {
		inA[t] = struct{}{}
	}
	seen := map[string]struct{}{}
	for _, t := range b {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		if _, ok := inA[t]; ok {
			common++
		}
	}

	if len(union) == 0 {
		return 0
	}
	return float64(common) / float64(len(union)) * weightTags
}

// subScore computes a color or style sub-score from the classified tags
// of both items: exact overlap divided by the larger matched count. When
// either side classifies to nothing the score is neutral.
func (s *Scorer) subScore(refTags, itemTags []string) int {
	if len(refTags) == 0 || len(itemTags) == 0 {
		return neutralSubScore
	}

	set := make(map[string]struct{}, len(itemTags))
	for _, t := range itemTags {
		set[t] = struct{}{}
	}
	common := 0
	for _, t := range refTags {
		if _, ok := set[t]; ok {
			common++
		}
	}

	longest := len(refTags)
	if len(itemTags) > longest {
		longest = len(itemTags)
	}
	return int(math.Round(float64(common) / float64(longest) * 100))
}

// Refinement sort axes.
const (
	SortBySimilarity = "similarity"
	SortByColor      = "color"
	SortByStyle      = "style"
	SortByRating     = "rating"
)

// Refinement filters.
const (
	FilterAll          = "all"
	FilterSameType     = "same-type"
	FilterSameBrand    = "same-brand"
	FilterSameLocation = "same-location"
)

// RefineOptions narrow and reorder a ranked result post-hoc.
type RefineOptions struct {
	Threshold int    // minimum overall similarity, 0 keeps the default floor
	SortBy    string // sort axis, defaults to overall similarity
	FilterBy  string // relation to the reference item, defaults to all
}

// Refine applies a caller-supplied threshold, relation filter and sort
// axis to an already ranked list.
func Refine(matches []Match, ref model.Item, opts RefineOptions) []Match {
	var out []Match
	for _, m := range matches {
		if m.Similarity < opts.Threshold {
			continue
		}
		switch opts.FilterBy {
		case FilterSameType:
			if m.Item.Type != ref.Type {
				continue
			}
		case FilterSameBrand:
			if m.Item.Brand != ref.Brand {
				continue
			}
		case FilterSameLocation:
			if m.Item.Location != ref.Location {
				continue
			}
		}
		out = append(out, m)
	}

	switch opts.SortBy {
	case SortByColor:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].ColorSimilarity > out[j].ColorSimilarity
		})
	case SortByStyle:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].StyleSimilarity > out[j].StyleSimilarity
		})
	case SortByRating:
		// Condition stands in for owner rating on this axis.
		sort.SliceStable(out, func(i, j int) bool {
			return strings.Compare(out[i].Item.Condition, out[j].Item.Condition) > 0
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Similarity > out[j].Similarity
		})
	}
	return out
}
