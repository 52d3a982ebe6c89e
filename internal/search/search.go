// Package search implements the free-text search and structured filter
// pipeline over approved listings.
package search

import (
	"context"
	"sort"
	"strings"

	"github.com/sukrititalwar/rewear/internal/model"
	"github.com/sukrititalwar/rewear/internal/store"
)

// Sort keys. An empty key leaves insertion order.
const (
	SortNewest    = "newest"
	SortOldest    = "oldest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
)

// Filters is a structured filter set. Zero-valued fields are no-ops.
type Filters struct {
	Category  string
	Brand     string
	Size      string
	Type      string
	Condition string
	Location  string
	PriceMin  *float64
	PriceMax  *float64
	PointsMin *int
	PointsMax *int
	Tags      []string
	IsWashed  *bool
	MinRating float64
	SortBy    string
}

// Engine filters and ranks approved listings.
type Engine struct {
	store *store.Store
}

// New creates a search engine over the given store.
func New(s *store.Store) *Engine {
	return &Engine{store: s}
}

// Search returns the approved items matching the query and filters,
// ordered by the requested sort key. Absence of matches is a valid empty
// result, never an error; only store reads can fail.
func (e *Engine) Search(ctx context.Context, query string, f Filters) ([]model.Item, error) {
	items, err := e.store.ListApprovedItems(ctx)
	if err != nil {
		return nil, err
	}
	ratings, err := e.store.UserRatings(ctx)
	if err != nil {
		return nil, err
	}
	return apply(items, ratings, query, f), nil
}

// apply runs the full pipeline over an in-memory pool.
func apply(items []model.Item, ratings map[string]float64, query string, f Filters) []model.Item {
	tokens := strings.Fields(strings.ToLower(query))

	var results []model.Item
	for _, item := range items {
		if matchesQuery(item, tokens) && matchesFilters(item, ratings, f) {
			results = append(results, item)
		}
	}

	sortItems(results, ratings, f.SortBy)
	return results
}

// matchesQuery checks AND substring semantics: every token must appear
// in the item's searchable text. Substring, not stemmed, so "shirt"
// matches "shirts". An empty query matches everything.
func matchesQuery(item model.Item, tokens []string) bool {
	if len(tokens) == 0 {
		return true
	}

	parts := []string{item.Title, item.Description, item.Brand}
	parts = append(parts, item.Tags...)
	text := strings.ToLower(strings.Join(parts, " "))

	for _, tok := range tokens {
		if !strings.Contains(text, tok) {
			return false
		}
	}
	return true
}

// matchesFilters applies each structured filter as an independent AND
// predicate. Zero-valued filters are skipped.
func matchesFilters(item model.Item, ratings map[string]float64, f Filters) bool {
	if f.Category != "" && item.Category != f.Category {
		return false
	}
	if f.Brand != "" && item.Brand != f.Brand {
		return false
	}
	if f.Size != "" && item.Size != f.Size {
		return false
	}
	if f.Type != "" && item.Type != f.Type {
		return false
	}
	if f.Condition != "" && item.Condition != f.Condition {
		return false
	}

	// Price bounds only make sense for rentable items; anything else is
	// excluded while the filter is active. Same for points and redeem.
	if f.PriceMin != nil || f.PriceMax != nil {
		if item.Type != model.ItemTypeRent || item.RentPrice <= 0 {
			return false
		}
		if f.PriceMin != nil && item.RentPrice < *f.PriceMin {
			return false
		}
		if f.PriceMax != nil && item.RentPrice > *f.PriceMax {
			return false
		}
	}
	if f.PointsMin != nil || f.PointsMax != nil {
		if item.Type != model.ItemTypeRedeem || item.Points <= 0 {
			return false
		}
		if f.PointsMin != nil && item.Points < *f.PointsMin {
			return false
		}
		if f.PointsMax != nil && item.Points > *f.PointsMax {
			return false
		}
	}

	if f.Location != "" && !strings.Contains(strings.ToLower(item.Location), strings.ToLower(f.Location)) {
		return false
	}

	if len(f.Tags) > 0 && !tagOverlap(item.Tags, f.Tags) {
		return false
	}

	if f.IsWashed != nil && item.IsWashed != *f.IsWashed {
		return false
	}

	if f.MinRating > 0 {
		rating, ok := ratings[item.UserID]
		if !ok || rating < f.MinRating {
			return false
		}
	}

	return true
}

// tagOverlap reports whether any requested tag substring-matches any of
// the item's tags, case-insensitively.
func tagOverlap(itemTags, wanted []string) bool {
	for _, w := range wanted {
		w = strings.ToLower(w)
		for _, t := range itemTags {
			if strings.Contains(strings.ToLower(t), w) {
				return true
			}
		}
	}
	return false
}

// sortItems orders results by the sort key. Stable, so equal elements
// keep insertion order.
func sortItems(items []model.Item, ratings map[string]float64, sortBy string) {
	switch sortBy {
	case SortNewest:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		})
	case SortOldest:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].CreatedAt.Before(items[j].CreatedAt)
		})
	case SortPriceLow:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].RentPrice < items[j].RentPrice
		})
	case SortPriceHigh:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].RentPrice > items[j].RentPrice
		})
	case SortRating:
		sort.SliceStable(items, func(i, j int) bool {
			return ratings[items[i].UserID] > ratings[items[j].UserID]
		})
	}
}
