// Package suggest derives item recommendations from wishlist and listing
// history, plus recency-based trending and category popularity.
package suggest

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/sukrititalwar/rewear/internal/model"
	"github.com/sukrititalwar/rewear/internal/store"
)

// Result caps.
const (
	MaxSuggestions = 20
	MaxTrending    = 10
	MaxCategories  = 5
)

// TrendingWindow is how far back an item's creation may lie for it to
// count as trending.
const TrendingWindow = 7 * 24 * time.Hour

// CategoryCount is an approved-item count for one category.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// Engine derives suggestions from store contents.
type Engine struct {
	store *store.Store
	now   func() time.Time
}

// New creates a suggestion engine. now is injectable for tests; nil
// means time.Now.
func New(s *store.Store, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{store: s, now: now}
}

// Suggestions returns approved items whose category or brand intersects
// the user's interest set (categories and brands of wishlisted items and
// own listings), excluding the user's own and already wishlisted items,
// capped at MaxSuggestions.
func (e *Engine) Suggestions(ctx context.Context, userID string) ([]model.Item, error) {
	wishlist, err := e.store.WishlistByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	ownItems, err := e.store.ListItemsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	approved, err := e.store.ListApprovedItems(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]model.Item, len(approved))
	for _, it := range approved {
		byID[it.ID] = it
	}

	categories := map[string]struct{}{}
	brands := map[string]struct{}{}
	wishlisted := map[string]struct{}{}
	for _, w := range wishlist {
		wishlisted[w.ItemID] = struct{}{}
		if it, ok := byID[w.ItemID]; ok {
			categories[it.Category] = struct{}{}
			if it.Brand != "" {
				brands[it.Brand] = struct{}{}
			}
		}
	}
	for _, it := range ownItems {
		categories[it.Category] = struct{}{}
		if it.Brand != "" {
			brands[it.Brand] = struct{}{}
		}
	}

	var out []model.Item
	for _, it := range approved {
		if it.UserID == userID {
			continue
		}
		if _, saved := wishlisted[it.ID]; saved {
			continue
		}
		_, catHit := categories[it.Category]
		_, brandHit := brands[it.Brand]
		if catHit || (it.Brand != "" && brandHit) {
			out = append(out, it)
			if len(out) == MaxSuggestions {
				break
			}
		}
	}
	return out, nil
}

// Trending returns approved items created within the trailing window,
// optionally filtered by a case-insensitive location substring, sorted
// newest first and capped at MaxTrending.
func (e *Engine) Trending(ctx context.Context, location string) ([]model.Item, error) {
	approved, err := e.store.ListApprovedItems(ctx)
	if err != nil {
		return nil, err
	}

	cutoff := e.now().Add(-TrendingWindow)
	var recent []model.Item
	for _, it := range approved {
		if !it.CreatedAt.After(cutoff) {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(it.Location), strings.ToLower(location)) {
			continue
		}
		recent = append(recent, it)
	}

	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > MaxTrending {
		recent = recent[:MaxTrending]
	}
	return recent, nil
}

// PopularCategories returns the top categories by approved-item count,
// descending, capped at MaxCategories.
func (e *Engine) PopularCategories(ctx context.Context) ([]CategoryCount, error) {
	approved, err := e.store.ListApprovedItems(ctx)
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	for _, it := range approved {
		counts[it.Category]++
	}

	out := make([]CategoryCount, 0, len(counts))
	for cat, n := range counts {
		out = append(out, CategoryCount{Category: cat, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})
	if len(out) > MaxCategories {
		out = out[:MaxCategories]
	}
	return out, nil
}
