package search

import (
	"testing"
	"time"

	"github.com/sukrititalwar/rewear/internal/model"
)

func testPool() []model.Item {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return []model.Item{
		{
			ID: "1", Title: "Blue Denim Jacket", Description: "classic wash",
			Category: "Jackets", Brand: "Levi's", Size: "M", Condition: "Good",
			Type: model.ItemTypeSwap, Tags: []string{"blue", "denim"},
			UserID: "maya", Location: "Brooklyn", CreatedAt: base,
		},
		{
			ID: "2", Title: "Floral Dress", Description: "light summer cotton",
			Category: "Dresses", Brand: "Zara", Size: "S", Condition: "Excellent",
			Type: model.ItemTypeRent, RentPrice: 8, Tags: []string{"floral"},
			UserID: "arjun", Location: "Brooklyn", CreatedAt: base.Add(time.Hour),
			IsWashed: true,
		},
		{
			ID: "3", Title: "Wool Coat", Description: "warm blue winter coat",
			Category: "Jackets", Brand: "Uniqlo", Size: "L", Condition: "Fair",
			Type: model.ItemTypeRedeem, Points: 40, Tags: []string{"wool"},
			UserID: "zoe", Location: "Queens", CreatedAt: base.Add(2 * time.Hour),
		},
	}
}

func testRatings() map[string]float64 {
	return map[string]float64{"maya": 4.8, "arjun": 3.5, "zoe": 5.0}
}

func ids(items []model.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestQueryTokensAreANDed(t *testing.T) {
	pool := testPool()

	// Both tokens must match; "blue" alone hits items 1 and 3, adding
	// "jacket" narrows to 1.
	got := apply(pool, testRatings(), "blue jacket", Filters{})
	if len(got) != 1 || got[0].ID != "1" {
		t.Errorf("expected item 1, got %v", ids(got))
	}

	got = apply(pool, testRatings(), "blue", Filters{})
	if len(got) != 2 {
		t.Errorf("expected 2 items for 'blue', got %v", ids(got))
	}
}

func TestQueryMatchesBrandAndTags(t *testing.T) {
	pool := testPool()

	got := apply(pool, testRatings(), "levi", Filters{})
	if len(got) != 1 || got[0].ID != "1" {
		t.Errorf("expected brand substring match, got %v", ids(got))
	}

	got = apply(pool, testRatings(), "floral", Filters{})
	if len(got) != 1 || got[0].ID != "2" {
		t.Errorf("expected tag match, got %v", ids(got))
	}
}

func TestEmptyQueryMatchesAll(t *testing.T) {
	got := apply(testPool(), testRatings(), "", Filters{})
	if len(got) != 3 {
		t.Errorf("expected all items, got %v", ids(got))
	}
}

func TestFiltersAreIndependentANDs(t *testing.T) {
	pool := testPool()

	got := apply(pool, testRatings(), "", Filters{Category: "Jackets", Size: "M"})
	if len(got) != 1 || got[0].ID != "1" {
		t.Errorf("expected item 1, got %v", ids(got))
	}

	got = apply(pool, testRatings(), "", Filters{Category: "Jackets", Size: "S"})
	if len(got) != 0 {
		t.Errorf("expected no matches, got %v", ids(got))
	}
}

func TestPriceFilterImpliesRentable(t *testing.T) {
	pool := testPool()
	min := 5.0

	// Only the rent item with a set price survives an active price filter.
	got := apply(pool, testRatings(), "", Filters{PriceMin: &min})
	if len(got) != 1 || got[0].ID != "2" {
		t.Errorf("expected only rentable item, got %v", ids(got))
	}

	max := 5.0
	got = apply(pool, testRatings(), "", Filters{PriceMax: &max})
	if len(got) != 0 {
		t.Errorf("expected price cap to exclude all, got %v", ids(got))
	}
}

func TestPointsFilterImpliesRedeemable(t *testing.T) {
	pool := testPool()
	min := 10

	got := apply(pool, testRatings(), "", Filters{PointsMin: &min})
	if len(got) != 1 || got[0].ID != "3" {
		t.Errorf("expected only redeemable item, got %v", ids(got))
	}
}

func TestLocationSubstringFilter(t *testing.T) {
	got := apply(testPool(), testRatings(), "", Filters{Location: "brook"})
	if len(got) != 2 {
		t.Errorf("expected 2 Brooklyn items, got %v", ids(got))
	}
}

func TestWashedAndRatingFilters(t *testing.T) {
	pool := testPool()
	washed := true

	got := apply(pool, testRatings(), "", Filters{IsWashed: &washed})
	if len(got) != 1 || got[0].ID != "2" {
		t.Errorf("expected only washed item, got %v", ids(got))
	}

	got = apply(pool, testRatings(), "", Filters{MinRating: 4.0})
	if len(got) != 2 {
		t.Errorf("expected high-rated owners only, got %v", ids(got))
	}
}

func TestSorts(t *testing.T) {
	pool := testPool()
	ratings := testRatings()

	tests := []struct {
		sortBy string
		want   []string
	}{
		{SortNewest, []string{"3", "2", "1"}},
		{SortOldest, []string{"1", "2", "3"}},
		{SortPriceHigh, []string{"2", "1", "3"}},
		{SortRating, []string{"3", "1", "2"}},
	}

	for _, tt := range tests {
		got := ids(apply(pool, ratings, "", Filters{SortBy: tt.sortBy}))
		if len(got) != len(tt.want) {
			t.Fatalf("%s: expected %d items, got %d", tt.sortBy, len(tt.want), len(got))
		}
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("%s: expected order %v, got %v", tt.sortBy, tt.want, got)
				break
			}
		}
	}
}
