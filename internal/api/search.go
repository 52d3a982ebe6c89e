package api

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/sukrititalwar/rewear/internal/search"
	"github.com/sukrititalwar/rewear/internal/suggest"
)

// DiscoveryHandler handles search, suggestions, trending and popular
// categories.
type DiscoveryHandler struct {
	Search  *search.Engine
	Suggest *suggest.Engine
	Log     *zap.SugaredLogger
}

// SearchItems handles GET /api/search. All filters arrive as query
// parameters; absent parameters are no-ops.
func (h *DiscoveryHandler) SearchItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filters := search.Filters{
		Category:  q.Get("category"),
		Brand:     q.Get("brand"),
		Size:      q.Get("size"),
		Type:      q.Get("type"),
		Condition: q.Get("condition"),
		Location:  q.Get("location"),
		SortBy:    q.Get("sort_by"),
	}
	if tags, ok := q["tag"]; ok {
		filters.Tags = tags
	}

	var bad string
	filters.PriceMin, bad = floatParam(q.Get("price_min"), bad, "price_min")
	filters.PriceMax, bad = floatParam(q.Get("price_max"), bad, "price_max")
	filters.PointsMin, bad = intParam(q.Get("points_min"), bad, "points_min")
	filters.PointsMax, bad = intParam(q.Get("points_max"), bad, "points_max")

	if v := q.Get("washed"); v != "" {
		washed, err := strconv.ParseBool(v)
		if err != nil {
			bad = "washed"
		}
		filters.IsWashed = &washed
	}
	if v := q.Get("min_rating"); v != "" {
		rating, err := strconv.ParseFloat(v, 64)
		if err != nil {
			bad = "min_rating"
		}
		filters.MinRating = rating
	}
	if bad != "" {
		jsonError(w, h.Log, http.StatusBadRequest, "invalid parameter: "+bad)
		return
	}

	items, err := h.Search.Search(r.Context(), q.Get("q"), filters)
	if err != nil {
		h.Log.Errorw("search", "error", err)
		jsonError(w, h.Log, http.StatusInternalServerError, "search failed")
		return
	}
	jsonResponse(w, h.Log, http.StatusOK, nonNil(items))
}

// Suggestions handles GET /api/suggestions for the current user.
func (h *DiscoveryHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	items, err := h.Suggest.Suggestions(r.Context(), claims.UserID)
	if err != nil {
		h.Log.Errorw("suggestions", "error", err)
		jsonError(w, h.Log, http.StatusInternalServerError, "failed to load suggestions")
		return
	}
	jsonResponse(w, h.Log, http.StatusOK, nonNil(items))
}

// Trending handles GET /api/trending with an optional location filter.
func (h *DiscoveryHandler) Trending(w http.ResponseWriter, r *http.Request) {
	items, err := h.Suggest.Trending(r.Context(), r.URL.Query().Get("location"))
	if err != nil {
		h.Log.Errorw("trending", "error", err)
		jsonError(w, h.Log, http.StatusInternalServerError, "failed to load trending items")
		return
	}
	jsonResponse(w, h.Log, http.StatusOK, nonNil(items))
}

// PopularCategories handles GET /api/categories/popular.
func (h *DiscoveryHandler) PopularCategories(w http.ResponseWriter, r *http.Request) {
	counts, err := h.Suggest.PopularCategories(r.Context())
	if err != nil {
		h.Log.Errorw("popular categories", "error", err)
		jsonError(w, h.Log, http.StatusInternalServerError, "failed to load categories")
		return
	}
	if counts == nil {
		counts = []suggest.CategoryCount{}
	}
	jsonResponse(w, h.Log, http.StatusOK, counts)
}

func floatParam(raw, bad, name string) (*float64, string) {
	if raw == "" {
		return nil, bad
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, name
	}
	return &v, bad
}

func intParam(raw, bad, name string) (*int, string) {
	if raw == "" {
		return nil, bad
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, name
	}
	return &v, bad
}
