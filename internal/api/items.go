package api

import (
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/sukrititalwar/rewear/internal/model"
	"github.com/sukrititalwar/rewear/internal/points"
	"github.com/sukrititalwar/rewear/internal/similarity"
	"github.com/sukrititalwar/rewear/internal/store"
)

// ItemsHandler handles listing CRUD, moderation and similar-item lookup.
type ItemsHandler struct {
	Store  *store.Store
	Ledger *points.Ledger
	Scorer *similarity.Scorer
	Log    *zap.SugaredLogger
}

type createItemRequest struct {
	Title       string   `json:"title" validate:"required,max=120"`
	Description string   `json:"description" validate:"max=2000"`
	Category    string   `json:"category" validate:"required"`
	Size        string   `json:"size" validate:"required"`
	Type        string   `json:"type" validate:"required,oneof=swap rent redeem"`
	Brand       string   `json:"brand"`
	Condition   string   `json:"condition" validate:"required"`
	RentPrice   float64  `json:"rent_price" validate:"gte=0"`
	Points      int      `json:"points" validate:"gte=0"`
	MinRating   float64  `json:"min_rating" validate:"gte=0,lte=5"`
	IsWashed    bool     `json:"is_washed"`
	Tags        []string `json:"tags"`
	Images      []string `json:"images"`
	Location    string   `json:"location"`
}

// List handles GET /api/items. Admins may filter by any moderation
// status; everyone else only sees approved items plus their own.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	status := r.URL.Query().Get("status")

	if status != "" && model.RoleAtLeast(claims.Role, model.RoleAdmin) {
		items, err := h.Store.ListItemsByStatus(r.Context(), status)
		if err != nil {
			jsonError(w, h.Log, http.StatusInternalServerError, "failed to list items")
			return
		}
		jsonResponse(w, h.Log, http.StatusOK, nonNil(items))
		return
	}

	items, err := h.Store.ListApprovedItems(r.Context())
	if err != nil {
		jsonError(w, h.Log, http.StatusInternalServerError, "failed to list items")
		return
	}
	jsonResponse(w, h.Log, http.StatusOK, nonNil(items))
}

// Create handles POST /api/items. The new listing enters moderation as
// pending; listing an item earns points, with a bonus for washing first.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	var req createItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, h.Log, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.Store.CreateItem(r.Context(), model.Item{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Size:        req.Size,
		Type:        req.Type,
		Brand:       req.Brand,
		Condition:   req.Condition,
		RentPrice:   req.RentPrice,
		Points:      req.Points,
		MinRating:   req.MinRating,
		IsWashed:    req.IsWashed,
		Tags:        req.Tags,
		Images:      req.Images,
		Location:    req.Location,
		UserID:      claims.UserID,
	})
	if err != nil {
		if errors.Is(err, store.ErrQuotaExceeded) {
			jsonError(w, h.Log, http.StatusInsufficientStorage, "storage is full, item was not saved")
			return
		}
		h.Log.Errorw("creating item", "error", err)
		jsonError(w, h.Log, http.StatusInternalServerError, "failed to create item")
		return
	}

	if err := h.Ledger.AwardOnce(r.Context(), claims.UserID, points.ActionItemListed,
		"item-listed:"+item.ID, "listing an item"); err != nil {
		h.Log.Warnw("item listing award failed", "item", item.ID, "error", err)
	}
	if item.IsWashed {
		if err := h.Ledger.AwardOnce(r.Context(), claims.UserID, points.ActionWashBeforeGiving,
			"wash-bonus:"+item.ID, "washing before giving"); err != nil {
			h.Log.Warnw("wash bonus award failed", "item", item.ID, "error", err)
		}
	}

	jsonResponse(w, h.Log, http.StatusCreated, item)
}

// Get handles GET /api/items/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.Store.GetItem(r.Context(), r.PathValue("id"))
	if err != nil {
		if store.IsNotFound(err) {
			jsonError(w, h.Log, http.StatusNotFound, "item not found")
			return
		}
		jsonError(w, h.Log, http.StatusInternalServerError, "failed to get item")
		return
	}
	jsonResponse(w, h.Log, http.StatusOK, item)
}

// Update handles PUT /api/items/{id}. Only the owner or an admin may
// edit a listing.
func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	id := r.PathValue("id")

	item, err := h.Store.GetItem(r.Context(), id)
	if err != nil {
		if store.IsNotFound(err) {
			jsonError(w, h.Log, http.StatusNotFound, "item not found")
			return
		}
		jsonError(w, h.Log, http.StatusInternalServerError, "failed to get item")
		return
	}
	if item.UserID != claims.UserID && !model.RoleAtLeast(claims.Role, model.RoleAdmin) {
		jsonError(w, h.Log, http.StatusForbidden, "not your listing")
		return
	}

	var patch model.ItemPatch
	if err := decodeJSON(r, &patch); err != nil {
		jsonError(w, h.Log, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.Store.UpdateItem(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, store.ErrQuotaExceeded) {
			jsonError(w, h.Log, http.StatusInsufficientStorage, "storage is full, update was not saved")
			return
		}
		jsonError(w, h.Log, http.StatusInternalServerError, "failed to update item")
		return
	}
	jsonResponse(w, h.Log, http.StatusOK, updated)
}

type statusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected flagged"`
}

// UpdateStatus handles PUT /api/items/{id}/status (admin only).
func (h *ItemsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, h.Log, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.Store.UpdateItemStatus(r.Context(), r.PathValue("id"), req.Status)
	if err != nil {
		if store.IsNotFound(err) {
			jsonError(w, h.Log, http.StatusNotFound, "item not found")
			return
		}
		jsonError(w, h.Log, http.StatusInternalServerError, "failed to update status")
		return
	}

	_, err = h.Store.CreateNotification(r.Context(), model.Notification{
		UserID:  item.UserID,
		Title:   "Listing " + item.Status,
		Message: "Your listing \"" + item.Title + "\" is now " + item.Status,
		Type:    model.NotificationSystem,
	})
	if err != nil {
		h.Log.Warnw("moderation notification failed", "item", item.ID, "error", err)
	}

	jsonResponse(w, h.Log, http.StatusOK, item)
}

// Delete handles DELETE /api/items/{id}. Only the owner or an admin may
// remove a listing.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	id := r.PathValue("id")

	item, err := h.Store.GetItem(r.Context(), id)
	if err != nil {
		if store.IsNotFound(err) {
			jsonError(w, h.Log, http.StatusNotFound, "item not found")
			return
		}
		jsonError(w, h.Log, http.StatusInternalServerError, "failed to get item")
		return
	}
	if item.UserID != claims.UserID && !model.RoleAtLeast(claims.Role, model.RoleAdmin) {
		jsonError(w, h.Log, http.StatusForbidden, "not your listing")
		return
	}

	if err := h.Store.DeleteItem(r.Context(), id); err != nil {
		jsonError(w, h.Log, http.StatusInternalServerError, "failed to delete item")
		return
	}
	jsonResponse(w, h.Log, http.StatusOK, map[string]string{"status": "deleted"})
}

// Similar handles GET /api/items/{id}/similar. Query parameters
// threshold, sort_by and filter_by refine the ranked result.
func (h *ItemsHandler) Similar(w http.ResponseWriter, r *http.Request) {
	ref, err := h.Store.GetItem(r.Context(), r.PathValue("id"))
	if err != nil {
		if store.IsNotFound(err) {
			jsonError(w, h.Log, http.StatusNotFound, "item not found")
			return
		}
		jsonError(w, h.Log, http.StatusInternalServerError, "failed to get item")
		return
	}

	pool, err := h.Store.ListApprovedItems(r.Context())
	if err != nil {
		jsonError(w, h.Log, http.StatusInternalServerError, "failed to list items")
		return
	}

	matches := h.Scorer.Rank(*ref, pool)

	opts := similarity.RefineOptions{
		SortBy:   r.URL.Query().Get("sort_by"),
		FilterBy: r.URL.Query().Get("filter_by"),
	}
	if t := r.URL.Query().Get("threshold"); t != "" {
		threshold, err := strconv.Atoi(t)
		if err != nil || threshold < 0 || threshold > 100 {
			jsonError(w, h.Log, http.StatusBadRequest, "invalid threshold")
			return
		}
		opts.Threshold = threshold
	}
	matches = similarity.Refine(matches, *ref, opts)

	if matches == nil {
		matches = []similarity.Match{}
	}
	jsonResponse(w, h.Log, http.StatusOK, matches)
}

// Redeem handles POST /api/items/{id}/redeem: the caller spends the
// item's point cost, the owner is notified.
func (h *ItemsHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	item, err := h.Store.GetItem(r.Context(), r.PathValue("id"))
	if err != nil {
		if store.IsNotFound(err) {
			jsonError(w, h.Log, http.StatusNotFound, "item not found")
			return
		}
		jsonError(w, h.Log, http.StatusInternalServerError, "failed to get item")
		return
	}
	if item.Type != model.ItemTypeRedeem || item.Status != model.ItemStatusApproved {
		jsonError(w, h.Log, http.StatusBadRequest, "item is not redeemable")
		return
	}
	if item.UserID == claims.UserID {
		jsonError(w, h.Log, http.StatusBadRequest, "cannot redeem your own listing")
		return
	}

	if err := h.Ledger.Deduct(r.Context(), claims.UserID, item.Points, "redeeming \""+item.Title+"\""); err != nil {
		if errors.Is(err, store.ErrInsufficientPoints) {
			jsonError(w, h.Log, http.StatusPaymentRequired, "not enough points")
			return
		}
		jsonError(w, h.Log, http.StatusInternalServerError, "failed to redeem item")
		return
	}

	_, err = h.Store.CreateNotification(r.Context(), model.Notification{
		UserID:  item.UserID,
		Title:   "Item Redeemed",
		Message: claims.Username + " redeemed \"" + item.Title + "\"",
		Type:    model.NotificationRedeem,
	})
	if err != nil {
		h.Log.Warnw("redeem notification failed", "item", item.ID, "error", err)
	}

	jsonResponse(w, h.Log, http.StatusOK, map[string]string{"status": "redeemed"})
}

// nonNil turns a nil item slice into an empty one so JSON encodes [].
func nonNil(items []model.Item) []model.Item {
	if items == nil {
		return []model.Item{}
	}
	return items
}
