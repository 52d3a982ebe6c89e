package api

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/sukrititalwar/rewear/internal/model"
	"github.com/sukrititalwar/rewear/internal/store"
)

// SocialHandler handles follows and wishlists.
type SocialHandler struct {
	Store *store.Store
	Log   *zap.SugaredLogger
}

// Follow handles POST /api/users/{id}/follow.
func (h *SocialHandler) Follow(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	targetID := r.PathValue("id")

	if _, err := h.Store.GetUser(r.Context(), targetID); err != nil {
		if store.IsNotFound(err) {
			jsonError(w, h.Log, http.StatusNotFound, "user not found")
			return
		}
		jsonError(w, h.Log, http.StatusInternalServerError, "failed to follow user")
		return
	}

	follow, err := h.Store.Follow(r.Context(), claims.UserID, targetID)
	if err != nil {
		jsonError(w, h.Log, http.StatusBadRequest, err.Error())
		return
	}

	_, err = h.Store.CreateNotification(r.Context(), model.Notification{
		UserID:  targetID,
		Title:   "New Follower",
		Message: claims.Username + " started following you",
		Type:    model.NotificationFollow,
	})
	if err != nil {
		h.Log.Warnw("follow notification failed", "user", targetID, "error", err)
	}

	jsonResponse(w, h.Log, http.StatusCreated, follow)
}

// Unfollow handles DELETE /api/users/{id}/follow.
func (h *SocialHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if err := h.Store.Unfollow(r.Context(), claims.UserID, r.PathValue("id")); err != nil {
		if store.IsNotFound(err) {
			jsonError(w, h.Log, http.StatusNotFound, "not following this user")
			return
		}
		jsonError(w, h.Log, http.StatusInternalServerError, "failed to unfollow user")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Followers handles GET /api/users/{id}/followers.
func (h *SocialHandler) Followers(w http.ResponseWriter, r *http.Request) {
	follows, err := h.Store.Followers(r.Context(), r.PathValue("id"))
	if err != nil {
		jsonError(w, h.Log, http.StatusInternalServerError, "failed to list followers")
		return
	}
	if follows == nil {
		follows = []model.Follow{}
	}
	jsonResponse(w, h.Log, http.StatusOK, follows)
}

// Following handles GET /api/users/{id}/following.
func (h *SocialHandler) Following(w http.ResponseWriter, r *http.Request) {
	follows, err := h.Store.Following(r.Context(), r.PathValue("id"))
	if err != nil {
		jsonError(w, h.Log, http.StatusInternalServerError, "failed to list following")
		return
	}
	if follows == nil {
		follows = []model.Follow{}
	}
	jsonResponse(w, h.Log, http.StatusOK, follows)
}

// Wishlist handles GET /api/wishlist for the current user.
func (h *SocialHandler) Wishlist(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	entries, err := h.Store.WishlistByUser(r.Context(), claims.UserID)
	if err != nil {
		jsonError(w, h.Log, http.StatusInternalServerError, "failed to list wishlist")
		return
	}
	if entries == nil {
		entries = []model.WishlistEntry{}
	}
	jsonResponse(w, h.Log, http.StatusOK, entries)
}

// AddToWishlist handles POST /api/wishlist/{itemID}.
func (h *SocialHandler) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	itemID := r.PathValue("itemID")

	if _, err := h.Store.GetItem(r.Context(), itemID); err != nil {
		if store.IsNotFound(err) {
			jsonError(w, h.Log, http.StatusNotFound, "item not found")
			return
		}
		jsonError(w, h.Log, http.StatusInternalServerError, "failed to save item")
		return
	}

	entry, err := h.Store.AddToWishlist(r.Context(), claims.UserID, itemID)
	if err != nil {
		jsonError(w, h.Log, http.StatusInternalServerError, "failed to save item")
		return
	}
	jsonResponse(w, h.Log, http.StatusCreated, entry)
}

// RemoveFromWishlist handles DELETE /api/wishlist/{itemID}.
func (h *SocialHandler) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if err := h.Store.RemoveFromWishlist(r.Context(), claims.UserID, r.PathValue("itemID")); err != nil {
		if store.IsNotFound(err) {
			jsonError(w, h.Log, http.StatusNotFound, "item not in wishlist")
			return
		}
		jsonError(w, h.Log, http.StatusInternalServerError, "failed to remove item")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
