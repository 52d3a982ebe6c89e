package api

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/sukrititalwar/rewear/internal/model"
	"github.com/sukrititalwar/rewear/internal/points"
	"github.com/sukrititalwar/rewear/internal/store"
)

// ReviewsHandler handles leaving and listing reviews.
type ReviewsHandler struct {
	Store  *store.Store
	Ledger *points.Ledger
	Log    *zap.SugaredLogger
}

type createReviewRequest struct {
	ToUserID      string `json:"to_user_id" validate:"required"`
	ItemID        string `json:"item_id"`
	SwapRequestID string `json:"swap_request_id"`
	Rating        int    `json:"rating" validate:"required,min=1,max=5"`
	Comment       string `json:"comment" validate:"max=1000"`
	Type          string `json:"type" validate:"omitempty,oneof=swap rent general"`
}

// Create handles POST /api/reviews. The target user's rating is
// recomputed immediately, and a member's very first review earns a
// one-time bonus.
func (h *ReviewsHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	var req createReviewRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, h.Log, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ToUserID == claims.UserID {
		jsonError(w, h.Log, http.StatusBadRequest, "cannot review yourself")
		return
	}
	if _, err := h.Store.GetUser(r.Context(), req.ToUserID); err != nil {
		if store.IsNotFound(err) {
			jsonError(w, h.Log, http.StatusNotFound, "user not found")
			return
		}
		jsonError(w, h.Log, http.StatusInternalServerError, "failed to create review")
		return
	}

	reviewType := req.Type
	if reviewType == "" {
		reviewType = model.ReviewGeneral
	}

	review, err := h.Store.CreateReview(r.Context(), model.Review{
		FromUserID:    claims.UserID,
		ToUserID:      req.ToUserID,
		ItemID:        req.ItemID,
		SwapRequestID: req.SwapRequestID,
		Rating:        req.Rating,
		Comment:       req.Comment,
		Type:          reviewType,
	})
	if err != nil {
		jsonError(w, h.Log, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Ledger.AwardOnce(r.Context(), claims.UserID, points.ActionFirstReview,
		"first-review:"+claims.UserID, "writing your first review"); err != nil {
		h.Log.Warnw("first review award failed", "user", claims.UserID, "error", err)
	}

	_, err = h.Store.CreateNotification(r.Context(), model.Notification{
		UserID:  req.ToUserID,
		Title:   "New Review",
		Message: claims.Username + " left you a review",
		Type:    model.NotificationReview,
	})
	if err != nil {
		h.Log.Warnw("review notification failed", "user", req.ToUserID, "error", err)
	}

	jsonResponse(w, h.Log, http.StatusCreated, review)
}

// ForItem handles GET /api/items/{id}/reviews.
func (h *ReviewsHandler) ForItem(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.Store.ReviewsForItem(r.Context(), r.PathValue("id"))
	if err != nil {
		jsonError(w, h.Log, http.StatusInternalServerError, "failed to list reviews")
		return
	}
	if reviews == nil {
		reviews = []model.Review{}
	}
	jsonResponse(w, h.Log, http.StatusOK, reviews)
}
