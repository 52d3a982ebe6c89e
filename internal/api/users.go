package api

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/sukrititalwar/rewear/internal/model"
	"github.com/sukrititalwar/rewear/internal/points"
	"github.com/sukrititalwar/rewear/internal/store"
)

// UsersHandler handles profile endpoints.
type UsersHandler struct {
	Store  *store.Store
	Ledger *points.Ledger
	Log    *zap.SugaredLogger
}

// Get handles GET /api/users/{id}.
func (h *UsersHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.Store.GetUser(r.Context(), r.PathValue("id"))
	if err != nil {
		if store.IsNotFound(err) {
			jsonError(w, h.Log, http.StatusNotFound, "user not found")
			return
		}
		jsonError(w, h.Log, http.StatusInternalServerError, "failed to get user")
		return
	}
	jsonResponse(w, h.Log, http.StatusOK, user)
}

type updateProfileRequest struct {
	Username *string `json:"username" validate:"omitempty,min=2,max=40"`
	Avatar   *string `json:"avatar"`
}

// Update handles PUT /api/users/{id}. Users may only edit their own
// profile; completing it (username plus avatar) earns a one-time bonus.
func (h *UsersHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	id := r.PathValue("id")
	if id != claims.UserID && !model.RoleAtLeast(claims.Role, model.RoleAdmin) {
		jsonError(w, h.Log, http.StatusForbidden, "not your profile")
		return
	}

	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, h.Log, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.Store.UpdateUser(r.Context(), id, model.UserPatch{
		Username: req.Username,
		Avatar:   req.Avatar,
	})
	if err != nil {
		if store.IsNotFound(err) {
			jsonError(w, h.Log, http.StatusNotFound, "user not found")
			return
		}
		jsonError(w, h.Log, http.StatusInternalServerError, "failed to update user")
		return
	}

	if user.Username != "" && user.Avatar != "" {
		if err := h.Ledger.AwardOnce(r.Context(), id, points.ActionProfileCompleted,
			"profile-completed:"+id, "completing your profile"); err != nil {
			h.Log.Warnw("profile completion award failed", "user", id, "error", err)
		}
	}

	jsonResponse(w, h.Log, http.StatusOK, user)
}

// Items handles GET /api/users/{id}/items: the user's own listings in
// every moderation status.
func (h *UsersHandler) Items(w http.ResponseWriter, r *http.Request) {
	items, err := h.Store.ListItemsByUser(r.Context(), r.PathValue("id"))
	if err != nil {
		jsonError(w, h.Log, http.StatusInternalServerError, "failed to list items")
		return
	}
	jsonResponse(w, h.Log, http.StatusOK, nonNil(items))
}

// Reviews handles GET /api/users/{id}/reviews.
func (h *UsersHandler) Reviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.Store.ReviewsForUser(r.Context(), r.PathValue("id"))
	if err != nil {
		jsonError(w, h.Log, http.StatusInternalServerError, "failed to list reviews")
		return
	}
	if reviews == nil {
		reviews = []model.Review{}
	}
	jsonResponse(w, h.Log, http.StatusOK, reviews)
}
