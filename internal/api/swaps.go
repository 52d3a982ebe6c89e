package api

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/sukrititalwar/rewear/internal/model"
	"github.com/sukrititalwar/rewear/internal/points"
	"github.com/sukrititalwar/rewear/internal/store"
)

// SwapsHandler handles swap request offers and their lifecycle.
type SwapsHandler struct {
	Store  *store.Store
	Ledger *points.Ledger
	Log    *zap.SugaredLogger
}

type createSwapRequest struct {
	ToItemID   string `json:"to_item_id" validate:"required"`
	FromItemID string `json:"from_item_id"`
	Message    string `json:"message" validate:"max=1000"`
}

// Create handles POST /api/swaps: offer a swap for someone's item.
func (h *SwapsHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	var req createSwapRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, h.Log, http.StatusBadRequest, "invalid request body")
		return
	}

	target, err := h.Store.GetItem(r.Context(), req.ToItemID)
	if err != nil {
		if store.IsNotFound(err) {
			jsonError(w, h.Log, http.StatusNotFound, "item not found")
			return
		}
		jsonError(w, h.Log, http.StatusInternalServerError, "failed to create swap request")
		return
	}
	if target.UserID == claims.UserID {
		jsonError(w, h.Log, http.StatusBadRequest, "cannot request your own item")
		return
	}
	if target.Status != model.ItemStatusApproved {
		jsonError(w, h.Log, http.StatusBadRequest, "item is not available")
		return
	}

	swap, err := h.Store.CreateSwapRequest(r.Context(), model.SwapRequest{
		FromUserID: claims.UserID,
		ToUserID:   target.UserID,
		FromItemID: req.FromItemID,
		ToItemID:   req.ToItemID,
		Message:    req.Message,
	})
	if err != nil {
		jsonError(w, h.Log, http.StatusInternalServerError, "failed to create swap request")
		return
	}

	_, err = h.Store.CreateNotification(r.Context(), model.Notification{
		UserID:  target.UserID,
		Title:   "New Swap Request",
		Message: claims.Username + " wants to swap for \"" + target.Title + "\"",
		Type:    model.NotificationSwap,
	})
	if err != nil {
		h.Log.Warnw("swap notification failed", "user", target.UserID, "error", err)
	}

	jsonResponse(w, h.Log, http.StatusCreated, swap)
}

// List handles GET /api/swaps: requests the current user sent or received.
func (h *SwapsHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	swaps, err := h.Store.SwapRequestsByUser(r.Context(), claims.UserID)
	if err != nil {
		jsonError(w, h.Log, http.StatusInternalServerError, "failed to list swap requests")
		return
	}
	if swaps == nil {
		swaps = []model.SwapRequest{}
	}
	jsonResponse(w, h.Log, http.StatusOK, swaps)
}

type swapStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected completed"`
}

// UpdateStatus handles PUT /api/swaps/{id}/status. Only the two parties
// may transition a request; completing one awards swap points to both
// sides and bumps their swap counters.
func (h *SwapsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	id := r.PathValue("id")

	var req swapStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, h.Log, http.StatusBadRequest, "invalid request body")
		return
	}

	swap, err := h.Store.GetSwapRequest(r.Context(), id)
	if err != nil {
		if store.IsNotFound(err) {
			jsonError(w, h.Log, http.StatusNotFound, "swap request not found")
			return
		}
		jsonError(w, h.Log, http.StatusInternalServerError, "failed to update swap request")
		return
	}
	if claims.UserID != swap.FromUserID && claims.UserID != swap.ToUserID {
		jsonError(w, h.Log, http.StatusForbidden, "not your swap request")
		return
	}
	if swap.Status == model.SwapStatusCompleted {
		jsonError(w, h.Log, http.StatusBadRequest, "swap request already completed")
		return
	}

	swap, err = h.Store.UpdateSwapRequestStatus(r.Context(), id, req.Status)
	if err != nil {
		jsonError(w, h.Log, http.StatusBadRequest, err.Error())
		return
	}

	if swap.Status == model.SwapStatusCompleted {
		h.completeSwap(r, swap)
	}

	other := swap.FromUserID
	if claims.UserID == swap.FromUserID {
		other = swap.ToUserID
	}
	_, err = h.Store.CreateNotification(r.Context(), model.Notification{
		UserID:  other,
		Title:   "Swap Request " + swap.Status,
		Message: claims.Username + " marked the swap request " + swap.Status,
		Type:    model.NotificationSwap,
	})
	if err != nil {
		h.Log.Warnw("swap status notification failed", "user", other, "error", err)
	}

	jsonResponse(w, h.Log, http.StatusOK, swap)
}

// completeSwap awards both parties once per swap and increments their
// swap counters.
func (h *SwapsHandler) completeSwap(r *http.Request, swap *model.SwapRequest) {
	for _, userID := range []string{swap.FromUserID, swap.ToUserID} {
		err := h.Ledger.AwardOnce(r.Context(), userID, points.ActionSuccessfulSwap,
			"successful-swap:"+swap.ID+":"+userID, "completing a swap")
		if err != nil {
			h.Log.Warnw("swap award failed", "user", userID, "swap", swap.ID, "error", err)
			continue
		}

		user, err := h.Store.GetUser(r.Context(), userID)
		if err != nil {
			h.Log.Warnw("swap counter update failed", "user", userID, "error", err)
			continue
		}
		total := user.TotalSwaps + 1
		if _, err := h.Store.UpdateUser(r.Context(), userID, model.UserPatch{TotalSwaps: &total}); err != nil {
			h.Log.Warnw("swap counter update failed", "user", userID, "error", err)
		}
	}
}
