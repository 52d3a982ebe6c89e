package api

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/sukrititalwar/rewear/internal/model"
	"github.com/sukrititalwar/rewear/internal/store"
)

// PrefsHandler handles accessibility preferences.
type PrefsHandler struct {
	Store *store.Store
	Log   *zap.SugaredLogger
}

// Get handles GET /api/prefs for the current user.
func (h *PrefsHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	prefs, err := h.Store.GetPrefs(r.Context(), claims.UserID)
	if err != nil {
		jsonError(w, h.Log, http.StatusInternalServerError, "failed to get preferences")
		return
	}
	jsonResponse(w, h.Log, http.StatusOK, prefs)
}

type prefsRequest struct {
	HighContrast   bool `json:"high_contrast"`
	LargeText      bool `json:"large_text"`
	ReduceMotion   bool `json:"reduce_motion"`
	ScreenReader   bool `json:"screen_reader"`
	ReadAloudSpeed int  `json:"read_aloud_speed" validate:"min=0,max=3"`
}

// Set handles PUT /api/prefs for the current user.
func (h *PrefsHandler) Set(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	var req prefsRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, h.Log, http.StatusBadRequest, "invalid request body")
		return
	}

	prefs := model.AccessibilityPrefs{
		UserID:         claims.UserID,
		HighContrast:   req.HighContrast,
		LargeText:      req.LargeText,
		ReduceMotion:   req.ReduceMotion,
		ScreenReader:   req.ScreenReader,
		ReadAloudSpeed: req.ReadAloudSpeed,
	}
	if err := h.Store.SetPrefs(r.Context(), prefs); err != nil {
		jsonError(w, h.Log, http.StatusInternalServerError, "failed to save preferences")
		return
	}
	jsonResponse(w, h.Log, http.StatusOK, prefs)
}
