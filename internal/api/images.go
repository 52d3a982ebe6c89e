package api

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/sukrititalwar/rewear/internal/imaging"
	"github.com/sukrititalwar/rewear/internal/store"
)

// ImagesHandler handles photo uploads and serving stored blobs.
type ImagesHandler struct {
	Store *store.Store
	Log   *zap.SugaredLogger
}

// Upload handles POST /api/images. The photo is validated, downscaled
// and re-encoded before entering the bounded blob store; the returned id
// can be attached to a listing's images list.
func (h *ImagesHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(imaging.MaxUploadBytes); err != nil {
		jsonError(w, h.Log, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		jsonError(w, h.Log, http.StatusBadRequest, "image file required")
		return
	}
	defer file.Close()

	result, err := imaging.Process(file)
	if err != nil {
		if errors.Is(err, imaging.ErrImageTooLarge) {
			jsonError(w, h.Log, http.StatusRequestEntityTooLarge, "image exceeds maximum upload size")
			return
		}
		jsonError(w, h.Log, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.Store.PutImage(r.Context(), result.Data, result.MIME)
	if err != nil {
		if errors.Is(err, store.ErrQuotaExceeded) {
			jsonError(w, h.Log, http.StatusInsufficientStorage, "image storage is full")
			return
		}
		jsonError(w, h.Log, http.StatusInternalServerError, "failed to save image")
		return
	}

	jsonResponse(w, h.Log, http.StatusCreated, map[string]string{"id": id})
}

// Get handles GET /api/images/{id}.
func (h *ImagesHandler) Get(w http.ResponseWriter, r *http.Request) {
	data, mime, err := h.Store.GetImage(r.Context(), r.PathValue("id"))
	if err != nil {
		if store.IsNotFound(err) {
			jsonError(w, h.Log, http.StatusNotFound, "image not found")
			return
		}
		jsonError(w, h.Log, http.StatusInternalServerError, "failed to get image")
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	if _, err := w.Write(data); err != nil {
		h.Log.Warnw("writing image response", "error", err)
	}
}
