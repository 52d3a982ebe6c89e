package api

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/sukrititalwar/rewear/internal/model"
	"github.com/sukrititalwar/rewear/internal/store"
)

// NotificationsHandler handles the current user's notification feed.
type NotificationsHandler struct {
	Store *store.Store
	Log   *zap.SugaredLogger
}

// List handles GET /api/notifications, newest first.
func (h *NotificationsHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	notifications, err := h.Store.NotificationsByUser(r.Context(), claims.UserID)
	if err != nil {
		jsonError(w, h.Log, http.StatusInternalServerError, "failed to list notifications")
		return
	}
	if notifications == nil {
		notifications = []model.Notification{}
	}
	jsonResponse(w, h.Log, http.StatusOK, notifications)
}

// MarkRead handles PUT /api/notifications/{id}/read.
func (h *NotificationsHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.MarkNotificationRead(r.Context(), r.PathValue("id")); err != nil {
		if store.IsNotFound(err) {
			jsonError(w, h.Log, http.StatusNotFound, "notification not found")
			return
		}
		jsonError(w, h.Log, http.StatusInternalServerError, "failed to mark notification read")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MarkAllRead handles PUT /api/notifications/read.
func (h *NotificationsHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if err := h.Store.MarkAllNotificationsRead(r.Context(), claims.UserID); err != nil {
		jsonError(w, h.Log, http.StatusInternalServerError, "failed to mark notifications read")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
