package api

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/sukrititalwar/rewear/internal/model"
	"github.com/sukrititalwar/rewear/internal/store"
)

// ChatHandler handles one-to-one conversations.
type ChatHandler struct {
	Store *store.Store
	Log   *zap.SugaredLogger
}

// Conversation handles GET /api/chats/{userID}: the transcript between
// the current user and userID, oldest first.
func (h *ChatHandler) Conversation(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	msgs, err := h.Store.Conversation(r.Context(), claims.UserID, r.PathValue("userID"))
	if err != nil {
		jsonError(w, h.Log, http.StatusInternalServerError, "failed to load conversation")
		return
	}
	if msgs == nil {
		msgs = []model.ChatMessage{}
	}
	jsonResponse(w, h.Log, http.StatusOK, msgs)
}

type sendMessageRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

// Send handles POST /api/chats/{userID}.
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	toUserID := r.PathValue("userID")

	if toUserID == claims.UserID {
		jsonError(w, h.Log, http.StatusBadRequest, "cannot message yourself")
		return
	}
	if _, err := h.Store.GetUser(r.Context(), toUserID); err != nil {
		if store.IsNotFound(err) {
			jsonError(w, h.Log, http.StatusNotFound, "user not found")
			return
		}
		jsonError(w, h.Log, http.StatusInternalServerError, "failed to send message")
		return
	}

	var req sendMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, h.Log, http.StatusBadRequest, "invalid request body")
		return
	}

	msg, err := h.Store.AppendChatMessage(r.Context(), claims.UserID, toUserID, req.Message)
	if err != nil {
		jsonError(w, h.Log, http.StatusInternalServerError, "failed to send message")
		return
	}

	_, err = h.Store.CreateNotification(r.Context(), model.Notification{
		UserID:  toUserID,
		Title:   "New Message",
		Message: claims.Username + " sent you a message",
		Type:    model.NotificationChat,
	})
	if err != nil {
		h.Log.Warnw("chat notification failed", "user", toUserID, "error", err)
	}

	jsonResponse(w, h.Log, http.StatusCreated, msg)
}
