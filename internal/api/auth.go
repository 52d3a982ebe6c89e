package api

import (
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/sukrititalwar/rewear/internal/auth"
	"github.com/sukrititalwar/rewear/internal/model"
	"github.com/sukrititalwar/rewear/internal/points"
	"github.com/sukrititalwar/rewear/internal/store"
)

// AuthHandler handles signup, login and logout.
type AuthHandler struct {
	Store     *store.Store
	Ledger    *points.Ledger
	Log       *zap.SugaredLogger
	JWTSecret string
}

type signupRequest struct {
	Username string `json:"username" validate:"required,min=2,max=40"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// Signup handles POST /api/auth/signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, h.Log, http.StatusBadRequest, "invalid request body")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		jsonError(w, h.Log, http.StatusInternalServerError, "failed to hash password")
		return
	}

	user, err := h.Store.CreateUser(r.Context(), req.Username, req.Email, string(hash), model.RoleUser)
	if err != nil {
		if strings.Contains(err.Error(), "already registered") {
			jsonError(w, h.Log, http.StatusConflict, "email already registered")
			return
		}
		h.Log.Errorw("creating user", "error", err)
		jsonError(w, h.Log, http.StatusInternalServerError, "failed to create user")
		return
	}

	token, err := auth.GenerateToken(h.JWTSecret, user.ID, user.Username, user.Role)
	if err != nil {
		jsonError(w, h.Log, http.StatusInternalServerError, "failed to create session")
		return
	}

	jsonResponse(w, h.Log, http.StatusCreated, sessionResponse{Token: token, User: user})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, h.Log, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.Store.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		jsonError(w, h.Log, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		jsonError(w, h.Log, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := auth.GenerateToken(h.JWTSecret, user.ID, user.Username, user.Role)
	if err != nil {
		jsonError(w, h.Log, http.StatusInternalServerError, "failed to create session")
		return
	}

	// One small daily reward per calendar day, deduplicated by event id.
	eventID := "daily-login:" + user.ID + ":" + time.Now().UTC().Format("2006-01-02")
	if err := h.Ledger.AwardOnce(r.Context(), user.ID, points.ActionDailyLogin, eventID, "logging in today"); err != nil {
		h.Log.Warnw("daily login award failed", "user", user.ID, "error", err)
	}

	jsonResponse(w, h.Log, http.StatusOK, sessionResponse{Token: token, User: user})
}

// Logout handles POST /api/auth/logout: the session's token id is
// revoked until it would have expired anyway.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, h.Log, http.StatusUnauthorized, "not authenticated")
		return
	}

	if err := h.Store.RevokeToken(r.Context(), claims.ID, claims.ExpiresAt.Time); err != nil {
		h.Log.Errorw("revoking token", "error", err)
		jsonError(w, h.Log, http.StatusInternalServerError, "failed to log out")
		return
	}

	jsonResponse(w, h.Log, http.StatusOK, map[string]string{"status": "logged out"})
}
