package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/sukrititalwar/rewear/internal/db"
	"github.com/sukrititalwar/rewear/internal/model"
	"github.com/sukrititalwar/rewear/internal/store"
)

const testJWTSecret = "test-secret"

func setupTestServer(t *testing.T) (*httptest.Server, *store.Store) {
	t.Helper()
	database := db.NewTestDB(t)
	s := store.New(database, zap.NewNop().Sugar(), store.Config{})
	server := httptest.NewServer(NewRouter(s, testJWTSecret, zap.NewNop().Sugar()))
	t.Cleanup(server.Close)

	hash, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if _, err := s.CreateUser(context.Background(), "admin", "admin@rewear.local", string(hash), model.RoleAdmin); err != nil {
		t.Fatalf("creating admin: %v", err)
	}

	return server, s
}

// login authenticates an email/password pair and returns the session token.
func login(t *testing.T, server *httptest.Server, email, password string) string {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	resp, err := http.Post(server.URL+"/api/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("login request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login failed: %d", resp.StatusCode)
	}

	var session struct {
		Token string `json:"token"`
	}
	json.NewDecoder(resp.Body).Decode(&session)
	if session.Token == "" {
		t.Fatal("empty token from login")
	}
	return session.Token
}

// signup registers a fresh account and returns its token and user id.
func signup(t *testing.T, server *httptest.Server, username, email string) (string, string) {
	t.Helper()
	body, _ := json.Marshal(map[string]string{
		"username": username,
		"email":    email,
		"password": "password123",
	})
	resp, err := http.Post(server.URL+"/api/auth/signup", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("signup request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("signup failed: %d", resp.StatusCode)
	}

	var session struct {
		Token string     `json:"token"`
		User  model.User `json:"user"`
	}
	json.NewDecoder(resp.Body).Decode(&session)
	return session.Token, session.User.ID
}

func authRequest(method, url, token string, body any) (*http.Request, error) {
	var bodyReader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(data)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func TestLoginEndpoint(t *testing.T) {
	server, _ := setupTestServer(t)

	body, _ := json.Marshal(map[string]string{"email": "admin@rewear.local", "password": "wrong"})
	resp, _ := http.Post(server.URL+"/api/auth/login", "application/json", bytes.NewReader(body))
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 for bad password, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	login(t, server, "admin@rewear.local", "password")
}

func TestSignupDuplicateEmail(t *testing.T) {
	server, _ := setupTestServer(t)

	signup(t, server, "maya", "maya@example.com")

	body, _ := json.Marshal(map[string]string{
		"username": "other",
		"email":    "maya@example.com",
		"password": "password123",
	})
	resp, _ := http.Post(server.URL+"/api/auth/signup", "application/json", bytes.NewReader(body))
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("expected 409 for duplicate email, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestLogoutRevokesToken(t *testing.T) {
	server, _ := setupTestServer(t)
	token, _ := signup(t, server, "maya", "maya@example.com")

	req, _ := authRequest("POST", server.URL+"/api/auth/logout", token, nil)
	resp, _ := http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("logout failed: %d", resp.StatusCode)
	}
	resp.Body.Close()

	// The revoked token no longer grants access.
	req, _ = authRequest("GET", server.URL+"/api/notifications", token, nil)
	resp, _ = http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 after logout, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestItemModerationFlow(t *testing.T) {
	server, _ := setupTestServer(t)
	userToken, _ := signup(t, server, "maya", "maya@example.com")
	adminToken := login(t, server, "admin@rewear.local", "password")

	// Create a listing; it starts pending.
	req, _ := authRequest("POST", server.URL+"/api/items", userToken, map[string]any{
		"title":     "Denim Jacket",
		"category":  "Jackets",
		"size":      "M",
		"type":      "swap",
		"condition": "Good",
	})
	resp, _ := http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var item model.Item
	json.NewDecoder(resp.Body).Decode(&item)
	resp.Body.Close()
	if item.Status != model.ItemStatusPending {
		t.Errorf("expected pending listing, got %q", item.Status)
	}

	// Pending listings are invisible in search.
	req, _ = authRequest("GET", server.URL+"/api/search?q=denim", userToken, nil)
	resp, _ = http.DefaultClient.Do(req)
	var results []model.Item
	json.NewDecoder(resp.Body).Decode(&results)
	resp.Body.Close()
	if len(results) != 0 {
		t.Errorf("expected pending item hidden from search, got %d results", len(results))
	}

	// Moderation requires the admin role.
	req, _ = authRequest("PUT", server.URL+"/api/items/"+item.ID+"/status", userToken, map[string]string{"status": "approved"})
	resp, _ = http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("expected 403 for non-admin moderation, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	req, _ = authRequest("PUT", server.URL+"/api/items/"+item.ID+"/status", adminToken, map[string]string{"status": "approved"})
	resp, _ = http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for admin moderation, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Approved listings become searchable.
	req, _ = authRequest("GET", server.URL+"/api/search?q=denim", userToken, nil)
	resp, _ = http.DefaultClient.Do(req)
	json.NewDecoder(resp.Body).Decode(&results)
	resp.Body.Close()
	if len(results) != 1 {
		t.Errorf("expected approved item in search, got %d results", len(results))
	}
}

func TestWishlistFlow(t *testing.T) {
	server, s := setupTestServer(t)
	token, _ := signup(t, server, "maya", "maya@example.com")

	owner, _ := s.CreateUser(context.Background(), "arjun", "arjun@example.com", "hash", model.RoleUser)
	item, _ := s.CreateItem(context.Background(), model.Item{Title: "Coat", UserID: owner.ID})

	// Saving twice is a no-op success, not an error.
	for i := 0; i < 2; i++ {
		req, _ := authRequest("POST", server.URL+"/api/wishlist/"+item.ID, token, nil)
		resp, _ := http.DefaultClient.Do(req)
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("expected 201 on save, got %d", resp.StatusCode)
		}
		resp.Body.Close()
	}

	req, _ := authRequest("GET", server.URL+"/api/wishlist", token, nil)
	resp, _ := http.DefaultClient.Do(req)
	var entries []model.WishlistEntry
	json.NewDecoder(resp.Body).Decode(&entries)
	resp.Body.Close()
	if len(entries) != 1 {
		t.Errorf("expected 1 wishlist entry after duplicate saves, got %d", len(entries))
	}
}

func TestFollowFlow(t *testing.T) {
	server, _ := setupTestServer(t)
	token, userID := signup(t, server, "maya", "maya@example.com")
	_, otherID := signup(t, server, "arjun", "arjun@example.com")

	// Self-follow is rejected.
	req, _ := authRequest("POST", server.URL+"/api/users/"+userID+"/follow", token, nil)
	resp, _ := http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for self-follow, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	req, _ = authRequest("POST", server.URL+"/api/users/"+otherID+"/follow", token, nil)
	resp, _ = http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 for follow, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	req, _ = authRequest("GET", server.URL+"/api/users/"+otherID+"/followers", token, nil)
	resp, _ = http.DefaultClient.Do(req)
	var followers []model.Follow
	json.NewDecoder(resp.Body).Decode(&followers)
	resp.Body.Close()
	if len(followers) != 1 || followers[0].FollowerID != userID {
		t.Errorf("expected one follower %s, got %+v", userID, followers)
	}
}

func TestRedeemInsufficientPoints(t *testing.T) {
	server, s := setupTestServer(t)
	token, _ := signup(t, server, "maya", "maya@example.com")

	ctx := context.Background()
	owner, _ := s.CreateUser(ctx, "arjun", "arjun@example.com", "hash", model.RoleUser)
	item, _ := s.CreateItem(ctx, model.Item{
		Title: "Coat", Type: model.ItemTypeRedeem, Points: 500, UserID: owner.ID,
	})
	s.UpdateItemStatus(ctx, item.ID, model.ItemStatusApproved)

	req, _ := authRequest("POST", server.URL+"/api/items/"+item.ID+"/redeem", token, nil)
	resp, _ := http.DefaultClient.Do(req)
	if resp.StatusCode != http.StatusPaymentRequired {
		t.Errorf("expected 402 for insufficient points, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestAuthRequired(t *testing.T) {
	server, _ := setupTestServer(t)

	resp, _ := http.Get(server.URL + "/api/items")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}
