package api

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/sukrititalwar/rewear/internal/model"
	"github.com/sukrititalwar/rewear/internal/points"
	"github.com/sukrititalwar/rewear/internal/search"
	"github.com/sukrititalwar/rewear/internal/similarity"
	"github.com/sukrititalwar/rewear/internal/store"
	"github.com/sukrititalwar/rewear/internal/suggest"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(s *store.Store, jwtSecret string, log *zap.SugaredLogger) http.Handler {
	mux := http.NewServeMux()

	ledger := points.NewLedger(s)
	scorer := similarity.NewScorer(nil)

	authHandler := &AuthHandler{Store: s, Ledger: ledger, Log: log, JWTSecret: jwtSecret}
	usersHandler := &UsersHandler{Store: s, Ledger: ledger, Log: log}
	itemsHandler := &ItemsHandler{Store: s, Ledger: ledger, Scorer: scorer, Log: log}
	discoveryHandler := &DiscoveryHandler{Search: search.New(s), Suggest: suggest.New(s, nil), Log: log}
	socialHandler := &SocialHandler{Store: s, Log: log}
	notificationsHandler := &NotificationsHandler{Store: s, Log: log}
	reviewsHandler := &ReviewsHandler{Store: s, Ledger: ledger, Log: log}
	chatHandler := &ChatHandler{Store: s, Log: log}
	swapsHandler := &SwapsHandler{Store: s, Ledger: ledger, Log: log}
	imagesHandler := &ImagesHandler{Store: s, Log: log}
	prefsHandler := &PrefsHandler{Store: s, Log: log}

	authMW := AuthMiddleware(jwtSecret, s, log)
	requireAdmin := RequireRole(model.RoleAdmin, log)

	// Public: account creation, login and stored photos.
	mux.HandleFunc("POST /api/auth/signup", authHandler.Signup)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("GET /api/images/{id}", imagesHandler.Get)

	// Session.
	mux.Handle("POST /api/auth/logout", authMW(http.HandlerFunc(authHandler.Logout)))

	// Listings.
	mux.Handle("GET /api/items", authMW(http.HandlerFunc(itemsHandler.List)))
	mux.Handle("POST /api/items", authMW(http.HandlerFunc(itemsHandler.Create)))
	mux.Handle("GET /api/items/{id}", authMW(http.HandlerFunc(itemsHandler.Get)))
	mux.Handle("PUT /api/items/{id}", authMW(http.HandlerFunc(itemsHandler.Update)))
	mux.Handle("DELETE /api/items/{id}", authMW(http.HandlerFunc(itemsHandler.Delete)))
	mux.Handle("PUT /api/items/{id}/status", authMW(requireAdmin(http.HandlerFunc(itemsHandler.UpdateStatus))))
	mux.Handle("GET /api/items/{id}/similar", authMW(http.HandlerFunc(itemsHandler.Similar)))
	mux.Handle("POST /api/items/{id}/redeem", authMW(http.HandlerFunc(itemsHandler.Redeem)))
	mux.Handle("GET /api/items/{id}/reviews", authMW(http.HandlerFunc(reviewsHandler.ForItem)))

	// Discovery.
	mux.Handle("GET /api/search", authMW(http.HandlerFunc(discoveryHandler.SearchItems)))
	mux.Handle("GET /api/suggestions", authMW(http.HandlerFunc(discoveryHandler.Suggestions)))
	mux.Handle("GET /api/trending", authMW(http.HandlerFunc(discoveryHandler.Trending)))
	mux.Handle("GET /api/categories/popular", authMW(http.HandlerFunc(discoveryHandler.PopularCategories)))

	// Profiles and social graph.
	mux.Handle("GET /api/users/{id}", authMW(http.HandlerFunc(usersHandler.Get)))
	mux.Handle("PUT /api/users/{id}", authMW(http.HandlerFunc(usersHandler.Update)))
	mux.Handle("GET /api/users/{id}/items", authMW(http.HandlerFunc(usersHandler.Items)))
	mux.Handle("GET /api/users/{id}/reviews", authMW(http.HandlerFunc(usersHandler.Reviews)))
	mux.Handle("POST /api/users/{id}/follow", authMW(http.HandlerFunc(socialHandler.Follow)))
	mux.Handle("DELETE /api/users/{id}/follow", authMW(http.HandlerFunc(socialHandler.Unfollow)))
	mux.Handle("GET /api/users/{id}/followers", authMW(http.HandlerFunc(socialHandler.Followers)))
	mux.Handle("GET /api/users/{id}/following", authMW(http.HandlerFunc(socialHandler.Following)))

	// Wishlist.
	mux.Handle("GET /api/wishlist", authMW(http.HandlerFunc(socialHandler.Wishlist)))
	mux.Handle("POST /api/wishlist/{itemID}", authMW(http.HandlerFunc(socialHandler.AddToWishlist)))
	mux.Handle("DELETE /api/wishlist/{itemID}", authMW(http.HandlerFunc(socialHandler.RemoveFromWishlist)))

	// Reviews.
	mux.Handle("POST /api/reviews", authMW(http.HandlerFunc(reviewsHandler.Create)))

	// Swap requests.
	mux.Handle("POST /api/swaps", authMW(http.HandlerFunc(swapsHandler.Create)))
	mux.Handle("GET /api/swaps", authMW(http.HandlerFunc(swapsHandler.List)))
	mux.Handle("PUT /api/swaps/{id}/status", authMW(http.HandlerFunc(swapsHandler.UpdateStatus)))

	// Chat.
	mux.Handle("GET /api/chats/{userID}", authMW(http.HandlerFunc(chatHandler.Conversation)))
	mux.Handle("POST /api/chats/{userID}", authMW(http.HandlerFunc(chatHandler.Send)))

	// Notifications.
	mux.Handle("GET /api/notifications", authMW(http.HandlerFunc(notificationsHandler.List)))
	mux.Handle("PUT /api/notifications/read", authMW(http.HandlerFunc(notificationsHandler.MarkAllRead)))
	mux.Handle("PUT /api/notifications/{id}/read", authMW(http.HandlerFunc(notificationsHandler.MarkRead)))

	// Photo uploads.
	mux.Handle("POST /api/images", authMW(http.HandlerFunc(imagesHandler.Upload)))

	// Accessibility preferences.
	mux.Handle("GET /api/prefs", authMW(http.HandlerFunc(prefsHandler.Get)))
	mux.Handle("PUT /api/prefs", authMW(http.HandlerFunc(prefsHandler.Set)))

	return LoggingMiddleware(log)(mux)
}
