package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Shah049/WALKIN-ECOMERCE/internal/auth"
	"github.com/Shah049/WALKIN-ECOMERCE/internal/catalog"
	"github.com/Shah049/WALKIN-ECOMERCE/internal/checkout"
	"github.com/Shah049/WALKIN-ECOMERCE/internal/config"
	"github.com/Shah049/WALKIN-ECOMERCE/internal/handlers"
	"github.com/Shah049/WALKIN-ECOMERCE/internal/store"
	"github.com/Shah049/WALKIN-ECOMERCE/internal/stylist"
	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"
)

func main() {
	handlerOpts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	// TextHandler for console readability; JSONHandler might suit production.
	logger := slog.New(slog.NewTextHandler(os.Stdout, handlerOpts))
	slog.SetDefault(logger)

	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Open the store (seeds the catalog on first run)
	db, err := store.NewStore(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize store", "error", err)
		os.Exit(1)
	}

	// 3. Core services: product directory and identity/session. The session
	// manager restores any durable session from the previous run.
	directory := catalog.NewDirectory(db)
	sessionMgr := auth.NewManager(db, cfg.AdminEmail)

	// 4. Cookie session setup (cart + flash messages)
	sessionStore := sessions.NewCookieStore(cfg.SessionKey)
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.Secure = cfg.CookieSecure
	sessionStore.Options.SameSite = http.SameSiteLaxMode
	sessionStore.Options.Path = "/"
	if cfg.CookieDomain != "" {
		sessionStore.Options.Domain = cfg.CookieDomain
	}

	// 5. Init Templates
	templates := handlers.NewTemplateCache()
	if err := templates.Load("templates"); err != nil {
		slog.Error("Failed to load templates", "error", err)
		os.Exit(1)
	}

	// 6. Setup Handlers
	shopHandler := &handlers.ShopHandler{
		Catalog:      directory,
		Auth:         sessionMgr,
		Templates:    templates,
		SessionStore: sessionStore,
	}
	cartHandler := &handlers.CartHandler{
		Catalog:      directory,
		Auth:         sessionMgr,
		Templates:    templates,
		SessionStore: sessionStore,
	}
	checkoutHandler := &handlers.CheckoutHandler{
		Auth:         sessionMgr,
		Sync:         checkout.NewSyncClient(cfg.OrderSyncURL),
		Templates:    templates,
		SessionStore: sessionStore,
	}
	authHandler := &handlers.AuthHandler{
		Auth:         sessionMgr,
		Templates:    templates,
		SessionStore: sessionStore,
	}
	profileHandler := &handlers.ProfileHandler{
		Auth:         sessionMgr,
		Catalog:      directory,
		Templates:    templates,
		SessionStore: sessionStore,
	}
	adminHandler := &handlers.AdminHandler{
		Catalog:      directory,
		Auth:         sessionMgr,
		Store:        db,
		Templates:    templates,
		SessionStore: sessionStore,
	}
	stylistHandler := &handlers.StylistHandler{
		Catalog: directory,
		Stylist: stylist.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel),
	}

	mux := http.NewServeMux()

	// Static Files
	fileServer := http.FileServer(http.Dir("./static"))
	mux.Handle("/static/", http.StripPrefix("/static", fileServer))

	// Rate Limiter for abuse-prone POSTs
	rateLimiter := handlers.NewRateLimiter(5 * time.Second)

	// Storefront
	mux.HandleFunc("/", shopHandler.Home)
	mux.HandleFunc("/shop", shopHandler.Shop)
	mux.HandleFunc("/product/{id}", shopHandler.Detail)
	mux.HandleFunc("POST /product/{id}/review", rateLimiter.Middleware(shopHandler.SubmitReview))
	mux.HandleFunc("/contact", shopHandler.Contact)
	mux.HandleFunc("POST /contact", rateLimiter.Middleware(shopHandler.Contact))
	mux.HandleFunc("/help", shopHandler.Help)

	// Cart & Checkout
	mux.HandleFunc("/cart", cartHandler.View)
	mux.HandleFunc("POST /cart/add", cartHandler.Add)
	mux.HandleFunc("POST /cart/remove", cartHandler.Remove)
	mux.HandleFunc("POST /cart/update", cartHandler.Update)
	mux.HandleFunc("/checkout", checkoutHandler.Form)
	mux.HandleFunc("POST /checkout", rateLimiter.Middleware(checkoutHandler.Submit))

	// Identity
	mux.HandleFunc("/login", authHandler.LoginGet)
	mux.HandleFunc("POST /login", rateLimiter.Middleware(authHandler.LoginPost))
	mux.HandleFunc("/logout", authHandler.Logout)
	mux.HandleFunc("/profile", profileHandler.View)
	mux.HandleFunc("POST /wishlist/toggle", profileHandler.ToggleWishlist)

	// Admin console
	mux.HandleFunc("/admin", adminHandler.AuthMiddleware(adminHandler.Dashboard))
	mux.HandleFunc("/admin/products", adminHandler.AuthMiddleware(adminHandler.ListProducts))
	mux.HandleFunc("/admin/products/new", adminHandler.AuthMiddleware(adminHandler.NewProductForm))
	mux.HandleFunc("POST /admin/products", adminHandler.AuthMiddleware(adminHandler.CreateProduct))
	mux.HandleFunc("/admin/products/edit", adminHandler.AuthMiddleware(adminHandler.EditProductForm))
	mux.HandleFunc("POST /admin/products/update", adminHandler.AuthMiddleware(adminHandler.UpdateProduct))
	mux.HandleFunc("POST /admin/products/delete", adminHandler.AuthMiddleware(adminHandler.DeleteProduct))

	// 7. Middleware Setup
	CSRF := csrf.Protect(
		cfg.CSRFKey,
		csrf.Secure(cfg.CookieSecure),
		csrf.TrustedOrigins([]string{"localhost:" + cfg.Port, "127.0.0.1:" + cfg.Port, "localhost", "127.0.0.1"}),
	)

	// The stylist endpoint takes JSON from the chat widget, not a form, so
	// it sits outside the CSRF wrapper.
	root := http.NewServeMux()
	root.HandleFunc("POST /stylist", rateLimiter.Middleware(stylistHandler.Chat))
	root.Handle("/", CSRF(mux))

	// Chain: Logger -> Security Headers -> CSRF -> Mux
	handler := handlers.LoggingMiddleware(
		handlers.SecurityHeadersMiddleware(
			root,
		),
	)

	// 8. Start Server with Graceful Shutdown
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to listen and serve", "error", err)
			os.Exit(1)
		}
	}()

	<-stop

	slog.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited gracefully.")
}
