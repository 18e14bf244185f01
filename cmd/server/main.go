package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"

	"github.com/foodgram/storefront/internal/config"
	"github.com/foodgram/storefront/internal/foodapi"
	"github.com/foodgram/storefront/internal/handlers"
	"github.com/foodgram/storefront/internal/models"
)

func main() {
	// Configure slog to output DEBUG level messages
	// This should be done as early as possible in main
	handlerOpts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	// Using TextHandler for console readability; for production JSONHandler might be preferred.
	logger := slog.New(slog.NewTextHandler(os.Stdout, handlerOpts))
	slog.SetDefault(logger)

	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Backend service clients
	api := foodapi.NewClient(cfg.Services, cfg.RequestTimeout)

	// 3. Session Setup
	cookieStore := sessions.NewCookieStore(cfg.SessionKey)
	cookieStore.Options.HttpOnly = true
	cookieStore.Options.Secure = cfg.CookieSecure // Configurable for production
	cookieStore.Options.SameSite = http.SameSiteLaxMode
	cookieStore.Options.Path = "/"
	if cfg.CookieDomain != "" {
		cookieStore.Options.Domain = cfg.CookieDomain
	}
	sessionManager := handlers.NewSessionManager(cookieStore)

	// 4. Init Templates
	templates := handlers.NewTemplateCache()
	if err := templates.Load("templates"); err != nil {
		slog.Error("Failed to load templates", "error", err)
		os.Exit(1)
	}

	// 5. Setup Handlers
	homeHandler := &handlers.HomeHandler{
		API:       api,
		Templates: templates,
		Sessions:  sessionManager,
	}
	authHandler := &handlers.AuthHandler{
		API:       api,
		Templates: templates,
		Sessions:  sessionManager,
	}
	checkoutHandler := &handlers.CheckoutHandler{
		API:       api,
		Templates: templates,
		Sessions:  sessionManager,
	}
	orderHandler := &handlers.OrderHandler{
		API:       api,
		Templates: templates,
		Sessions:  sessionManager,
		Now:       time.Now,
	}
	ownerHandler := &handlers.OwnerHandler{
		API:       api,
		Templates: templates,
		Sessions:  sessionManager,
	}

	mux := http.NewServeMux()

	// Static Files
	fileServer := http.FileServer(http.Dir("./static"))
	mux.Handle("/static/", http.StripPrefix("/static", fileServer))

	// Rate Limiter for auth and contact submissions
	rateLimiter := handlers.NewRateLimiter(10 * time.Second)

	// Public Routes
	mux.HandleFunc("/", homeHandler.Index) // also the unmatched-path catch-all
	mux.HandleFunc("GET /menu/{restaurantID}", homeHandler.ViewMenu)
	mux.HandleFunc("GET /contact", homeHandler.ContactGet)
	mux.HandleFunc("POST /contact", rateLimiter.Middleware(homeHandler.ContactPost))

	mux.HandleFunc("GET /login", authHandler.LoginGet)
	mux.HandleFunc("POST /login", rateLimiter.Middleware(authHandler.LoginPost))
	mux.HandleFunc("GET /register", authHandler.RegisterGet)
	mux.HandleFunc("POST /register", rateLimiter.Middleware(authHandler.RegisterPost))
	mux.HandleFunc("GET /logout", authHandler.Logout)

	// User Routes (checkout and order lifecycle)
	requireUser := func(next http.HandlerFunc) http.HandlerFunc {
		return sessionManager.RequireRole(models.RoleUser, next)
	}
	mux.HandleFunc("GET /dashboard/user", requireUser(orderHandler.UserDashboard))
	mux.HandleFunc("GET /cart", requireUser(checkoutHandler.CartLanding))
	mux.HandleFunc("GET /checkout/{restaurantID}", requireUser(checkoutHandler.Checkout))
	mux.HandleFunc("POST /checkout/{restaurantID}/cart", requireUser(checkoutHandler.AddToCart))
	mux.HandleFunc("POST /checkout/{restaurantID}/cart/remove", requireUser(checkoutHandler.RemoveFromCart))
	mux.HandleFunc("POST /checkout/{restaurantID}/address", requireUser(checkoutHandler.AddAddress))
	mux.HandleFunc("POST /checkout/{restaurantID}/order", requireUser(checkoutHandler.PlaceOrder))
	mux.HandleFunc("GET /orders", requireUser(orderHandler.MyOrders))
	mux.HandleFunc("POST /orders/cancel", requireUser(orderHandler.Cancel))

	// Owner Routes (catalog management and order confirmation)
	requireOwner := func(next http.HandlerFunc) http.HandlerFunc {
		return sessionManager.RequireRole(models.RoleOwner, next)
	}
	mux.HandleFunc("GET /dashboard/owner", requireOwner(ownerHandler.Dashboard))
	mux.HandleFunc("GET /owner/restaurants", requireOwner(ownerHandler.ListRestaurants))
	mux.HandleFunc("GET /owner/restaurants/new", requireOwner(ownerHandler.NewRestaurantForm))
	mux.HandleFunc("POST /owner/restaurants", requireOwner(ownerHandler.CreateRestaurant))
	mux.HandleFunc("GET /owner/categories", requireOwner(ownerHandler.ListCategories))
	mux.HandleFunc("POST /owner/categories", requireOwner(ownerHandler.CreateCategory))
	mux.HandleFunc("POST /owner/categories/update", requireOwner(ownerHandler.UpdateCategory))
	mux.HandleFunc("GET /owner/fooditems", requireOwner(ownerHandler.ListFoodItems))
	mux.HandleFunc("GET /owner/fooditems/new", requireOwner(ownerHandler.NewFoodItemForm))
	mux.HandleFunc("POST /owner/fooditems", requireOwner(ownerHandler.CreateFoodItem))
	mux.HandleFunc("POST /owner/fooditems/update", requireOwner(ownerHandler.UpdateFoodItem))
	mux.HandleFunc("GET /owner/orders", requireOwner(ownerHandler.ListOrders))
	mux.HandleFunc("POST /owner/orders/confirm", requireOwner(ownerHandler.ConfirmOrder))

	// 6. Middleware Setup
	CSRF := csrf.Protect(
		cfg.CSRFKey,
		csrf.Secure(cfg.CookieSecure), // Configurable for production
		csrf.TrustedOrigins([]string{"localhost:" + cfg.Port, "127.0.0.1:" + cfg.Port, "localhost", "127.0.0.1"}),
	)

	// Wrap the router with middleware chain
	// Chain: Logger -> Security Headers -> CSRF -> Mux
	handler := handlers.LoggingMiddleware(
		handlers.SecurityHeadersMiddleware(
			CSRF(mux),
		),
	)

	// 7. Start Server with Graceful Shutdown
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	// Create a channel to listen for OS signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	// Goroutine to start the server
	go func() {
		slog.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to listen and serve", "error", err)
			os.Exit(1)
		}
	}()

	// Block until a signal is received
	<-stop

	slog.Info("Shutting down server gracefully...")

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited gracefully.")
}
