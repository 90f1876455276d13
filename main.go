package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cookly/auth"
	"cookly/config"
	"cookly/db"
	"cookly/globals"
	"cookly/middleware"
	"cookly/pantry"
	"cookly/pricing"
	"cookly/ratelim"
	"cookly/ratings"
	"cookly/rdx"
	"cookly/recipes"
	"cookly/routes"
	"cookly/search"
	"cookly/streaks"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// XSS, content sniffing, framing
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		// HSTS (must be on HTTPS)
		w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s from %s – %v", r.Method, r.RequestURI, r.RemoteAddr, time.Since(start))
	})
}

// Index is a simple health check handler.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

// buildHandlers wires stores and services onto the live Mongo and Redis connections.
func buildHandlers(cfg config.Config) routes.Handlers {
	catalog := recipes.Default()

	revoker := rdx.NewTokenRevoker(rdx.Conn)
	middleware.IsRevoked = revoker.IsRevoked

	pantryStore := pantry.NewMongoStore(db.UserCollection)

	return routes.Handlers{
		Recipes: recipes.NewHandler(catalog),
		Search: search.NewHandler(catalog.All(),
			search.WithDebounce(cfg.SearchDebounce),
			search.WithLatency(cfg.SearchLatency),
		),
		Pantry: pantry.NewHandler(pantryStore),
		Pricing: pricing.NewHandler(
			pricing.Default(),
			catalog,
			pantryStore,
			rdx.NewCache(rdx.Conn, "pricing:"),
			cfg.PricingCacheTTL,
		),
		Ratings: ratings.NewHandler(ratings.NewService(ratings.NewMongoStore(db.RatingsCollection)), catalog),
		Streaks: streaks.NewHandler(
			streaks.NewService(streaks.NewMongoStore(db.CookEventsCollection, db.StreaksCollection)),
			catalog,
		),
		Auth: auth.NewHandler(auth.NewService(auth.NewMongoUserStore(db.UserCollection), revoker)),
	}
}

func setupRouter(h routes.Handlers, rateLimiter *ratelim.RateLimiter) *httprouter.Router {
	router := httprouter.New()
	router.GET("/health", Index)
	routes.RoutesWrapper(router, h, rateLimiter)
	return router
}

func main() {
	cfg := config.Load()
	globals.JwtSecret = cfg.JWTSecret

	if err := db.Connect(globals.Ctx, cfg.MongoURI, cfg.MongoDB); err != nil {
		log.Fatalf("❌ MongoDB: %v", err)
	}
	rdx.Init(globals.Ctx, cfg.RedisURL, cfg.RedisPassword)

	rateLimiter := ratelim.NewRateLimiter(30, 5, 10*time.Minute)
	router := setupRouter(buildHandlers(cfg), rateLimiter)

	// apply middleware: CORS → security headers → logging → router
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	handler := loggingMiddleware(securityHeaders(corsHandler))

	server := &http.Server{
		Addr:              cfg.Port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server listening on %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("🛑 Shutdown signal received; shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("❌ Graceful shutdown failed: %v", err)
	}

	rdx.Close()
	db.Disconnect(ctx)

	log.Println("✅ Server stopped cleanly")
}
