package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bigtreat/auth"
	"bigtreat/bookings"
	"bigtreat/config"
	"bigtreat/contact"
	"bigtreat/content"
	"bigtreat/db"
	"bigtreat/gallery"
	"bigtreat/globals"
	"bigtreat/middleware"
	"bigtreat/ratelim"
	"bigtreat/rdx"
	"bigtreat/routes"
	"bigtreat/services"
	"bigtreat/uploads"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
		next.ServeHTTP(w, r)
	})
}

// requestLogger logs each request method, path, remote address, and duration.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.RequestURI).
			Str("remote", r.RemoteAddr).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

func initLogger(cfg *config.Config) {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	log.Logger = log.Output(output)

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}

func setupRouter(cfg *config.Config, rateLimiter *ratelim.RateLimiter) *httprouter.Router {
	bookingHandler := bookings.NewHandler(bookings.NewRepo(db.BookingsCollection))
	contactHandler := contact.NewHandler(contact.NewRepo(db.ContactsCollection))
	serviceHandler := services.NewHandler(services.NewRepo(db.ServicesCollection))
	galleryHandler := gallery.NewHandler(gallery.NewRepo(db.GalleryCollection))
	contentHandler := content.NewHandler(content.NewRepo(db.ContentCollection))
	authHandler := auth.NewHandler(auth.NewRepo(db.UserCollection, cfg))
	uploadHandler := uploads.NewHandler(cfg.UploadDir, cfg.BaseURL)

	router := httprouter.New()
	router.NotFound = routes.NotFound()

	routes.AddHealthRoutes(router)
	routes.AddAuthRoutes(router, rateLimiter, authHandler)
	routes.AddServiceRoutes(router, rateLimiter, serviceHandler)
	routes.AddBookingRoutes(router, rateLimiter, bookingHandler)
	routes.AddGalleryRoutes(router, rateLimiter, galleryHandler)
	routes.AddContactRoutes(router, rateLimiter, contactHandler)
	routes.AddContentRoutes(router, rateLimiter, contentHandler)
	routes.AddUploadRoutes(router, rateLimiter, uploadHandler)
	routes.AddStaticRoutes(router, cfg.UploadDir)

	return router
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	initLogger(cfg)

	globals.JwtSecret = []byte(cfg.JWTSecret)
	if cfg.IsProduction() && cfg.JWTSecret == "change_me_in_production" {
		log.Fatal().Msg("JWT_SECRET must be set in production")
	}

	db.Connect(cfg)
	rdx.Init(cfg)

	rateLimiter := ratelim.NewRateLimiter(cfg.RateLimitMax, time.Duration(cfg.RateLimitWindowSeconds)*time.Second)
	router := setupRouter(cfg, rateLimiter)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.ClientURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	handler := requestLogger(securityHeaders(middleware.Recover(!cfg.IsProduction(), corsHandler)))

	port := cfg.Port
	if port == "" {
		port = ":5000"
	} else if port[0] != ':' {
		port = ":" + port
	}

	server := &http.Server{
		Addr:              port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		log.Info().Str("addr", port).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen failed")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutdown signal received, shutting down gracefully")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("graceful shutdown failed")
	}
	db.Disconnect(ctx)

	log.Info().Msg("server stopped cleanly")
}
