package routes

import (
	"net/http"
	"time"

	"bigtreat/auth"
	"bigtreat/bookings"
	"bigtreat/contact"
	"bigtreat/content"
	"bigtreat/db"
	"bigtreat/gallery"
	"bigtreat/middleware"
	"bigtreat/ratelim"
	"bigtreat/services"
	"bigtreat/uploads"
	"bigtreat/utils"

	"github.com/julienschmidt/httprouter"
)

func AddHealthRoutes(router *httprouter.Router) {
	router.GET("/api/health", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"status":                 "OK",
			"message":                "Big Treat Unique Centre Nigeria Ltd API is running",
			"timestamp":              time.Now().Format(time.RFC3339),
			"externalStoreConnected": db.Available(),
		})
	})
}

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, h *auth.Handler) {
	router.POST("/api/auth/register", rl.Limit(h.Register))
	router.POST("/api/auth/login", rl.Limit(h.Login))
	router.POST("/api/auth/logout", rl.Limit(middleware.Authenticate(h.Logout)))
	router.GET("/api/auth/profile", rl.Limit(middleware.Authenticate(h.Profile)))
	router.PUT("/api/auth/profile", rl.Limit(middleware.Authenticate(h.UpdateProfile)))
}

func AddServiceRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, h *services.Handler) {
	router.GET("/api/services", rl.Limit(h.List))
	// httprouter cannot mix a static "category" segment with the :id
	// wildcard, so /api/services/category/:category registers as a
	// two-param route guarded inside the handler.
	router.GET("/api/services/:id/:category", rl.Limit(h.ByCategory))
	router.GET("/api/services/:id", rl.Limit(h.Get))
	router.POST("/api/services", rl.Limit(middleware.Authenticate(middleware.RequireAdmin(h.Create))))
	router.PUT("/api/services/:id", rl.Limit(middleware.Authenticate(middleware.RequireAdmin(h.Update))))
	router.DELETE("/api/services/:id", rl.Limit(middleware.Authenticate(middleware.RequireAdmin(h.Delete))))
}

func AddBookingRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, h *bookings.Handler) {
	router.POST("/api/bookings", rl.Limit(h.Submit))
	router.GET("/api/bookings", rl.Limit(middleware.Authenticate(middleware.RequireAdmin(h.List))))
	// /api/bookings/customer/:email shares the :id position, see the
	// services routes for why it registers as two params.
	router.GET("/api/bookings/:id/:email", rl.Limit(h.ByCustomer))
	router.GET("/api/bookings/:id", rl.Limit(h.Get))
	router.PUT("/api/bookings/:id", rl.Limit(middleware.Authenticate(middleware.RequireAdmin(h.Update))))
	router.DELETE("/api/bookings/:id", rl.Limit(middleware.Authenticate(middleware.RequireAdmin(h.Delete))))
}

func AddGalleryRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, h *gallery.Handler) {
	router.GET("/api/gallery", rl.Limit(h.List))
	router.GET("/api/gallery/:id/:category", rl.Limit(h.ByCategory))
	router.GET("/api/gallery/:id", rl.Limit(h.Get))
	router.POST("/api/gallery", rl.Limit(middleware.Authenticate(middleware.RequireAdmin(h.Create))))
	router.PUT("/api/gallery/:id", rl.Limit(middleware.Authenticate(middleware.RequireAdmin(h.Update))))
	router.DELETE("/api/gallery/:id", rl.Limit(middleware.Authenticate(middleware.RequireAdmin(h.Delete))))
}

func AddContactRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, h *contact.Handler) {
	router.POST("/api/contact", rl.Limit(h.Submit))
	router.GET("/api/contact", rl.Limit(middleware.Authenticate(middleware.RequireAdmin(h.List))))
	router.GET("/api/contact/:id", rl.Limit(middleware.Authenticate(middleware.RequireAdmin(h.Get))))
	router.PUT("/api/contact/:id", rl.Limit(middleware.Authenticate(middleware.RequireAdmin(h.Update))))
	router.DELETE("/api/contact/:id", rl.Limit(middleware.Authenticate(middleware.RequireAdmin(h.Delete))))
}

func AddContentRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, h *content.Handler) {
	router.GET("/api/content/:section", rl.Limit(h.Get))
	router.PUT("/api/content/:section", rl.Limit(middleware.Authenticate(middleware.RequireAdmin(h.Update))))
}

func AddUploadRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, h *uploads.Handler) {
	router.POST("/api/upload", rl.Limit(middleware.Authenticate(middleware.RequireAdmin(h.Upload))))
}

func AddStaticRoutes(router *httprouter.Router, uploadDir string) {
	router.ServeFiles("/static/uploads/*filepath", http.Dir(uploadDir))
}

// NotFound is the uniform envelope for unknown routes.
func NotFound() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.RespondWithError(w, http.StatusNotFound, "Route not found")
	})
}
