// Package router sets up all HTTP routes and middleware chains for the
// Polywise server. API routes, the server-rendered share page, and the
// static site are organized into separate groups.
package router

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"

	"polywise/internal/handlers"
	"polywise/internal/middleware"
)

// Deps carries everything the route table needs.
type Deps struct {
	Articles  *handlers.Articles
	Topics    *handlers.Topics
	Uploads   *handlers.Uploads
	Translate *handlers.Translate
	Share     *handlers.Share

	AdminToken string // shared secret for /admin.html
	SiteDir    string // static frontend files
	UploadsDir string // stored upload files
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(d Deps) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.CORS)
	r.Use(middleware.SecureHeaders)

	// Health check.
	r.Get("/health", healthHandler)

	// The translation proxy and uploads hit slow or metered backends,
	// so they get their own limiter.
	limiter := middleware.NewRateLimiter(30, time.Minute)

	r.Route("/api", func(r chi.Router) {
		r.Route("/articles", func(r chi.Router) {
			r.Get("/", d.Articles.List)
			r.Post("/", d.Articles.Create)
			r.Get("/{id}", d.Articles.Get)
			r.Put("/{id}", d.Articles.Update)
			r.Delete("/{id}", d.Articles.Delete)
		})

		r.Route("/topics", func(r chi.Router) {
			r.Get("/", d.Topics.List)
			r.Post("/", d.Topics.Create)
			r.Put("/order", d.Topics.Reorder)
			r.Delete("/{topicId}", d.Topics.Delete)
		})

		r.Group(func(r chi.Router) {
			r.Use(limiter.Middleware)
			r.Post("/uploads", d.Uploads.Create)
			r.Post("/translate", d.Translate.Create)
		})
	})

	// Share page — server-rendered meta tags for crawlers.
	r.Get("/article.html", d.Share.Page)

	// Admin page — gated behind the shared token.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin(d.AdminToken))
		r.Get("/admin.html", func(w http.ResponseWriter, req *http.Request) {
			http.ServeFile(w, req, filepath.Join(d.SiteDir, "admin.html"))
		})
	})

	// Uploaded files, then the static site as the catch-all.
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(d.UploadsDir))))
	r.Handle("/*", http.FileServer(http.Dir(d.SiteDir)))

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
