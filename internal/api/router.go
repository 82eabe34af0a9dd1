package api

import (
	"net/http"

	"github.com/linkboard/backend/internal/classifier"
	apperrors "github.com/linkboard/backend/internal/errors"
	"github.com/linkboard/backend/internal/db"
	"github.com/linkboard/backend/internal/health"
	"github.com/linkboard/backend/internal/session"
	"github.com/linkboard/backend/internal/web"
	"github.com/linkboard/backend/internal/ws"
)

type Router struct {
	mux        *http.ServeMux
	videos     *db.VideoRepository
	classifier *classifier.Classifier
	sessions   *session.Service
	renderer   *web.Renderer
	hub        *ws.Hub
	checker    *health.Checker
}

func NewRouter(videos *db.VideoRepository, cl *classifier.Classifier, sessions *session.Service, renderer *web.Renderer, hub *ws.Hub, checker *health.Checker) *Router {
	r := &Router{
		mux:        http.NewServeMux(),
		videos:     videos,
		classifier: cl,
		sessions:   sessions,
		renderer:   renderer,
		hub:        hub,
		checker:    checker,
	}
	r.setupRoutes()
	return r
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

func (r *Router) setupRoutes() {
	// Health check
	r.mux.HandleFunc("GET /health", r.checker.Handler)

	// Public submission page
	r.mux.HandleFunc("GET /{$}", r.Index)
	r.mux.HandleFunc("POST /{$}", r.Submit)

	// Admin pages
	r.mux.Handle("GET /admin", r.withPageAuth(r.AdminPanel))
	r.mux.HandleFunc("GET /admin/login", r.AdminLoginPage)
	r.mux.HandleFunc("POST /admin/login", r.AdminLogin)
	r.mux.HandleFunc("GET /admin/logout", r.AdminLogout)

	// Admin data API; every route re-checks the session independently
	r.mux.Handle("GET /api/videos", r.withAPIAuth(r.ListVideos))
	r.mux.Handle("GET /api/videos/{id}", r.withAPIAuth(r.GetVideo))
	r.mux.Handle("POST /api/videos/clear", r.withAPIAuth(r.ClearVideos))
	r.mux.Handle("DELETE /api/videos/{id}/delete", r.withAPIAuth(r.DeleteVideo))

	// Admin live event feed
	wsHandler := ws.NewHandler(r.hub)
	r.mux.Handle("GET /api/events", r.sessions.RequireAPI(http.HandlerFunc(wsHandler.ServeWS)))
}

// withAPIAuth wraps an error-returning handler with the JSON session gate.
func (r *Router) withAPIAuth(h apperrors.Handler) http.Handler {
	return r.sessions.RequireAPI(apperrors.HandleFunc(h))
}

// withPageAuth wraps a page handler with the redirecting session gate.
func (r *Router) withPageAuth(h http.HandlerFunc) http.Handler {
	return r.sessions.RequirePage(h)
}
