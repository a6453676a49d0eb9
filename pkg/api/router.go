package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Routes struct {
	Chat    http.HandlerFunc
	Calorie http.HandlerFunc
	Image   http.HandlerFunc
	Diary   http.HandlerFunc
	Summary http.HandlerFunc
	Health  http.HandlerFunc
	Metrics http.Handler
}

// NewRouter binds the routes the companion web app calls. Paths keep the
// casing those clients already use.
func NewRouter(routes Routes, observer HTTPObserver) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.AllowAll().Handler)
	r.Use(RequestID)
	r.Use(middleware.Recoverer)
	r.Use(LogRequests(observer))

	r.Post("/ChatAI", routes.Chat)
	r.Post("/calculate-calo", routes.Calorie)
	r.Post("/CreateIm", routes.Image)
	r.Get("/diary", routes.Diary)
	r.Post("/summaryAPI", routes.Summary)
	r.Get("/health", routes.Health)

	if routes.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", routes.Metrics)
	}

	return r
}
