// Package httpapi is the REST surface over the query engine.
package httpapi

import (
	"log/slog"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/jobfeedhq/jobfeed/internal/query"
)

// Deps is everything the HTTP surface needs, injected by the composition
// root so handlers stay testable.
type Deps struct {
	Engine  *query.Engine
	Logger  *slog.Logger
	Version string

	// Limiter is shared across all routes; nil disables rate limiting.
	Limiter *rate.Limiter
}

// NewMux wires the routes. Exact patterns ("/jobs/search") win over the
// "/jobs/" prefix, so the id route never shadows search.
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	jh := JobsHandler{Engine: d.Engine}
	mux.HandleFunc("/jobs", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.List,
	}))
	mux.HandleFunc("/jobs/search", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.Search,
	}))
	mux.HandleFunc("/jobs/", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.GetByPath, // expects /jobs/{id}
	}))

	mh := MetaHandler{Engine: d.Engine}
	mux.HandleFunc("/companies", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: mh.Companies,
	}))
	mux.HandleFunc("/technologies", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: mh.Technologies,
	}))

	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: func(w http.ResponseWriter, r *http.Request) {
			WriteJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
		},
	}))
	mux.HandleFunc("/", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/" {
				WriteError(w, r, http.StatusNotFound, "not_found", "no such route")
				return
			}
			WriteJSON(w, http.StatusOK, map[string]string{
				"message": "Job Posting MCP Server API",
				"status":  "running",
				"version": d.Version,
			})
		},
	}))

	return mux
}

// Handler returns the mux wrapped in the standard middleware chain.
func Handler(d Deps) http.Handler {
	return Chain(NewMux(d),
		RequestID,
		Recover(d.Logger),
		AccessLog(d.Logger),
		RateLimit(d.Limiter),
	)
}
