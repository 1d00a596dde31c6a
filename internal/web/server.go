// Package web exposes the application over HTTP for the single-user
// browser shell: roster management, match fee splits, sharing and the
// export history, plus Prometheus metrics and static assets.
package web

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/united77/cricfees/internal/config"
	"github.com/united77/cricfees/internal/service"
)

// Server routes HTTP requests to the services.
type Server struct {
	cfg     *config.Config
	roster  *service.RosterService
	matches *service.MatchService
	exports *service.ExportService
}

// NewServer creates a Server over the given services.
func NewServer(cfg *config.Config, roster *service.RosterService, matches *service.MatchService, exports *service.ExportService) *Server {
	return &Server{cfg: cfg, roster: roster, matches: matches, exports: exports}
}

// Handler builds the full HTTP handler: API routes, metrics endpoint,
// static file fallback, CORS and request logging.
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()

	api := router.PathPrefix("/api").Subrouter()
	api.Use(metricsMiddleware)
	api.HandleFunc("/health", s.handleHealth).Methods("GET")

	api.HandleFunc("/players", s.handleListPlayers).Methods("GET")
	api.HandleFunc("/players", s.handleAddPlayer).Methods("POST")
	api.HandleFunc("/players/import", s.handleImportContacts).Methods("POST")
	api.HandleFunc("/players/{id}", s.handleUpdatePlayer).Methods("PATCH")
	api.HandleFunc("/players/{id}", s.handleDeletePlayer).Methods("DELETE")

	api.HandleFunc("/matches", s.handleListMatches).Methods("GET")
	api.HandleFunc("/matches", s.handleCreateMatch).Methods("POST")
	api.HandleFunc("/matches/{id}", s.handleGetMatch).Methods("GET")
	api.HandleFunc("/matches/{id}/payments/{playerId}", s.handleSetPaymentPaid).Methods("POST")
	api.HandleFunc("/matches/{id}/summary", s.handleSummary).Methods("GET")
	api.HandleFunc("/matches/{id}/export", s.handleExport).Methods("POST")

	api.HandleFunc("/exports", s.handleListExports).Methods("GET")

	router.Handle("/metrics", promhttp.Handler())
	router.PathPrefix("/").HandlerFunc(s.handleStatic)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	})

	return loggingMiddleware(c.Handler(router))
}

// HTTPServer wraps the handler in an *http.Server with sane timeouts.
func (s *Server) HTTPServer(handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         ":" + s.cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// handleStatic serves the frontend assets with an index.html fallback for
// unknown paths, so the single-page shell handles its own navigation.
func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	staticDir, err := filepath.Abs(s.cfg.StaticPath)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	urlPath := r.URL.Path
	if urlPath == "/" {
		urlPath = "/index.html"
	}
	filePath := filepath.Join(staticDir, filepath.Clean(urlPath))

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
		return
	}
	http.ServeFile(w, r, filePath)
}
