// Package api exposes the analyzer over HTTP. The detection core stays
// behind these handlers; the API's job is marshalling, auth and
// persistence around it.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/nordlex/legal-analyzer/internal/auth"
	"github.com/nordlex/legal-analyzer/internal/contradiction"
	"github.com/nordlex/legal-analyzer/internal/statement"
	"github.com/nordlex/legal-analyzer/internal/storage"
)

// Server is the HTTP surface of the analyzer.
type Server struct {
	router *chi.Mux
	logger *slog.Logger

	authService auth.Service
	extractor   *statement.Extractor
	engine      *contradiction.Engine
	detection   *contradiction.Service

	documents  storage.DocumentRepository
	statements storage.StatementRepository
	findings   storage.FindingRepository
}

// ServerConfig wires the server's collaborators.
type ServerConfig struct {
	Logger      *slog.Logger
	AuthService auth.Service
	Extractor   *statement.Extractor
	Engine      *contradiction.Engine
	Detection   *contradiction.Service
	Documents   storage.DocumentRepository
	Statements  storage.StatementRepository
	Findings    storage.FindingRepository
}

// NewServer builds the router and handlers.
func NewServer(cfg ServerConfig) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		router:      chi.NewRouter(),
		logger:      logger,
		authService: cfg.AuthService,
		extractor:   cfg.Extractor,
		engine:      cfg.Engine,
		detection:   cfg.Detection,
		documents:   cfg.Documents,
		statements:  cfg.Statements,
		findings:    cfg.Findings,
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "https://*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/token", s.handleToken)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(s.authService))

			r.Post("/analyze", s.handleAnalyzePair)

			r.Route("/documents", func(r chi.Router) {
				r.Post("/", s.handleCreateDocument)
				r.Post("/compare", s.handleCompareDocuments)
				r.Get("/{documentID}/statements", s.handleGetStatements)
				r.Get("/{documentID}/contradictions", s.handleGetContradictions)
			})
		})
	})
}

// Run starts the HTTP listener.
func (s *Server) Run(addr string) error {
	s.logger.Info("starting legal analyzer server", slog.String("addr", addr))
	return http.ListenAndServe(addr, s.router)
}

// Handler returns the underlying handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
