// Package server provides the HTTP REST API for the resume analyzer.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/grammar"
	"github.com/jonathan/resume-analyzer/internal/ingest"
	"github.com/jonathan/resume-analyzer/internal/quality"
	"github.com/jonathan/resume-analyzer/internal/readability"
	"github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/store"
)

// maxBodyBytes caps request bodies; resume texts are far below this.
const maxBodyBytes = 1 << 20

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	store      store.Store
	pg         *store.Postgres
	engine     *quality.Engine
	validator  *schemas.Validator
	ingestOpts *ingest.Options
	log        *zap.Logger
}

// Config holds server configuration.
type Config struct {
	Port            int
	DatabaseURL     string
	LanguageToolURL string
	SchemaPath      string
	UseBrowser      bool
	FetchTimeout    time.Duration
	Logger          *zap.Logger
}

// New creates a new server instance.
func New(cfg Config) (*Server, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	s := &Server{log: log}

	// Storage: Postgres when configured, in-memory otherwise.
	if cfg.DatabaseURL != "" {
		pg, err := store.ConnectPostgres(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		s.pg = pg
		s.store = pg
	} else {
		s.store = store.NewMemory()
		log.Info("no database configured, using in-memory store")
	}

	// Quality engine backends. A missing grammar endpoint simply disables
	// grammar checking.
	var checker grammar.Checker
	if cfg.LanguageToolURL != "" {
		checker = grammar.NewLanguageTool(cfg.LanguageToolURL, grammar.DefaultTimeout)
	}
	s.engine = quality.NewEngine(readability.NewScorer(), checker)

	// Analyze request schema. When the schema file cannot be located the
	// endpoints still work, they just skip structural validation.
	schemaPath := cfg.SchemaPath
	if schemaPath == "" {
		schemaPath = schemas.ResolveSchemaPath("schemas/analyze_request.schema.json")
	}
	if schemaPath != "" {
		validator, err := schemas.NewValidator(schemaPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load analyze request schema: %w", err)
		}
		s.validator = validator
	} else {
		log.Warn("analyze request schema not found, skipping schema validation")
	}

	s.ingestOpts = ingest.DefaultOptions()
	s.ingestOpts.UseBrowser = cfg.UseBrowser
	if cfg.FetchTimeout > 0 {
		s.ingestOpts.Timeout = cfg.FetchTimeout
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // browser-rendered posting fetches can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request multiplexer.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	// Company and candidate records
	mux.HandleFunc("POST /company", s.handleUpsertCompany)
	mux.HandleFunc("GET /company/{id}", s.handleGetCompany)
	mux.HandleFunc("GET /companies", s.handleListCompanies)
	mux.HandleFunc("POST /candidate", s.handleUpsertCandidate)
	mux.HandleFunc("GET /candidate/{id}", s.handleGetCandidate)

	// Analysis
	mux.HandleFunc("POST /analyze", s.handleAnalyze)
	mux.HandleFunc("POST /analyze/by-id", s.handleAnalyzeByID)
	mux.HandleFunc("POST /analyze/bulk", s.handleAnalyzeBulk)
	mux.HandleFunc("POST /analyze/comprehensive", s.handleAnalyzeComprehensive)

	// Posting ingestion
	mux.HandleFunc("POST /ingest/posting", s.handleIngestPosting)

	return mux
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.log.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Fatal("server error", zap.Error(err))
		}
	}()

	<-stop
	s.log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.pg != nil {
		s.pg.Close()
	}
	s.log.Info("server stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)))
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("failed to encode JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// decodeJSON decodes a request body into dst, enforcing the body size cap.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	return dec.Decode(dst)
}
