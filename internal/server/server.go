package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jonathan/profile-matcher/internal/analysis"
	"github.com/jonathan/profile-matcher/internal/config"
	"github.com/jonathan/profile-matcher/internal/costs"
	"github.com/jonathan/profile-matcher/internal/extraction"
	"github.com/jonathan/profile-matcher/internal/ingestion"
	"github.com/jonathan/profile-matcher/internal/llm"
	"github.com/jonathan/profile-matcher/internal/matching"
	"github.com/jonathan/profile-matcher/internal/server/middleware"
	"github.com/jonathan/profile-matcher/internal/server/ratelimit"
	"github.com/jonathan/profile-matcher/internal/store"
	"github.com/jonathan/profile-matcher/internal/taxonomy"
)

// Config holds server configuration.
type Config struct {
	Port         int
	TaxonomyPath string  // empty means the built-in taxonomy
	DatabaseURL  string  // empty disables the record store
	APIKey       string  // empty disables LLM enrichment
	BudgetUSD    float64 // 0 means unlimited LLM spend
	UseBrowser   bool
}

// Server is the profile-matcher HTTP API.
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger

	extractor *extraction.Extractor
	matcher   *matching.Matcher
	analyzer  *analysis.Analyzer
	ingestor  *ingestion.Ingestor
	enricher  *llm.Enricher
	llmClient *llm.GeminiClient
	tracker   *costs.Tracker
	store     *store.Store
	budgetUSD float64

	validator   *validator.Validate
	rateLimiter *ratelimit.Limiter

	// Auth is optional: all of these are nil/empty when JWT_SECRET is unset.
	jwtConfig        *config.JWTConfig
	jwtService       *JWTService
	secretConfig     *config.SecretConfig
	clientID         string
	clientSecretHash string
}

// New creates a server instance and wires its routes.
func New(ctx context.Context, cfg Config, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	tax := taxonomy.Default()
	if cfg.TaxonomyPath != "" {
		loaded, err := taxonomy.LoadFile(cfg.TaxonomyPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load taxonomy: %w", err)
		}
		tax = loaded
	}

	extractor := extraction.New(tax)
	s := &Server{
		logger:      logger,
		extractor:   extractor,
		matcher:     matching.New(tax, extractor, logger),
		analyzer:    analysis.New(tax, logger),
		ingestor:    ingestion.New(extractor, logger, cfg.UseBrowser),
		tracker:     costs.NewTracker(cfg.BudgetUSD, logger),
		budgetUSD:   cfg.BudgetUSD,
		validator:   validator.New(),
		rateLimiter: ratelimit.NewLimiter(ratelimit.LoadConfig()),
	}

	s.enricher = llm.NewEnricher(nil)
	if cfg.APIKey != "" {
		client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), cfg.APIKey, s.tracker)
		if err != nil {
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		s.llmClient = client
		s.enricher = llm.NewEnricher(client)
	}

	if cfg.DatabaseURL != "" {
		st, err := store.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := st.EnsureSchema(ctx); err != nil {
			st.Close()
			return nil, fmt.Errorf("failed to ensure schema: %w", err)
		}
		s.store = st
	}

	if err := s.setupAuth(); err != nil {
		return nil, err
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // batch matching and ingestion can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// setupAuth configures JWT auth when JWT_SECRET is present. Without it the
// API runs open, which suits local use.
func (s *Server) setupAuth() error {
	if os.Getenv("JWT_SECRET") == "" {
		s.logger.Warn("JWT_SECRET not set, authentication disabled")
		return nil
	}

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return fmt.Errorf("failed to create JWT config: %w", err)
	}
	secretConfig, err := config.NewSecretConfig()
	if err != nil {
		return fmt.Errorf("failed to create secret config: %w", err)
	}

	s.jwtConfig = jwtConfig
	s.jwtService = NewJWTService(jwtConfig)
	s.secretConfig = secretConfig
	s.clientID = os.Getenv("API_CLIENT_ID")
	s.clientSecretHash = os.Getenv("API_CLIENT_SECRET_HASH")
	if s.clientID == "" || s.clientSecretHash == "" {
		return fmt.Errorf("API_CLIENT_ID and API_CLIENT_SECRET_HASH are required when JWT_SECRET is set")
	}
	return nil
}

// routes builds the mux. Scoring routes require a bearer token when auth is
// configured; /health and /token are always open.
func (s *Server) routes() http.Handler {
	protect := func(h http.HandlerFunc) http.Handler {
		if s.jwtService == nil {
			return h
		}
		return middleware.Auth(s.jwtService.AsTokenValidator())(h)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /token", s.handleToken)

	mux.Handle("POST /extract", protect(s.handleExtract))
	mux.Handle("POST /match", protect(s.handleMatch))
	mux.Handle("POST /match/batch", protect(s.handleMatchBatch))
	mux.Handle("POST /candidates", protect(s.handleCandidates))
	mux.Handle("POST /analyze", protect(s.handleAnalyze))
	mux.Handle("POST /recommend", protect(s.handleRecommend))
	mux.Handle("POST /ingest", protect(s.handleIngest))

	mux.Handle("GET /matches", protect(s.handleListMatches))
	mux.Handle("GET /matches/{id}", protect(s.handleGetMatch))
	mux.Handle("GET /costs", protect(s.handleCosts))

	return mux
}

// Start listens for requests until an interrupt, then shuts down gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.rateLimiter.Stop()
	if s.llmClient != nil {
		_ = s.llmClient.Close()
	}
	if s.store != nil {
		s.store.Close()
	}
	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit enforces per-client token buckets.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging logs every request with its duration.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote", r.RemoteAddr),
			zap.Duration("duration", time.Since(start)))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID identifies the caller for rate limiting. Uses the IP from
// RemoteAddr; X-Forwarded-For is deliberately ignored since it is spoofable.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	s.logger.Warn("rate limit exceeded",
		zap.Int("limit", info.Limit),
		zap.Int("remaining", info.Remaining))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
