package services

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/margdarshak/career-advisor/repository"
)

// Server holds all server dependencies
type Server struct {
	config           *Config
	repo             *repository.GORMRepository
	pool             *pgxpool.Pool
	authService      *AuthService
	quizEngine       *QuizEngine
	authEndpoints    *AuthEndpoints
	quizEndpoints    *QuizEndpoints
	catalogEndpoints *CatalogEndpoints
}

// NewServer creates a new server instance
func NewServer(config *Config) *Server {
	return &Server{
		config: config,
	}
}

// SetDatabase sets the database connections
func (s *Server) SetDatabase(repo *repository.GORMRepository, pool *pgxpool.Pool) {
	s.repo = repo
	s.pool = pool
}

// InitializeServices initializes all server services
func (s *Server) InitializeServices() error {
	s.quizEngine = NewQuizEngine(s.config.Quiz)
	slog.Info("Quiz engine initialized", "corrected_matching", s.config.Quiz.CorrectedMatching)

	if s.config.JWT.Secret != "" && s.repo != nil {
		s.authService = NewAuthService(s.repo, s.config.JWT.Secret)
		s.authEndpoints = NewAuthEndpoints(s.authService)
		slog.Info("Authentication service initialized")
	} else {
		slog.Warn("Authentication disabled: JWT secret or database missing")
	}

	if s.repo != nil {
		s.quizEndpoints = NewQuizEndpoints(s.quizEngine, s.repo)
		s.catalogEndpoints = NewCatalogEndpoints(s.repo)
		slog.Info("Quiz and catalog endpoints initialized")
	}

	return nil
}

// SetupRoutes configures all HTTP routes
func (s *Server) SetupRoutes() *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(CORSMiddleware(s.config.CORS.AllowedOrigins))

	// Health endpoint
	r.Get("/health", s.healthHandler)

	// API route group
	r.Route("/api", func(r chi.Router) {
		if s.authEndpoints != nil {
			// Public auth routes (no middleware)
			s.authEndpoints.RegisterRoutes(r)
		}

		if s.quizEndpoints != nil {
			// Question catalog is public; submission requires a bearer token.
			r.Get("/quiz/questions", s.quizEndpoints.GetQuestionsHandler)
		}

		if s.catalogEndpoints != nil {
			s.catalogEndpoints.RegisterRoutes(r)
		}

		// Protected routes (with middleware)
		if s.authService != nil {
			r.Group(func(r chi.Router) {
				r.Use(s.authService.Middleware)
				r.Get("/user", s.authEndpoints.MeHandler)
				if s.quizEndpoints != nil {
					r.Post("/submit-quiz", s.quizEndpoints.SubmitQuizHandler)
				}
			})
		}
	})

	return r
}

// Start starts the HTTP server
func (s *Server) Start() {
	port := s.config.Server.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: s.SetupRoutes(),
	}

	// Graceful shutdown
	go func() {
		slog.Info("Starting server", "port", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	slog.Info("Server exited")
}

// OriginAllowed checks the request origin against the configured
// comma-separated allowlist. An empty allowlist denies all cross-origin
// requests.
func OriginAllowed(r *http.Request, allowedOriginsStr string) bool {
	origin := r.Header.Get("Origin")

	if allowedOriginsStr == "" {
		return false
	}

	allowedOrigins := strings.Split(allowedOriginsStr, ",")
	for i := range allowedOrigins {
		allowedOrigins[i] = strings.TrimSpace(allowedOrigins[i])
	}

	for _, allowed := range allowedOrigins {
		if allowed == origin {
			return true
		}
	}

	slog.Warn("Cross-origin request rejected", "origin", origin, "allowed_origins", allowedOriginsStr)
	return false
}

// CORSMiddleware reflects allowed origins and answers preflight requests.
func CORSMiddleware(allowedOrigins string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" && OriginAllowed(r, allowedOrigins) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Vary", "Origin")
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	dbStatus := "not configured"

	if s.pool != nil {
		if err := s.pool.Ping(r.Context()); err != nil {
			dbStatus = "down"
			status = "degraded"
		} else {
			dbStatus = "up"
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":   status,
		"database": dbStatus,
	})

	slog.Info("Health check", "status", status, "database", dbStatus)
}
