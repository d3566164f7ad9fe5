package gateway

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/MishC/Gemini-typography/internal/observability"
	"github.com/MishC/Gemini-typography/internal/suggestion"
)

// Server is the HTTP server for the suggestion API.
type Server struct {
	config     Config
	httpServer *http.Server
	service    *suggestion.Service
	validate   *validator.Validate
	logger     *slog.Logger
}

// NewServer creates the HTTP server with all routes and middleware wired.
// obs and metrics may be nil to run without instrumentation.
func NewServer(cfg Config, svc *suggestion.Service, obs *observability.Module, metrics *observability.Metrics, logger *slog.Logger) (*Server, error) {
	if svc == nil {
		return nil, errors.New("gateway: suggestion service is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		config:   cfg,
		service:  svc,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger.With("component", "gateway"),
	}

	api := http.NewServeMux()
	api.HandleFunc("POST /v1/suggestions", s.handleSuggest)
	api.HandleFunc("GET /v1/fonts/link", s.handleFontLink)

	apiHandler := Chain(api,
		RequestID,
		RequestLogger(s.logger),
		HTTPMetrics(metrics),
		Recovery(s.logger),
		CORS(cfg.CORS),
		RateLimit(cfg.RateLimit),
		PerClientRateLimit(cfg.RateLimit),
		BodySizeLimit(cfg.MaxBodyBytes),
		ContentType,
	)

	// Health and metrics endpoints bypass the API chain so probes and
	// scrapers are never rate limited.
	root := http.NewServeMux()
	root.HandleFunc("GET /healthz", s.handleHealthz)
	root.HandleFunc("GET /readyz", s.handleReadyz)
	if obs != nil {
		root.Handle("GET /metrics", obs.MetricsHandler())
	}
	root.Handle("/", apiHandler)

	s.httpServer = &http.Server{
		Addr:           cfg.Addr,
		Handler:        root,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: cfg.MaxHeaderBytes,
	}

	return s, nil
}

// Start begins serving HTTP requests. It blocks until the server stops.
func (s *Server) Start() error {
	s.logger.Info("http server listening", "addr", s.config.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server, waiting up to ShutdownTimeout for
// in-flight requests to finish.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.config.ShutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.ShutdownTimeout)
		defer cancel()
	}

	s.logger.Info("http server shutting down")
	return s.httpServer.Shutdown(ctx)
}

// Handler returns the root handler, including all middleware.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
