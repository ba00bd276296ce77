package app

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gstpro/internal/config"
	"gstpro/internal/errors"
	"gstpro/internal/exporter"
	"gstpro/internal/infrastructure"
	custommiddleware "gstpro/internal/middleware"
	"gstpro/internal/services"
	handlers "gstpro/internal/transport/http"
	"gstpro/internal/validation"
)

const (
	VERSION = "1.0.0"
	AppName = "GST Pro - Purchase & Sales Processor"
)

// BuildTime is set at compile time via -ldflags
var BuildTime = ""

// Application represents the main application container
type Application struct {
	Config        *config.Config
	Router        *chi.Mux
	Server        *http.Server
	Logger        *slog.Logger
	ReportService *services.ReportService
	HealthService *services.HealthService
}

// NewApplication wires configuration, logging, services, and routes.
// webFS holds the embedded upload page assets.
func NewApplication(webFS fs.FS) (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	a := &Application{
		Config: cfg,
		Logger: logger,
	}

	writer := exporter.NewWorkbookWriter(logger)
	a.ReportService = services.NewReportService(writer, logger)
	a.HealthService = services.NewHealthService(VERSION, BuildTime, logger)

	if err := a.setupRouter(webFS); err != nil {
		return nil, fmt.Errorf("failed to set up router: %w", err)
	}

	a.Server = &http.Server{
		Addr:           cfg.Address(),
		Handler:        a.Router,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	return a, nil
}

// setupRouter builds the middleware chain and mounts all routes
func (a *Application) setupRouter(webFS fs.FS) error {
	r := chi.NewRouter()

	// Order matters: request IDs first so everything downstream logs them
	r.Use(custommiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(custommiddleware.StructuredLogger(a.Logger))
	r.Use(custommiddleware.Recoverer(a.Logger))
	r.Use(custommiddleware.Metrics)
	r.Use(custommiddleware.SecurityHeaders)
	r.Use(custommiddleware.Timeout(a.Config.Server.RequestTimeout, a.Logger))

	if a.Config.Security.EnableCORS {
		r.Use(custommiddleware.CORS(custommiddleware.CORSConfig{
			AllowedOrigins: a.Config.Security.AllowedOrigins,
			Logger:         a.Logger,
		}))
	}

	if a.Config.Security.RateLimit.Enabled {
		limiter := custommiddleware.NewRateLimiter(
			a.Config.Security.RateLimit.RPS,
			a.Config.Security.RateLimit.Burst,
			a.Logger,
		)
		r.Use(limiter.Handler)
	}

	errorHandler := errors.NewErrorHandler(a.Logger, false)
	uploadValidator := validation.NewUploadValidator(a.Logger)

	reportHandler := handlers.NewReportHandler(
		a.ReportService,
		uploadValidator,
		errorHandler,
		a.Logger,
		a.Config.Upload.MaxRequestBytes,
	)
	healthHandler := handlers.NewHealthHandler(a.HealthService, a.Logger)

	webHandler, err := handlers.NewWebHandler(webFS, a.Logger)
	if err != nil {
		return fmt.Errorf("failed to load web assets: %w", err)
	}

	r.Get("/", webHandler.Index)
	r.Route("/api", func(r chi.Router) {
		r.Mount("/reports", reportHandler.Routes())
		r.Get("/health", healthHandler.HealthCheck)
		r.Get("/health/ready", healthHandler.ReadinessCheck)
		r.Get("/health/live", healthHandler.LivenessCheck)
		r.Get("/version", healthHandler.Version)
	})
	r.Handle("/metrics", promhttp.Handler())

	a.Router = r
	return nil
}

// Run starts the HTTP server and blocks until shutdown completes
func (a *Application) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.Logger.InfoContext(ctx, "starting application",
		slog.String("name", AppName),
		slog.String("version", VERSION),
		slog.Int("port", a.Config.Server.Port),
		slog.String("log_level", a.Config.Logging.Level))

	serverErr := make(chan error, 1)
	go func() {
		if err := a.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	a.Logger.InfoContext(ctx, "application started",
		slog.String("address", fmt.Sprintf("http://localhost:%d", a.Config.Server.Port)))

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	return a.Stop()
}

// Stop gracefully stops the application
func (a *Application) Stop() error {
	a.Logger.Info("shutting down application")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	if err := infrastructure.CloseLogFile(); err != nil {
		a.Logger.Warn("failed to close log file", slog.String("error", err.Error()))
	}

	a.Logger.Info("shutdown complete")
	return nil
}
