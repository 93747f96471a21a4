package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	handlers "github.com/de-tools/report-atlas/pkg/handlers/report"
	"github.com/de-tools/report-atlas/pkg/services/dashboard"
	"github.com/de-tools/report-atlas/pkg/services/opportunity"
	"github.com/de-tools/report-atlas/pkg/services/report"
	"github.com/de-tools/report-atlas/pkg/store/reports"

	reportatlasmiddleware "github.com/de-tools/report-atlas/pkg/server/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

const defaultShutdownTimeout = 10 * time.Second

type WebAPI struct {
	router          *chi.Mux
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Reports   reports.Store
	Records   opportunity.Provider
	Evaluator *report.Evaluator
	Dashboard *dashboard.Service
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func ConfigureRouter(logger zerolog.Logger, config Config) *chi.Mux {
	deps := config.Dependencies
	reportHandler := handlers.NewHandler(deps.Reports, deps.Records, deps.Evaluator, deps.Dashboard)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(reportatlasmiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/fields", reportHandler.ListFields)
		r.Get("/dashboard", reportHandler.GetDashboard)

		r.Route("/reports", func(r chi.Router) {
			r.Get("/", reportHandler.ListReports)
			r.Post("/", reportHandler.CreateReport)
			r.Post("/preview", reportHandler.PreviewReport)
			r.Get("/series", reportHandler.ListReportSeries)
			r.Get("/{id}", reportHandler.GetReport)
			r.Put("/{id}", reportHandler.UpdateReport)
			r.Delete("/{id}", reportHandler.DeleteReport)
			r.Get("/{id}/series", reportHandler.GetReportSeries)
		})
	})

	return router
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	router := ConfigureRouter(logger, config)

	shutdownTimeout := config.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:              config.Addr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
		shutdownTimeout: shutdownTimeout,
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
