package main

import (
	"fmt"
	"os"

	"github.com/de-tools/report-atlas/pkg/server"
	"github.com/de-tools/report-atlas/pkg/services/config"
	"github.com/de-tools/report-atlas/pkg/services/dashboard"
	"github.com/de-tools/report-atlas/pkg/services/opportunity"
	"github.com/de-tools/report-atlas/pkg/services/report"
	"github.com/de-tools/report-atlas/pkg/store/kv"
	"github.com/de-tools/report-atlas/pkg/store/reports"
	"github.com/de-tools/report-atlas/pkg/store/sqlite"
	oppstore "github.com/de-tools/report-atlas/pkg/store/sqlite/opportunity"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for the report builder",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the config file (defaults and REPORTS_* environment variables when empty)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	db, err := sqlite.NewDB(sqlite.Settings{
		DbPath: cfg.Database.Path,
	})
	if err != nil {
		return fmt.Errorf("failed to create sqlite instance: %w", err)
	}
	defer db.Close()

	opportunityStore, err := oppstore.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create opportunity store: %w", err)
	}
	stats, err := opportunityStore.GetStats(ctx)
	if err != nil {
		return fmt.Errorf("failed to read opportunity stats: %w", err)
	}
	event := logger.Info().Int64("records", stats.RecordsCount)
	if stats.LastCreatedAt != nil {
		event = event.Str("last_created_at", *stats.LastCreatedAt)
	}
	event.Msgf("Database `%s` opened.", cfg.Database.Path)

	records, err := opportunity.NewProvider(opportunityStore, cfg.Reports.RecordLimit)
	if err != nil {
		return fmt.Errorf("failed to create opportunity provider: %w", err)
	}

	state, err := kv.NewFileStore(cfg.Reports.StoreDir)
	if err != nil {
		return fmt.Errorf("failed to create state store: %w", err)
	}
	reportStore, err := reports.NewStore(state)
	if err != nil {
		return fmt.Errorf("failed to create report store: %w", err)
	}
	saved, err := reportStore.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load saved reports: %w", err)
	}
	logger.Info().Msgf("Found %d saved reports in `%s`.", len(saved), cfg.Reports.StoreDir)

	evaluator, err := report.NewEvaluator(report.Settings{
		Locale:   cfg.Reports.Locale,
		Currency: cfg.Reports.Currency,
	})
	if err != nil {
		return fmt.Errorf("failed to create evaluator: %w", err)
	}

	addr := cfg.Addr()
	logger.Info().Msgf("starting server on %s", addr)

	api := server.NewWebAPI(logger, server.Config{
		Addr:            addr,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Reports:   reportStore,
			Records:   records,
			Evaluator: evaluator,
			Dashboard: dashboard.NewService(),
		},
	})
	return api.Start()
}
