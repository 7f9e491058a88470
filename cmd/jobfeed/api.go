package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/jobfeedhq/jobfeed/internal/httpapi"
)

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Serve the HTTP JSON API",
	Long:  "Load the feed eagerly, then serve the JSON API; blocks until SIGINT/SIGTERM.",
	RunE:  runAPI,
}

func init() {
	rootCmd.AddCommand(apiCmd)
}

func runAPI(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	engine := buildEngine(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Fail fast on a dead feed instead of surfacing it per request.
	list, err := engine.ListAll(ctx)
	if err != nil {
		logger.Error("failed to load job feed", "error", err)
		os.Exit(1)
	}
	logger.Info("job feed loaded", "jobs", list.TotalJobs, "source_url", cfg.SourceURL)

	var limiter *rate.Limiter
	if cfg.RateLimit.RPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst)
	}

	handler := httpapi.Handler(httpapi.Deps{
		Engine:  engine,
		Logger:  logger,
		Version: version,
		Limiter: limiter,
	})

	if err := httpapi.Serve(ctx, cfg.ListenAddr, handler, logger); err != nil {
		logger.Error("api server error", "error", err)
		os.Exit(1)
	}

	logger.Info("goodbye")
	return nil
}
