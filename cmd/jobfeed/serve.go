package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jobfeedhq/jobfeed/internal/toolserver"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve MCP tools over stdio",
	Long:  "Serve the job query tools over stdio until EOF. The feed is fetched lazily on the first tool call.",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Info("mcp server starting",
		"source_url", cfg.SourceURL,
		"fetch_timeout", cfg.FetchTimeout.String(),
	)

	engine := buildEngine(cfg)
	srv := toolserver.New(toolserver.NewEngineBackend(engine), version)

	if err := srv.ServeStdio(); err != nil {
		logger.Error("mcp server error", "error", err)
		os.Exit(1)
	}

	logger.Info("goodbye")
	return nil
}
