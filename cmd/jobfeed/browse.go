package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/jobfeedhq/jobfeed/internal/browse"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse jobs in an interactive TUI",
	Long:  "Load the feed and open an interactive list/detail browser with live filtering.",
	RunE:  runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	engine := buildEngine(cfg)

	// Load before entering the alt screen so fetch errors stay readable.
	if _, err := engine.ListAll(context.Background()); err != nil {
		logger.Error("failed to load job feed", "error", err)
		os.Exit(1)
	}

	return browse.Run(engine)
}
