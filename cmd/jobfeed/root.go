package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/jobfeedhq/jobfeed/internal/config"
	"github.com/jobfeedhq/jobfeed/internal/feed"
	"github.com/jobfeedhq/jobfeed/internal/query"
	"github.com/jobfeedhq/jobfeed/internal/store"
)

var (
	cfgPath string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "jobfeed",
	Short: "Job postings over MCP and HTTP",
	Long:  "jobfeed loads a static job-posting feed once and serves it as MCP tools (stdio) and a JSON API.",
	// Default to `serve` so MCP clients can invoke the binary directly.
	RunE: runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: JOBFEED_CONFIG env var or ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// loadConfig resolves the config path and parses it.
// Priority: explicit path arg > JOBFEED_CONFIG env var > "./config.yaml".
// A missing default file is not an error; this system runs on built-in
// defaults, the original deployment had no config file at all.
func loadConfig(path string) (*config.Config, error) {
	explicit := path != ""
	if path == "" {
		if env := os.Getenv("JOBFEED_CONFIG"); env != "" {
			path = env
			explicit = true
		} else {
			path = "config.yaml"
		}
	}

	cfg, err := config.Load(path)
	if err != nil && !explicit && errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return cfg, err
}

// setupLogger writes to stderr; stdout belongs to the MCP stream.
func setupLogger(dbg bool) *slog.Logger {
	level := slog.LevelInfo
	if dbg {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// buildEngine wires fetcher, store, and engine from config.
func buildEngine(cfg *config.Config) *query.Engine {
	httpClient := &http.Client{Timeout: cfg.FetchTimeout}
	fetcher := feed.NewClient(cfg.SourceURL, httpClient)
	return query.NewEngine(store.New(fetcher))
}
