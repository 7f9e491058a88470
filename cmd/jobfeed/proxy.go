package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/jobfeedhq/jobfeed/internal/apiclient"
	"github.com/jobfeedhq/jobfeed/internal/toolserver"
)

var proxyRemoteURL string

var proxyCmd = &cobra.Command{
	Use:   "proxy",
	Short: "Serve MCP tools backed by a deployed API",
	Long:  "Serve the same MCP tools over stdio, forwarding every call to a deployed jobfeed HTTP API instead of the local engine.",
	RunE:  runProxy,
}

func init() {
	proxyCmd.Flags().StringVar(&proxyRemoteURL, "remote", "", "base URL of the deployed API (overrides remote_api_url in config)")
	rootCmd.AddCommand(proxyCmd)
}

func runProxy(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	remote := cfg.RemoteAPIURL
	if proxyRemoteURL != "" {
		remote = proxyRemoteURL
	}
	if remote == "" {
		return fmt.Errorf("no remote API configured: set remote_api_url in config or pass --remote")
	}

	logger.Info("mcp proxy starting", "remote", remote)

	client := apiclient.New(remote, &http.Client{Timeout: cfg.FetchTimeout})
	srv := toolserver.New(client, version)

	if err := srv.ServeStdio(); err != nil {
		logger.Error("mcp proxy error", "error", err)
		os.Exit(1)
	}

	logger.Info("goodbye")
	return nil
}
