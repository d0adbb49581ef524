package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/speakeasy-app/speakeasy/internal/config"
	"github.com/speakeasy-app/speakeasy/internal/server"
)

var (
	serveHost string
	servePort string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SpeakEasy server",
	Long: `Start the SpeakEasy HTTP server.

The server provides:
  - /health, /ready, /status  - Server health and provider status
  - /api/speak/text           - Simplify, translate, and narrate raw text
  - /api/speak/file           - Same pipeline for an uploaded PDF or text file
  - /api/translate            - Translate text to a target language
  - /api/forms/extract        - Discover fillable fields in a PDF
  - /api/forms/populate       - Rebuild a PDF form with supplied values

Examples:
  speakeasy serve                    # Start on default port 8080
  speakeasy serve --port 3000        # Start on custom port
  speakeasy serve --host 0.0.0.0     # Bind to all interfaces`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Set up logger
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))

		// Load configuration with hot reload
		cfgMgr, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		cfgMgr.WatchConfig()

		// Create server
		srv, err := server.New(server.Config{
			Host:          serveHost,
			Port:          servePort,
			ConfigManager: cfgMgr,
			Logger:        logger,
		})
		if err != nil {
			return err
		}

		// Start server (blocks until shutdown)
		return srv.Start(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "127.0.0.1", "Host to bind to")
	serveCmd.Flags().StringVar(&servePort, "port", "8080", "Port to listen on")

	rootCmd.AddCommand(serveCmd)
}
