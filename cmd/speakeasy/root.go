package main

import (
	"github.com/spf13/cobra"

	"github.com/speakeasy-app/speakeasy/internal/api"
	"github.com/speakeasy-app/speakeasy/internal/server/endpoints"
	"github.com/speakeasy-app/speakeasy/version"
)

var (
	cfgFile      string
	outputFormat string
	serverURL    string
)

var rootCmd = &cobra.Command{
	Use:   "speakeasy",
	Short: "Document simplification and form-filling service",
	Long: `SpeakEasy turns dense documents into plain language and audio,
and rebuilds PDF forms with user-supplied answers.

The service provides:
  - Text/PDF simplification and translation with spoken narration
  - AcroForm field discovery from uploaded PDFs
  - Regeneration of a styled, filled-out form document`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.speakeasy/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)
	rootCmd.PersistentFlags().StringVar(
		&serverURL, "server", "http://127.0.0.1:8080", "server URL for api commands",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		api.SetOutputFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)

	// API command tree: one cobra command per registered endpoint
	registry := api.NewRegistry()
	for _, ep := range endpoints.All(endpoints.Config{}) {
		registry.Register(ep)
	}
	rootCmd.AddCommand(registry.BuildCommands(func() string { return serverURL }))
}
