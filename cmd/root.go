// Package cmd provides CLI commands for the boardroom application.
package cmd

import (
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "boardroom",
	Short: "Boardroom - a multi-agent business review panel",
	Long: `Boardroom runs a panel of role-specialized LLM analyst agents over a
business review subject, retries failed calls with classified backoff,
extracts structured scores and findings from each answer, and synthesizes
an integrated report through a final integration seat.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "boardroom.yaml", "path to the config file")
}
