// This file implements the results and purge commands for stored panel
// results.
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/adalundhe/boardroom/core/config"
)

var resultsJSON bool

// resultsCmd represents the results command.
var resultsCmd = &cobra.Command{
	Use:   "results <subject-id>",
	Short: "List stored panel results for a subject",
	Args:  cobra.ExactArgs(1),
	RunE:  runResults,
}

// purgeCmd represents the purge command.
var purgeCmd = &cobra.Command{
	Use:   "purge <subject-id>",
	Short: "Delete all stored results for a subject",
	Args:  cobra.ExactArgs(1),
	RunE:  runPurge,
}

func init() {
	resultsCmd.Flags().BoolVar(&resultsJSON, "json", false, "emit results as JSON")
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(purgeCmd)
}

func runResults(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	gateway, err := openGateway(cfg)
	if err != nil {
		return err
	}

	results, err := gateway.LoadAll(context.Background(), args[0])
	if err != nil {
		return err
	}

	if resultsJSON {
		return printJSON(cmd, results)
	}

	if len(results) == 0 {
		cmd.Printf("no results for subject %s\n", args[0])
		return nil
	}
	for _, res := range results {
		status := "ok"
		if res.Error {
			status = "failed (" + res.FailureKind + ")"
		}
		cmd.Printf("%-18s score=%-2d model=%-30s %s\n",
			res.Role, res.Score, res.Model, status)
	}
	return nil
}

func runPurge(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	gateway, err := openGateway(cfg)
	if err != nil {
		return err
	}

	count, err := gateway.DeleteAll(context.Background(), args[0])
	if err != nil {
		return err
	}
	cmd.Printf("deleted %d results for subject %s\n", count, args[0])
	return nil
}
