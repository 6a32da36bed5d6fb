package main

import (
	"os"

	"github.com/spf13/cobra"
)

// @title Home Inventory API
// @version 1.0
// @description Tracks household items, categories, warranties and receipts.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "home-inventory",
	Short:        "Home inventory service",
	SilenceUsage: true,
	RunE:         runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API (default)",
	RunE:  runServe,
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Work with seed data",
}

var seedValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Check a seed file against the schema; no path checks the embedded default",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSeedValidate,
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write a CSV report of the seed inventory",
	RunE:  runReport,
}

func init() {
	seedCmd.AddCommand(seedValidateCmd)

	reportCmd.Flags().StringVarP(&reportOpts.typeName, "type", "t", "full", "Report type: full, summary, value or warranty")
	reportCmd.Flags().StringVarP(&reportOpts.outPath, "out", "o", "", "Output file (default: stdout)")
	reportCmd.Flags().StringVar(&reportOpts.seedPath, "seed", "", "Seed file (default: SEED_PATH or the embedded inventory)")
	reportCmd.Flags().StringSliceVar(&reportOpts.categories, "categories", nil, "Only include these categories")
	reportCmd.Flags().BoolVar(&reportOpts.includeWarranty, "include-warranty", false, "Append warranty columns")
	reportCmd.Flags().BoolVar(&reportOpts.includeImages, "include-images", false, "Append image count column")
	reportCmd.Flags().BoolVar(&reportOpts.includeReceipts, "include-receipts", false, "Append receipt count column")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(reportCmd)
}
