package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/osse101/HomeInventory_Go/internal/bootstrap"
	"github.com/osse101/HomeInventory_Go/internal/config"
	"github.com/osse101/HomeInventory_Go/internal/event"
	"github.com/osse101/HomeInventory_Go/internal/inventory"
	"github.com/osse101/HomeInventory_Go/internal/report"
)

// reportFlags holds the values bound to the report command's flags
type reportFlags struct {
	typeName        string
	outPath         string
	seedPath        string
	categories      []string
	includeWarranty bool
	includeImages   bool
	includeReceipts bool
}

var reportOpts reportFlags

func runReport(cmd *cobra.Command, args []string) error {
	initCLILogger()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if reportOpts.seedPath != "" {
		cfg.SeedPath = reportOpts.seedPath
	}

	reportType, err := report.ParseType(reportOpts.typeName)
	if err != nil {
		return err
	}

	clock := inventory.RealClock{}
	svc, err := bootstrap.InitializeInventory(cmd.Context(), cfg, event.NewMemoryBus(), clock)
	if err != nil {
		return err
	}
	defer svc.Shutdown(cmd.Context())

	opts := report.Options{
		Type:            reportType,
		Date:            clock.Now(),
		Categories:      reportOpts.categories,
		IncludeWarranty: reportOpts.includeWarranty,
		IncludeImages:   reportOpts.includeImages,
		IncludeReceipts: reportOpts.includeReceipts,
	}

	outPath := reportOpts.outPath
	var out io.Writer = cmd.OutOrStdout()
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating report file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := report.Write(out, svc.Snapshot(cmd.Context()).Items, opts); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	if outPath != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s report to %s\n", reportType, outPath)
	}
	return nil
}
