package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/HomeInventory_Go/internal/seed"
)

func runSeedValidate(cmd *cobra.Command, args []string) error {
	initCLILogger()

	path := ""
	if len(args) == 1 {
		path = args[0]
	}

	loader, err := seed.NewLoader()
	if err != nil {
		return err
	}

	data, err := loader.Load(cmd.Context(), path)
	if err != nil {
		return err
	}
	if err := loader.Validate(data); err != nil {
		return err
	}

	source := path
	if source == "" {
		source = seed.DefaultSource
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: OK (%d categories, %d items)\n",
		source, len(data.Categories), len(data.Items))
	return nil
}
