package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calegray/facade/internal/adapter"
	"github.com/calegray/facade/internal/model"

	// Register adapter implementations.
	_ "github.com/calegray/facade/internal/adapter/nyc"
	_ "github.com/calegray/facade/internal/adapter/phila"
)

var adaptersFlags struct {
	jurisdiction string
}

var adaptersCmd = &cobra.Command{
	Use:   "adapters",
	Short: "List the datasets covered for a jurisdiction",
	RunE:  runAdapters,
}

func init() {
	adaptersCmd.Flags().StringVar(&adaptersFlags.jurisdiction, "jurisdiction", "nyc", "Jurisdiction (nyc, philadelphia)")
}

func runAdapters(cmd *cobra.Command, _ []string) error {
	j := model.Jurisdiction(adaptersFlags.jurisdiction)
	datasets := adapter.Datasets(j)
	if len(datasets) == 0 {
		return fmt.Errorf("no adapters registered for jurisdiction %q", j)
	}
	for _, ds := range datasets {
		fmt.Fprintln(cmd.OutOrStdout(), ds)
	}
	return nil
}
