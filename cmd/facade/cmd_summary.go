package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calegray/facade/internal/store"
)

var summaryFlags struct {
	id string
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show a property's stored compliance summary",
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().StringVar(&summaryFlags.id, "id", "", "Property ID (required)")
	_ = summaryCmd.MarkFlagRequired("id")
}

func runSummary(cmd *cobra.Command, _ []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	defer svc.Close()

	s, err := svc.ComplianceSummary(cmd.Context(), summaryFlags.id)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("property %s has not been scored; run 'facade sync' first", summaryFlags.id)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if rootFlags.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}

	fmt.Fprintf(out, "Property: %s (analyzed %s)\n", s.PropertyID, s.AnalyzedAt.Format("2006-01-02 15:04"))
	printSummary(out, s)
	for ds, n := range s.ByDataset {
		fmt.Fprintf(out, "  %-22s %d open\n", ds, n)
	}
	return nil
}
