package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/calegray/facade/internal/model"
)

var syncFlags struct {
	id string
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Fetch, normalize, and score a property's regulatory records",
	RunE:  runSync,
}

func init() {
	syncCmd.Flags().StringVar(&syncFlags.id, "id", "", "Property ID (required)")
	_ = syncCmd.MarkFlagRequired("id")
}

func runSync(cmd *cobra.Command, _ []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	defer svc.Close()

	report, err := svc.SyncProperty(cmd.Context(), syncFlags.id)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if rootFlags.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Fprintf(out, "Sync %s (run %s)\n", report.PropertyID, report.RunID)
	for _, a := range report.Adapters {
		line := fmt.Sprintf("  %-22s %-10s %d records", a.Dataset, a.Status, a.Fetched)
		if a.Error != "" {
			line += "  (" + a.Error + ")"
		}
		fmt.Fprintln(out, line)
	}
	fmt.Fprintf(out, "Created %d, updated %d, skipped %d, write failures %d\n",
		report.RecordsCreated, report.RecordsUpdated, report.RecordsSkipped, report.WriteFailures)
	if report.Degraded() {
		fmt.Fprintln(out, "WARNING: some datasets failed or timed out; stored data may be stale for those sources")
	}
	if report.Summary != nil {
		printSummary(out, *report.Summary)
	}
	return nil
}

func printSummary(out io.Writer, s model.ComplianceSummary) {
	fmt.Fprintf(out, "Score: %d (%s)  open %d of %d records, %d equipment issues\n",
		s.Score, s.Tier, s.OpenRecords, s.TotalRecords, s.EquipmentIssues)
	for _, cat := range model.CategoryOrder {
		if n := s.ByCategory[cat]; n > 0 {
			fmt.Fprintf(out, "  %-12s %d open\n", cat, n)
		}
	}
}
