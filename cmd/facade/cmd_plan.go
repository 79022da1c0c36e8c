package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var planFlags struct {
	id string
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the prioritized remediation plan for a property",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVar(&planFlags.id, "id", "", "Property ID (required)")
	_ = planCmd.MarkFlagRequired("id")
}

func runPlan(cmd *cobra.Command, _ []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	defer svc.Close()

	items, err := svc.ActionPlan(cmd.Context(), planFlags.id)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if rootFlags.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}

	if len(items) == 0 {
		fmt.Fprintln(out, "No open items.")
		return nil
	}
	for i, item := range items {
		age := "undated"
		if !item.IssuedAt.IsZero() {
			age = item.IssuedAt.Format("2006-01-02")
		}
		fmt.Fprintf(out, "%2d. [%s] %s\n    %s %s, est $%d-$%d, issued %s\n",
			i+1, item.Priority, item.Title,
			item.Dataset, item.NaturalKey, item.CostMin, item.CostMax, age)
	}
	return nil
}
