// facade is the compliance CLI: register properties, sync them against
// municipal open-data sources, and read back scores and action plans.
//
// Usage:
//
//	facade add      --id <id> --jurisdiction nyc --address "100 Gold Street"
//	facade sync     --id <id>
//	facade summary  --id <id>
//	facade plan     --id <id>
//	facade adapters --jurisdiction nyc
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/calegray/facade/internal/config"
	"github.com/calegray/facade/internal/logging"
	"github.com/calegray/facade/pkg/facade"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	db     string
	tables string
	json   bool
}

var rootCmd = &cobra.Command{
	Use:   "facade",
	Short: "Property compliance scoring from municipal open data",
	Long: "Facade syncs building violations, inspections, permits, and complaints\n" +
		"from municipal open-data sources and derives a compliance score,\n" +
		"risk tier, and prioritized remediation plan per property.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		logging.Init(rootFlags.json, logging.ParseLevel(cfg.LogLevel))
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.db, "db", "", "SQLite database path (default $FACADE_DB or facade.db)")
	pf.StringVar(&rootFlags.tables, "tables", "", "YAML file overriding weight/keyword/cost tables")
	pf.BoolVar(&rootFlags.json, "json", false, "emit machine-readable JSON on stdout")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(adaptersCmd)
	rootCmd.Version = version
}

// newService builds a Service from the root flags and environment.
func newService() (*facade.Service, error) {
	cfg := config.Load()
	if rootFlags.db != "" {
		cfg.DBPath = rootFlags.db
	}
	if rootFlags.tables != "" {
		cfg.TablesPath = rootFlags.tables
	}

	tables, err := config.LoadTables(cfg.TablesPath)
	if err != nil {
		return nil, err
	}

	return facade.New(
		facade.WithDBPath(cfg.DBPath),
		facade.WithTables(tables),
		facade.WithAppToken(cfg.AppToken),
		facade.WithTimeouts(cfg.AdapterTimeout, cfg.SyncTimeout),
		facade.WithConcurrency(cfg.Concurrency),
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
