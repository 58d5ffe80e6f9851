package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tempograph/tempograph/core"
	"github.com/tempograph/tempograph/internal/contract"
	"github.com/tempograph/tempograph/internal/vault"
)

// scatterCmd plots one point per entry with a numeric value.
var scatterCmd = &cobra.Command{
	Use:   "scatter [vault-path]",
	Short: "Plot one point per entry: anchor date against numeric value",
	Long: `Produce one point per anchored entry that carries a numeric value for the
property. The x coordinate is the anchor date normalized to a 0-100 range
across the observed span; the y coordinate is the raw numeric value.

Entries without an anchor or without a numeric value are skipped.

Examples:
  # Scatter of a rating property over time
  tempograph scatter -p rating

  # JSON export for downstream rendering
  tempograph scatter ~/notes -p rating --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteScatter(cfg, vault.NewSource(cfg.VaultPath), cacheManager); err != nil {
			contract.LogFatal("Cannot run scatter aggregation", err)
		}
	},
}
