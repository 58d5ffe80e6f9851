package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tempograph/tempograph/core"
	"github.com/tempograph/tempograph/internal/contract"
	"github.com/tempograph/tempograph/internal/vault"
)

// bubbleCmd buckets one property into sized bubbles.
var bubbleCmd = &cobra.Command{
	Use:   "bubble [vault-path]",
	Short: "Bucket a property into periods sized by entry count",
	Long: `Bucket anchored entries into calendar periods and emit one bubble per
period that has numeric data: x is the period position across the observed
span, y is the mean numeric value, and the radius scales with the period's
entry count relative to the busiest period.

Examples:
  # Weekly bubbles for a numeric property
  tempograph bubble -p words -g weekly

  # Quarterly view of another vault
  tempograph bubble ~/notes -p words -g quarterly`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteBubble(cfg, vault.NewSource(cfg.VaultPath), cacheManager); err != nil {
			contract.LogFatal("Cannot run bubble aggregation", err)
		}
	},
}
