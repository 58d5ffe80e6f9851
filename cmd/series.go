package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tempograph/tempograph/core"
	"github.com/tempograph/tempograph/internal/contract"
	"github.com/tempograph/tempograph/internal/vault"
)

// seriesCmd buckets one property into a time series.
var seriesCmd = &cobra.Command{
	Use:   "series [vault-path]",
	Short: "Track the mean of a numeric property over calendar periods",
	Long: `Bucket anchored entries into calendar periods and compute the mean of the
property's numeric values per period. Periods whose entries carry no numeric
value are dropped rather than reported as zero.

Examples:
  # Daily average of a numeric property
  tempograph series -p pages

  # Monthly trend for a different vault
  tempograph series ~/notes -p pages -g monthly

  # Export the series as JSON
  tempograph series -p pages --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSeries(cfg, vault.NewSource(cfg.VaultPath), cacheManager); err != nil {
			contract.LogFatal("Cannot run series aggregation", err)
		}
	},
}
