package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tempograph/tempograph/core"
	"github.com/tempograph/tempograph/internal/contract"
	"github.com/tempograph/tempograph/internal/vault"
)

// heatmapCmd buckets one property into an intensity grid.
var heatmapCmd = &cobra.Command{
	Use:   "heatmap [vault-path]",
	Short: "Bucket a property into calendar periods and show an intensity grid",
	Long: `Resolve a date anchor for every entry, bucket the entries into calendar
periods, and show one cell per period with its entry count and mean value.

Cells cover the span from the first anchored entry to the last. With
--show-empty, periods with no entries appear as zero-count cells, which is
useful when the grid feeds a renderer that expects a contiguous range.

Examples:
  # Daily word-count heatmap for the current directory
  tempograph heatmap -p words

  # Weekly heatmap with gap buckets filled in
  tempograph heatmap ~/notes -p words -g weekly --show-empty

  # Anchor on a frontmatter date instead of the filename
  tempograph heatmap ~/notes -p mood --anchor-property created`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteHeatmap(cfg, vault.NewSource(cfg.VaultPath), cacheManager); err != nil {
			contract.LogFatal("Cannot run heatmap aggregation", err)
		}
	},
}
