package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tempograph/tempograph/core"
	"github.com/tempograph/tempograph/internal/contract"
	"github.com/tempograph/tempograph/internal/vault"
)

// tagsCmd flattens a list-valued property into tag frequencies.
var tagsCmd = &cobra.Command{
	Use:   "tags [vault-path]",
	Short: "Flatten a list property and rank tags by frequency",
	Long: `Flatten the property's list values across all entries and count how often
each tag occurs. A tag repeated inside one entry counts once per occurrence,
but the entry itself is listed only once under that tag.

Tag grouping is case-sensitive by default; use --fold-tags to collapse
case-varied spellings into one tag.

Examples:
  # Rank tags across the vault
  tempograph tags -p tags

  # Fold "Go" and "go" into one tag
  tempograph tags -p tags --fold-tags

  # Parquet export
  tempograph tags -p tags --output parquet --output-file tags.parquet`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTagCloud(cfg, vault.NewSource(cfg.VaultPath), cacheManager); err != nil {
			contract.LogFatal("Cannot run tag aggregation", err)
		}
	},
}
