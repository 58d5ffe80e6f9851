package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tempograph/tempograph/core"
	"github.com/tempograph/tempograph/internal/contract"
	"github.com/tempograph/tempograph/internal/vault"
)

// pieCmd groups one property into a categorical distribution.
var pieCmd = &cobra.Command{
	Use:   "pie [vault-path]",
	Short: "Group a property by display label and count each category",
	Long: `Derive a display label for the property on every entry and count how many
entries fall under each label. Grouping folds case by default; the label shown
for a group is the first spelling encountered.

Entries without a value for the property are excluded from the distribution.

Examples:
  # Distribution of a status property
  tempograph pie -p status

  # Keep "Running" and "running" as separate slices
  tempograph pie -p status --case-sensitive-labels

  # CSV export for a different vault
  tempograph pie ~/notes -p genre --output csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecutePie(cfg, vault.NewSource(cfg.VaultPath), cacheManager); err != nil {
			contract.LogFatal("Cannot run pie aggregation", err)
		}
	},
}
