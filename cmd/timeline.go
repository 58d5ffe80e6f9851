package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tempograph/tempograph/core"
	"github.com/tempograph/tempograph/internal/contract"
	"github.com/tempograph/tempograph/internal/vault"
)

// timelineCmd lists one dated point per entry.
var timelineCmd = &cobra.Command{
	Use:   "timeline [vault-path]",
	Short: "List every anchored entry in date order",
	Long: `Produce one point per anchored entry, sorted ascending by anchor date.
Each point carries the entry's display label and numeric value when present,
so the timeline doubles as a dated inventory of the property.

Examples:
  # Timeline of all entries with a status property
  tempograph timeline -p status

  # Anchor on a frontmatter date
  tempograph timeline ~/notes -p status --anchor-property published`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTimeline(cfg, vault.NewSource(cfg.VaultPath), cacheManager); err != nil {
			contract.LogFatal("Cannot run timeline aggregation", err)
		}
	},
}
