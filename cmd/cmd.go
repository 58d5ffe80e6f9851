// Package cmd defines the command-line interface for tempograph.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tempograph/tempograph/internal/contract"
	"github.com/tempograph/tempograph/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(heatmapCmd)
	rootCmd.AddCommand(seriesCmd)
	rootCmd.AddCommand(pieCmd)
	rootCmd.AddCommand(scatterCmd)
	rootCmd.AddCommand(bubbleCmd)
	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(timelineCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cacheCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatusCmd)
	cacheCmd.AddCommand(cacheMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("property", "p", "", "Property ID to aggregate (required)")
	rootCmd.PersistentFlags().String("display-name", "", "Human-readable name for the property in output")
	rootCmd.PersistentFlags().StringP("granularity", "g", string(schema.Daily), "Bucket size: daily or weekly or monthly or quarterly or yearly")
	rootCmd.PersistentFlags().String("anchor-property", "", "Property parsed as each entry's date anchor (wins over filename inference)")
	rootCmd.PersistentFlags().Int("label-depth", contract.DefaultLabelDepth, "Recursion guard for display-label derivation")
	rootCmd.PersistentFlags().String("unknown-label", "Unknown", "Fallback label for unresolvable link references")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("cache-backend", string(schema.SQLiteBackend), "Cache backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("cache-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of heatmapCmd to Viper
	heatmapCmd.Flags().Bool("show-empty", false, "Synthesize zero-count cells for gap buckets")
	if err := viper.BindPFlags(heatmapCmd.Flags()); err != nil {
		contract.LogFatal("Error binding heatmap flags", err)
	}

	// Bind all flags of pieCmd to Viper
	pieCmd.Flags().Bool("case-sensitive-labels", false, "Keep case-varied spellings as distinct categories")
	if err := viper.BindPFlags(pieCmd.Flags()); err != nil {
		contract.LogFatal("Error binding pie flags", err)
	}

	// Bind all flags of tagsCmd to Viper
	tagsCmd.Flags().Bool("fold-tags", false, "Collapse case-varied tags into one")
	if err := viper.BindPFlags(tagsCmd.Flags()); err != nil {
		contract.LogFatal("Error binding tags flags", err)
	}

	// Bind all flags of cacheMigrateCmd to Viper
	cacheMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(cacheMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding cache migrate flags", err)
	}
}
