package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tempograph/tempograph/internal/contract"
	"github.com/tempograph/tempograph/internal/iocache"
	"github.com/tempograph/tempograph/schema"
)

// cacheSetup loads minimal configuration needed for cache operations.
// This is used by commands that need cache access without full shared setup.
func cacheSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get cache-related config values
	backend := schema.CacheBackend(viper.GetString("cache-backend"))
	connStr := viper.GetString("cache-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Initialize caching with the loaded config
	if err := iocache.InitCaching(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}

	cfg.CacheBackend = backend
	cfg.CacheDBConnect = connStr

	return nil
}

// cacheSetupWrapper wraps cacheSetup to provide PreRunE for cache commands.
func cacheSetupWrapper(_ *cobra.Command, _ []string) error {
	return cacheSetup()
}

// cacheCmd focused on cache management.
//
// Note: Cache subcommands use minimal initialization (cacheSetup) instead of
// the full sharedSetup used by aggregation commands. This avoids vault
// validation and property parsing for simple cache operations.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the aggregate cache (improves performance)",
	Long: `Manage the aggregate cache that speeds up repeated aggregations.

Tempograph caches computed aggregates so unchanged vaults do not have to be
re-bucketed on every run. Cached results are keyed by the full aggregation
configuration plus a stamp of the vault contents, so edits invalidate
naturally.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show cache statistics and connection info
  clear   - Remove all cached data
  migrate - Move the cache schema between versions

Examples:
  # Check cache status
  tempograph cache status

  # Clear cache after reorganizing a vault
  tempograph cache clear`,
}

// cacheClearCmd clears the cache.
var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached aggregate data",
	Long: `Delete all cached aggregate data from the configured backend.

Use this when:
- Cache may be stale or corrupted
- Testing performance without cache
- Reclaiming disk space after heavy use

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the cache table

Examples:
  # Clear SQLite cache (default)
  tempograph cache clear

  # Clear MySQL cache (set connection string via env variable)
  TEMPOGRAPH_CACHE_BACKEND=mysql TEMPOGRAPH_CACHE_DB_CONNECT="..." tempograph cache clear`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ClearCache(cfg.CacheBackend, iocache.GetDBFilePath(), cfg.CacheDBConnect); err != nil {
			contract.LogFatal("Failed to clear cache", err)
		}
		fmt.Println("Cache cleared successfully.")
	},
}

// cacheStatusCmd shows cache status.
var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display cache statistics and connection details",
	Long: `Show detailed information about the aggregate cache.

Displays:
- Backend type and connection status
- Total number of cached entries
- Last and oldest cache entry timestamps
- Cache database size

Use this to:
- Verify cache is working and connected
- Monitor cache growth over time
- Debug cache-related issues

Examples:
  # Check cache status
  tempograph cache status`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := iocache.Manager.GetAggregateStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get cache status", err)
		}
		iocache.PrintCacheStatus(status)
	},
}

// cacheMigrateCmd moves the cache schema between versions.
var cacheMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Move the cache schema between versions",
	Long: `Run schema migrations for the aggregate cache.

By default the cache migrates to the latest schema automatically on first
use; this command exists for explicit upgrades and rollbacks.

Target versions:
  -1 - Migrate to the latest version (default)
   0 - Roll back to the initial (empty) state
   N - Migrate to version N

Examples:
  # Migrate to the latest schema
  tempograph cache migrate

  # Roll the schema all the way back
  tempograph cache migrate --target-version 0`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		// Only the config file is needed; migration opens its own connection.
		return loadConfigFile()
	},
	Run: func(_ *cobra.Command, _ []string) {
		backend := schema.CacheBackend(viper.GetString("cache-backend"))
		connStr := viper.GetString("cache-db-connect")
		if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
			contract.LogFatal("Invalid cache configuration", err)
		}
		if err := iocache.MigrateCache(backend, connStr, viper.GetInt("target-version")); err != nil {
			contract.LogFatal("Failed to migrate cache", err)
		}
	},
}
