package cmd

import (
	"fmt"
	"os"

	"github.com/huangsam/yomu/internal/contract"
	"github.com/huangsam/yomu/internal/iocache"
	"github.com/huangsam/yomu/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cacheSetup loads minimal configuration needed for cache operations.
// This is used by commands that need cache access without full shared setup.
func cacheSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend, connStr, err := storeSettings("cache")
	if err != nil {
		return err
	}

	// Initialize caching with the loaded config (no analysis tracking for cache commands)
	if err := iocache.InitStores(backend, connStr, "", ""); err != nil {
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
// the full sharedSetup used by the scoring commands.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the tagger output cache",
	Long: `Manage the cache of tagger output that speeds up repeated scoring.

Tagging is the slowest step of the Lee formula. Yomu stores the tokens of every
sentence keyed by the tagger name and a SHA-256 of the sentence, so a corpus
scored twice is only tagged once.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Examples:
  # Check cache status
  yomu cache status

  # Clear cache after switching MeCab dictionaries
  yomu cache clear`,
}

// cacheClearCmd clears the cache.
var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached tagger output",
	Long: `Delete all cached tagger output from the configured backend.

Use this after changing the MeCab dictionary, since the cache key only
holds the tagger name and the sentence.

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the cache table

Examples:
  yomu cache clear
  YOMU_CACHE_BACKEND=mysql YOMU_CACHE_DB_CONNECT="..." yomu cache clear`,
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
	Long: `Show the backend, the number of cached sentences, the newest and oldest
entries and the estimated table size.

Examples:
  yomu cache status`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := iocache.Manager.GetTagStore()
		if store == nil {
			contract.LogFatal("Failed to get cache status", fmt.Errorf("cache backend is disabled"))
		}
		status, err := store.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get cache status", err)
		}
		if err := iocache.PrintCacheStatus(os.Stdout, status); err != nil {
			contract.LogFatal("Failed to print cache status", err)
		}
	},
}

// storeSettings reads the backend and DSN for the "cache" or "analysis" store.
// An unset backend means the store is disabled.
func storeSettings(store string) (schema.DatabaseBackend, string, error) {
	backend := schema.DatabaseBackend(viper.GetString(store + "-backend"))
	if backend == "" {
		backend = schema.NoneBackend
	}
	connStr := viper.GetString(store + "-db-connect")
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return "", "", fmt.Errorf("invalid %s store settings: %w", store, err)
	}
	return backend, connStr, nil
}
