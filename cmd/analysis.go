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

// analysisSetup loads minimal configuration needed for analysis operations.
// This is used by commands that need analysis access without full shared setup.
func analysisSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend, connStr, err := storeSettings("analysis")
	if err != nil {
		return err
	}

	outputFile := viper.GetString("output-file")

	// The tag cache stays off for analysis commands.
	if err := iocache.InitStores(schema.NoneBackend, "", backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize analysis: %w", err)
	}

	cfg.AnalysisBackend = backend
	cfg.AnalysisDBConnect = connStr
	cfg.OutputFile = outputFile

	return nil
}

// analysisSetupWrapper wraps analysisSetup to provide PreRunE for analysis commands.
func analysisSetupWrapper(_ *cobra.Command, _ []string) error {
	return analysisSetup()
}

// analysisMigrateSetup resolves the analysis store without opening it, so
// migrations can run against an empty database.
func analysisMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend, connStr, err := storeSettings("analysis")
	if err != nil {
		return err
	}

	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = iocache.GetAnalysisDBFilePath()
	}

	cfg.AnalysisBackend = backend
	cfg.AnalysisDBConnect = connStr

	return nil
}

// analysisMigrateSetupWrapper wraps analysisMigrateSetup to provide PreRunE for migrate command.
func analysisMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return analysisMigrateSetup()
}

// analysisCmd focused on analysis data management.
//
// Note: Analysis subcommands use minimal initialization (analysisSetup) instead of
// the full sharedSetup used by the scoring commands.
var analysisCmd = &cobra.Command{
	Use:   "analysis",
	Short: "Manage scoring run tracking and exports",
	Long: `Manage the history of scoring runs.

When enabled with --analysis-backend, every score run is stored:
- Run metadata (UUID, timestamps, configuration, title count)
- Both scores, the Lee level and all raw factors for every title

Supported backends: SQLite, MySQL, PostgreSQL, or None (disabled)

Examples:
  yomu analysis status
  yomu analysis export --output-file runs.parquet`,
}

// analysisClearCmd clears the analysis data.
var analysisClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all tracked scoring runs",
	Long: `Delete all stored runs and title scores.

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  yomu analysis export --output-file backup.parquet
  yomu analysis clear`,
	PreRunE: analysisSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ClearAnalysis(cfg.AnalysisBackend, iocache.GetAnalysisDBFilePath(), cfg.AnalysisDBConnect); err != nil {
			contract.LogFatal("Failed to clear analysis data", err)
		}
		fmt.Println("Analysis data cleared successfully.")
	},
}

// analysisStatusCmd shows analysis status.
var analysisStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display analysis tracking statistics and connection details",
	Long: `Show the backend, the number of stored runs, the newest and oldest runs
and the number of title scores.

Examples:
  yomu analysis status`,
	PreRunE: analysisSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := iocache.Manager.GetAnalysisStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get analysis status", err)
		}
		if err := iocache.PrintAnalysisStatus(os.Stdout, status); err != nil {
			contract.LogFatal("Failed to print analysis status", err)
		}
	},
}

// analysisExportCmd exports analysis data to Parquet files.
var analysisExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export tracked runs to Parquet",
	Long: `Export all stored runs and title scores to two Parquet files next to
--output-file, one for the runs and one for the title scores.

Requires: --output-file parameter

Examples:
  yomu analysis export --output-file yomu.parquet
  duckdb -c "SELECT title, lee_score FROM read_parquet('yomu.title_scores.parquet')"`,
	PreRunE: analysisSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ExecuteAnalysisExport(iocache.Manager.GetAnalysisStore(), cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export analysis data", err)
		}
	},
}

// analysisMigrateCmd runs database migrations for the analysis store.
var analysisMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the analysis tracking store.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  yomu analysis migrate
  yomu analysis migrate --target-version 1
  yomu analysis migrate --target-version 0`,
	PreRunE: analysisMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := iocache.MigrateAnalysis(cfg.AnalysisBackend, cfg.AnalysisDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
