// Package cmd defines the command-line interface for yomu.
package cmd

import (
	"github.com/huangsam/yomu/internal/contract"
	"github.com/huangsam/yomu/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(textCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(formulasCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(analysisCmd)
	rootCmd.AddCommand(mcpCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatusCmd)

	// Add the analysis subcommands to the parent analysis command
	analysisCmd.AddCommand(analysisClearCmd)
	analysisCmd.AddCommand(analysisStatusCmd)
	analysisCmd.AddCommand(analysisExportCmd)
	analysisCmd.AddCommand(analysisMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	flags := rootCmd.PersistentFlags()
	flags.Bool("detail", false, "Print per-title counts (characters, letters, sentences, tokens)")
	flags.Bool("explain", false, "Print the factors that moved each Tateisi score the most")
	flags.String("exclude", "", "Comma-separated list of path prefixes or patterns to ignore")
	flags.StringP("filter", "f", "", "Keep only titles containing this substring")
	flags.IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	flags.String("sort", string(schema.SortByTitle), "Ranking key: title or tateisi or lee")
	flags.String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	flags.String("output-file", "", "Optional path to write output to")
	flags.Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	flags.String("profile", "", "Enable profiling and write profiles to files with this prefix")
	flags.Int("workers", contract.DefaultWorkers, "Number of concurrent workers")
	flags.Int("width", 0, "Terminal width override (0 = auto-detect)")
	flags.String("tagger", string(schema.KagomeTagger), "Morphological tagger: kagome or mecab")
	flags.String("mecab-path", contract.DefaultMeCabPath, "Path to the mecab binary")
	flags.String("mecab-args", contract.DefaultMeCabArgs, "Extra arguments for mecab, e.g. the dictionary directory")
	flags.Bool("flush-trailing", false, "Count a run still open at the end of a text without closing punctuation")
	flags.String("lee-sentence-source", string(schema.TateisiSentences), "Sentence lengths for the Lee formula: tateisi or tokens")
	flags.String("cache-backend", string(schema.SQLiteBackend), "Tag cache backend: sqlite or mysql or postgresql or none")
	flags.String("cache-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	flags.String("analysis-backend", "", "Analysis tracking backend: sqlite or mysql or postgresql or none")
	flags.String("analysis-db-connect", "", "Database connection string for analysis tracking (a SQLite file must differ from the cache one)")
	flags.String("color", "yes", "Enable colored levels in output (yes/no/true/false/1/0)")
	flags.String("emoji", "yes", "Enable emojis in headers (yes/no/true/false/1/0)")
	flags.String("config", "", "Path to config file")
	if err := viper.BindPFlags(flags); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of analysisMigrateCmd to Viper
	analysisMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(analysisMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding analysis migrate flags", err)
	}
}
