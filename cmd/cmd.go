// Package cmd defines the command-line interface for ai-indicator.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/IlyaRucavitcyn/ai-indicator/internal/contract"
	"github.com/IlyaRucavitcyn/ai-indicator/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(storeCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the store subcommands to the parent store command
	storeCmd.AddCommand(storeClearCmd)
	storeCmd.AddCommand(storeStatusCmd)
	storeCmd.AddCommand(storeExportCmd)
	storeCmd.AddCommand(storeMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or html or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent workers")
	rootCmd.PersistentFlags().Int("width", contract.DefaultWidth, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Bool("progress", false, "Print a scan progress counter on stderr")
	rootCmd.PersistentFlags().String("store-backend", string(schema.SQLiteBackend), "Run tracking backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("store-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().Int("burst-window-minutes", schema.DefaultBurstWindowMinutes, "Maximum gap in minutes for a commit to count as bursty")
	rootCmd.PersistentFlags().Float64("large-commit-factor", schema.DefaultLargeCommitStdDevFactor, "Std deviation multiplier for the large commit outlier test")
	rootCmd.PersistentFlags().Int("large-commit-lines", schema.DefaultLargeCommitAbsoluteLines, "Absolute changed-line count that flags a commit as large")
	rootCmd.PersistentFlags().Int("first-commit-solo-lines", schema.DefaultFirstCommitSoloThreshold, "Line threshold for a suspicious single-commit history")
	rootCmd.PersistentFlags().Float64("first-commit-multiplier", schema.DefaultFirstCommitMeanMultiplier, "Multiple of the later-commit mean that flags the first commit")
	rootCmd.PersistentFlags().Int("first-commit-lines", schema.DefaultFirstCommitAbsoluteLines, "Absolute line count that flags the first commit")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of storeMigrateCmd to Viper
	storeMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(storeMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding store migrate flags", err)
	}
}
