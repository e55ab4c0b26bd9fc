package cmd

import (
	"github.com/spf13/cobra"

	"github.com/IlyaRucavitcyn/ai-indicator/core"
	"github.com/IlyaRucavitcyn/ai-indicator/internal/contract"
)

// analyzeCmd performs the repository analysis.
var analyzeCmd = &cobra.Command{
	Use:   "analyze [repo-path-or-url]",
	Short: "Analyze a repository for AI-assistance indicators.",
	Long: `Inspect a Git repository's history and working tree for statistical
patterns typical of AI-assisted development.

The analysis covers:
- Commit size outliers and an oversized first commit
- Templated or generic commit message patterns
- Bursts of commits landing within a short window
- The share of commits touching test files
- Comment density and control-flow style of the checked-out sources

The positional argument may be a local path (any directory inside a
repository works, the enclosing root is resolved) or a clone URL. It
defaults to the current directory.

Examples:
  # Analyze the repository you are in
  ai-indicator analyze

  # Analyze a sibling checkout with a custom burst window
  ai-indicator analyze ../other-repo --burst-window-minutes 15

  # Analyze a remote repository and keep the JSON report
  ai-indicator analyze https://github.com/org/repo.git --output json --output-file report.json

  # Export indicator rows for DuckDB or pandas
  ai-indicator analyze --output parquet --output-file indicators.parquet`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteAnalyze(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run analysis", err)
		}
	},
}
