package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/IlyaRucavitcyn/ai-indicator/internal/contract"
	"github.com/IlyaRucavitcyn/ai-indicator/internal/parquet"
	"github.com/IlyaRucavitcyn/ai-indicator/schema"
)

// DateTimeFormat is the timestamp layout used in human-readable output.
const DateTimeFormat = "2006-01-02 15:04:05"

// percentIndicators marks the indicators whose value is a 0-100 percentage
// and therefore gets a verdict label. The remaining indicators are unbounded
// averages or counts.
var percentIndicators = map[string]bool{
	"large_commit_percentage":      true,
	"commit_message_patterns":      true,
	"bursty_commit_percentage":     true,
	"test_file_ratio":              true,
	"non_typical_expression_ratio": true,
}

// indicatorDisplayNames maps stored indicator names to table headings.
var indicatorDisplayNames = map[string]string{
	"avg_lines_per_commit":         "Avg lines/commit",
	"large_commit_percentage":      "Large commits",
	"first_commit_lines":           "First commit size",
	"avg_files_per_commit":         "Avg files/commit",
	"commit_message_patterns":      "Templated messages",
	"bursty_commit_percentage":     "Bursty commits",
	"test_file_ratio":              "Test file commits",
	"code_comment_ratio":           "Comment ratio",
	"non_typical_expression_ratio": "Atypical control flow",
}

// PrintAnalysisResult outputs the analysis, dispatching on the configured format.
func PrintAnalysisResult(result *schema.AnalysisResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters()

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONAnalysis(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVAnalysis(w, result, fmtFloat)
		}, "Wrote CSV")
	case schema.HTMLOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHTMLAnalysis(w, result, duration)
		}, "Wrote HTML")
	case schema.ParquetOut:
		return writeParquetAnalysis(result, cfg.OutputFile)
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAnalysisTable(result, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote table")
	}
}

// writeAnalysisTable generates and writes the human-readable report.
func writeAnalysisTable(result *schema.AnalysisResult, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	b := result.Basic

	// Repository header
	target := result.RepoPath
	if result.RepoURL != "" {
		target = result.RepoURL
	}
	if _, err := fmt.Fprintf(writer, "Repository: %s\n", target); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Analyzed at: %s\n\n", result.AnalyzedAt.Format(DateTimeFormat)); err != nil {
		return err
	}

	// Basic metrics
	fmt.Fprintf(writer, "Commits: %d  Contributors: %d  Files read: %d\n", b.TotalCommits, b.Contributors, result.FilesRead)
	if b.TotalCommits > 0 {
		fmt.Fprintf(writer, "History: %s to %s (%d days, %s commits/day avg)\n",
			b.FirstCommit.Format(DateTimeFormat), b.LastCommit.Format(DateTimeFormat),
			b.DurationDays, fmtFloat(b.AvgCommitsPerDay))
		fmt.Fprintf(writer, "Top contributor: %s\n", b.TopContributor)
	}
	fmt.Fprintln(writer)

	// Indicator table
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Indicator", "Value", "Label", "Description"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxDescWidth := getMaxDescriptionWidth(cfg)
	var data [][]string
	for _, row := range result.IndicatorRows() {
		label := "-"
		if percentIndicators[row.Name] {
			if cfg.UseColors {
				label = contract.GetColorLabel(row.Value)
			} else {
				label = contract.GetPlainLabel(row.Value)
			}
		}
		data = append(data, []string{
			indicatorDisplayNames[row.Name],
			fmtFloat(row.Value),
			label,
			truncateText(row.Description, maxDescWidth),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// Contributor table
	if len(b.ContributorStats) > 0 {
		fmt.Fprintln(writer)
		contribTable := tablewriter.NewWriter(writer)
		contribTable.Header([]string{"Rank", "Name", "Email", "Commits"})
		contribTable.Configure(func(tcfg *tablewriter.Config) {
			tcfg.Row.Alignment.Global = tw.AlignRight
		})
		var contribData [][]string
		for i, c := range b.ContributorStats {
			contribData = append(contribData, []string{
				strconv.Itoa(i + 1),
				c.Name,
				c.Email,
				fmt.Sprintf(intFmt, c.Commits),
			})
		}
		if err := contribTable.Bulk(contribData); err != nil {
			return err
		}
		if err := contribTable.Render(); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(writer, "Analysis completed in %v with %d workers. Store backend: %s\n", duration, cfg.Workers, cfg.StoreBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVAnalysis writes the indicator rows in CSV format.
func writeCSVAnalysis(w io.Writer, result *schema.AnalysisResult, fmtFloat func(float64) string) error {
	header := []string{
		"indicator",
		"value",
		"label",
		"description",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, row := range result.IndicatorRows() {
			label := ""
			if percentIndicators[row.Name] {
				label = contract.GetPlainLabel(row.Value)
			}
			rec := []string{
				row.Name,
				fmtFloat(row.Value),
				label,
				row.Description,
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeJSONAnalysis writes the analysis in JSON format with verdict labels added.
func writeJSONAnalysis(w io.Writer, result *schema.AnalysisResult) error {
	type JSONAnalysisResult struct {
		*schema.AnalysisResult
		Labels map[string]string `json:"labels"`
	}

	labels := make(map[string]string)
	for _, row := range result.IndicatorRows() {
		if percentIndicators[row.Name] {
			labels[row.Name] = contract.GetPlainLabel(row.Value)
		}
	}

	return writeJSON(w, JSONAnalysisResult{
		AnalysisResult: result,
		Labels:         labels,
	})
}

// writeParquetAnalysis writes the indicator rows to a Parquet file.
// Ad hoc analysis rows are not tied to a stored run, so run_id is zero.
func writeParquetAnalysis(result *schema.AnalysisResult, outputFile string) error {
	records := parquet.ConvertIndicatorRecords(result.IndicatorRows())
	if err := parquet.WriteIndicatorsParquet(records, outputFile); err != nil {
		return fmt.Errorf("error writing Parquet output: %w", err)
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", outputFile)
	return nil
}
